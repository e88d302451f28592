package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-regform/pkg/format"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/strength"
)

// Tags registered on the struct validator.
const (
	TagCNIC           = "cnic"
	TagMobileNumber   = "pkmobile"
	TagUsername       = "handle"
	TagName           = "personname"
	TagStrongPassword = "strongpassword"
)

// Registration is a complete set of form answers, as read from a values file.
type Registration struct {
	FullName        string `yaml:"fullName" json:"fullName" validate:"required,personname"`
	FatherName      string `yaml:"fatherName" json:"fatherName" validate:"required,personname"`
	MobileNumber    string `yaml:"mobileNumber" json:"mobileNumber" validate:"required,pkmobile"`
	CNIC            string `yaml:"cnic" json:"cnic" validate:"required,cnic"`
	Username        string `yaml:"username" json:"username" validate:"required,handle"`
	Password        string `yaml:"password" json:"password" validate:"required,strongpassword"`
	ConfirmPassword string `yaml:"confirmPassword" json:"confirmPassword" validate:"required,eqfield=Password"`
	TermsAccepted   bool   `yaml:"termsCheck" json:"termsCheck" validate:"required"`
}

// Values returns the text inputs keyed by field name.
func (r Registration) Values() map[model.FieldName]string {
	return map[model.FieldName]string{
		model.FieldFullName:        r.FullName,
		model.FieldFatherName:      r.FatherName,
		model.FieldMobileNumber:    r.MobileNumber,
		model.FieldCNIC:            r.CNIC,
		model.FieldUsername:        r.Username,
		model.FieldPassword:        r.Password,
		model.FieldConfirmPassword: r.ConfirmPassword,
	}
}

// Formatted returns a copy with the CNIC and mobile number formatted the way
// the form formats them while typing.
func (r Registration) Formatted() Registration {
	r.MobileNumber = format.MobileNumber(r.MobileNumber)
	r.CNIC = format.CNIC(r.CNIC)
	return r
}

// Issue describes one failed rule.
type Issue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Validator checks whole records against the field predicates.
type Validator struct {
	engine *validator.Validate
}

// NewValidator builds a validator with the registration tags installed.
func NewValidator() (*Validator, error) {
	engine := validator.New(validator.WithRequiredStructEnabled())
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	rules := map[string]func(string) bool{
		TagCNIC:         CNIC,
		TagMobileNumber: MobileNumber,
		TagUsername:     Username,
		TagName:         Name,
		TagStrongPassword: func(v string) bool {
			return strength.Score(v).Acceptable()
		},
	}
	for tag, rule := range rules {
		if err := engine.RegisterValidation(tag, trimmed(rule)); err != nil {
			return nil, fmt.Errorf("validation: register %s: %w", tag, err)
		}
	}
	return &Validator{engine: engine}, nil
}

// Check validates record and returns every failed rule. A non-nil error
// means record could not be validated at all (for example, it is not a
// struct).
func (v *Validator) Check(record any) ([]Issue, error) {
	err := v.engine.Struct(record)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validation: %w", err)
	}
	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return issues, nil
}

func trimmed(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rule(strings.TrimSpace(fl.Field().String()))
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return model.TermsNotAccepted
		}
		return "is required"
	case TagCNIC:
		return "must look like 12345-1234567-1"
	case TagMobileNumber:
		return "must look like 03XX-XXXXXXX"
	case TagUsername:
		return "must be 3-20 letters, numbers or underscores"
	case TagName:
		return fmt.Sprintf("must be at least %d characters", MinNameLength)
	case TagStrongPassword:
		return fmt.Sprintf("must meet at least %d of %d strength criteria",
			strength.MinAcceptable/strength.PointsPerCriterion, len(strength.Criteria))
	case "eqfield":
		return "passwords do not match"
	default:
		return "failed " + fe.Tag()
	}
}
