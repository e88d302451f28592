package orchestrator

import (
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/strength"
	"github.com/goliatone/go-regform/pkg/validation"
)

// Evaluate applies the rule for field to value. password is the raw current
// password, used only by the confirmation rule. Fields without a rule are
// valid whenever they are non-empty.
func Evaluate(field model.FieldName, value, password string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}

	switch field {
	case model.FieldFullName, model.FieldFatherName:
		return validation.Name(trimmed)
	case model.FieldMobileNumber:
		return validation.MobileNumber(trimmed)
	case model.FieldCNIC:
		return validation.CNIC(trimmed)
	case model.FieldUsername:
		return validation.Username(trimmed)
	case model.FieldPassword:
		return strength.Score(trimmed).Acceptable()
	case model.FieldConfirmPassword:
		return trimmed == password
	default:
		return true
	}
}
