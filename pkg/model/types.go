package model

// FieldName identifies a form input by its element name.
type FieldName string

const (
	FieldFullName        FieldName = "fullName"
	FieldFatherName      FieldName = "fatherName"
	FieldMobileNumber    FieldName = "mobileNumber"
	FieldCNIC            FieldName = "cnic"
	FieldUsername        FieldName = "username"
	FieldPassword        FieldName = "password"
	FieldConfirmPassword FieldName = "confirmPassword"
	FieldTerms           FieldName = "termsCheck"

	// FieldTimestamp and FieldSubject only exist on the wire.
	FieldTimestamp FieldName = "timestamp"
	FieldSubject   FieldName = "_subject"
)

// RequiredFields lists the required text inputs in form order. Submission
// re-validates every entry regardless of its current status.
var RequiredFields = []FieldName{
	FieldFullName,
	FieldFatherName,
	FieldMobileNumber,
	FieldCNIC,
	FieldUsername,
	FieldPassword,
	FieldConfirmPassword,
}

// PayloadFields lists the data fields carried to the endpoint, in wire order.
// The confirmation field and the terms checkbox are never sent.
var PayloadFields = []FieldName{
	FieldFullName,
	FieldFatherName,
	FieldMobileNumber,
	FieldCNIC,
	FieldUsername,
	FieldPassword,
}

// String implements fmt.Stringer.
func (f FieldName) String() string {
	return string(f)
}

// Label returns a human readable caption for prompts and reports.
func (f FieldName) Label() string {
	switch f {
	case FieldFullName:
		return "Full Name"
	case FieldFatherName:
		return "Father's Name"
	case FieldMobileNumber:
		return "Mobile Number"
	case FieldCNIC:
		return "CNIC"
	case FieldUsername:
		return "Username"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	case FieldTerms:
		return "I agree to the terms and conditions"
	default:
		return string(f)
	}
}

// Secret reports whether the field value must be masked on input and in logs.
func (f FieldName) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Status is the tri-state validity flag rendered next to a field.
type Status int

const (
	StatusUnvalidated Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}

// StatusOf maps a validation result onto a Status.
func StatusOf(ok bool) Status {
	if ok {
		return StatusValid
	}
	return StatusInvalid
}

// FormField is a point-in-time view of a single input.
type FormField struct {
	Name   FieldName
	Value  string
	Status Status
}
