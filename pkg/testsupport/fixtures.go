package testsupport

import "github.com/goliatone/go-regform/pkg/model"

// ValidPassword satisfies every strength criterion.
const ValidPassword = "Abcdef1!"

// ValidValues returns a complete set of valid raw values.
func ValidValues() map[model.FieldName]string {
	return map[model.FieldName]string{
		model.FieldFullName:        "Ada Lovelace",
		model.FieldFatherName:      "Lord Byron",
		model.FieldMobileNumber:    "0300-1234567",
		model.FieldCNIC:            "12345-1234567-1",
		model.FieldUsername:        "ada_l",
		model.FieldPassword:        ValidPassword,
		model.FieldConfirmPassword: ValidPassword,
	}
}
