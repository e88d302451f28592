package tui

import "github.com/goliatone/go-regform/pkg/model"

var fieldHints = map[model.FieldName]string{
	model.FieldFullName:        "at least 2 characters",
	model.FieldFatherName:      "at least 2 characters",
	model.FieldMobileNumber:    "format 03XX-XXXXXXX",
	model.FieldCNIC:            "13 digits, format XXXXX-XXXXXXX-X",
	model.FieldUsername:        "3-20 letters, digits or underscores",
	model.FieldPassword:        "at least Fair strength: mix case, digits and symbols, 8+ characters",
	model.FieldConfirmPassword: "must match the password",
	model.FieldTerms:           "you must accept the terms and conditions",
}

// Hint describes what a valid value of field looks like.
func Hint(field model.FieldName) string {
	return fieldHints[field]
}
