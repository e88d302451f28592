package model

import "strings"

// TermsNotAccepted is the entry recorded when the terms checkbox is unchecked.
const TermsNotAccepted = "Terms and conditions not accepted"

// ValidationErrors collects every failure of a single submit attempt, in the
// order the fields were checked.
type ValidationErrors []string

// AddField records an invalid field together with its current raw value.
func (e *ValidationErrors) AddField(name FieldName, value string) {
	if value == "" {
		value = "empty"
	}
	*e = append(*e, string(name)+": "+value)
}

// AddTerms records the unchecked terms box.
func (e *ValidationErrors) AddTerms() {
	*e = append(*e, TermsNotAccepted)
}

// Empty reports whether no failure was recorded.
func (e ValidationErrors) Empty() bool {
	return len(e) == 0
}

// Message renders the banner text for the collected failures.
func (e ValidationErrors) Message() string {
	return "Validation failed: " + strings.Join(e, ", ")
}
