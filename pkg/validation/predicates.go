// Package validation holds the format predicates for registration fields and
// a struct validator that exposes the same rules as validator/v10 tags.
//
// Predicates are pure: they never mutate input, never panic, and report a
// non-match simply as false. Callers trim input before calling them; only
// Name trims on its own.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	cnicPattern     = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)
	mobilePattern   = regexp.MustCompile(`^03\d{2}-\d{7}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// MinNameLength is the shortest accepted name after trimming.
const MinNameLength = 2

// CNIC reports whether value is a national identity number in 5-7-1 form.
func CNIC(value string) bool {
	return cnicPattern.MatchString(value)
}

// MobileNumber reports whether value is a local mobile number (03XX-XXXXXXX).
func MobileNumber(value string) bool {
	return mobilePattern.MatchString(value)
}

// Username reports whether value is 3-20 letters, digits or underscores.
func Username(value string) bool {
	return usernamePattern.MatchString(value)
}

// Name reports whether value has at least MinNameLength characters once
// surrounding whitespace is removed.
func Name(value string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= MinNameLength
}
