// Package format rewrites raw identifier input into its punctuated display
// form. Formatting never validates: a partially typed value is returned in
// its partial shape and the validators decide whether it is complete.
package format

import (
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
)

// Formatter rewrites a raw input value.
type Formatter func(raw string) string

// Digits drops every character that is not an ASCII digit.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CNIC groups digits as 5-7-1. Digits beyond the thirteenth are dropped.
func CNIC(raw string) string {
	d := Digits(raw)
	switch {
	case len(d) <= 5:
		return d
	case len(d) <= 12:
		return d[:5] + "-" + d[5:]
	default:
		return d[:5] + "-" + d[5:12] + "-" + d[12:13]
	}
}

// MobileNumber groups digits as 4-7. Digits beyond the eleventh are dropped.
func MobileNumber(raw string) string {
	d := Digits(raw)
	if len(d) <= 4 {
		return d
	}
	end := len(d)
	if end > 11 {
		end = 11
	}
	return d[:4] + "-" + d[4:end]
}

// For returns the formatter bound to a field, if it has one.
func For(field model.FieldName) (Formatter, bool) {
	switch field {
	case model.FieldCNIC:
		return CNIC, true
	case model.FieldMobileNumber:
		return MobileNumber, true
	default:
		return nil, false
	}
}

// Apply formats raw with the field's formatter, or returns it unchanged.
func Apply(field model.FieldName, raw string) string {
	if fn, ok := For(field); ok {
		return fn(raw)
	}
	return raw
}
