package model

import "strings"

// Form tracks the current raw value of every input plus the terms checkbox.
// It is intentionally small; callers that share a Form across goroutines
// guard it themselves.
type Form struct {
	values        map[FieldName]string
	termsAccepted bool
}

// NewForm seeds a form with prefilled values. The map is copied.
func NewForm(prefill map[FieldName]string) *Form {
	f := &Form{values: make(map[FieldName]string, len(prefill))}
	for name, value := range prefill {
		f.values[name] = value
	}
	return f
}

// Value returns the raw (untrimmed) value of a field, or "" when unset.
func (f *Form) Value(name FieldName) string {
	if f == nil {
		return ""
	}
	return f.values[name]
}

// SetValue stores the raw value of a field.
func (f *Form) SetValue(name FieldName, value string) {
	if f.values == nil {
		f.values = make(map[FieldName]string)
	}
	f.values[name] = value
}

// TermsAccepted reports the checkbox state.
func (f *Form) TermsAccepted() bool {
	return f != nil && f.termsAccepted
}

// SetTermsAccepted updates the checkbox state.
func (f *Form) SetTermsAccepted(accepted bool) {
	f.termsAccepted = accepted
}

// Blank reports whether the field is empty after trimming whitespace.
func (f *Form) Blank(name FieldName) bool {
	return strings.TrimSpace(f.Value(name)) == ""
}

// Reset clears every value and unchecks the terms box.
func (f *Form) Reset() {
	f.values = make(map[FieldName]string)
	f.termsAccepted = false
}

// Field returns a FormField view with the supplied status.
func (f *Form) Field(name FieldName, status Status) FormField {
	return FormField{Name: name, Value: f.Value(name), Status: status}
}

// Snapshot returns a copy of the current values.
func (f *Form) Snapshot() map[FieldName]string {
	out := make(map[FieldName]string, len(f.values))
	for name, value := range f.values {
		out[name] = value
	}
	return out
}
