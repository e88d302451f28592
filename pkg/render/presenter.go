package render

import (
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/strength"
)

// Presenter receives every visible side effect of the form.
type Presenter interface {
	// SetValue reflects a value rewritten by a formatter or a reset.
	SetValue(field model.FieldName, value string)
	// SetFieldStatus renders the validity flag of a text input.
	SetFieldStatus(field model.FieldName, status model.Status)
	// SetTermsStatus renders the validity flag of the terms checkbox.
	SetTermsStatus(status model.Status)
	// ShowStrength renders the strength bar, label and criteria checklist.
	ShowStrength(a strength.Assessment)
	// ResetStrength returns the strength indicator to its idle state.
	ResetStrength()
	// SetBusy toggles the submit control's disabled/spinner state.
	SetBusy(busy bool)
	// ShowBanner displays a success or error alert.
	ShowBanner(b Banner)
}

// Nop discards every call.
type Nop struct{}

var _ Presenter = Nop{}

func (Nop) SetValue(model.FieldName, string)              {}
func (Nop) SetFieldStatus(model.FieldName, model.Status) {}
func (Nop) SetTermsStatus(model.Status)                  {}
func (Nop) ShowStrength(strength.Assessment)             {}
func (Nop) ResetStrength()                               {}
func (Nop) SetBusy(bool)                                 {}
func (Nop) ShowBanner(Banner)                            {}
