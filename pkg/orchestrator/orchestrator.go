package orchestrator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
)

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithPresenter routes status changes to p.
func WithPresenter(p render.Presenter) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.presenter = p
		}
	}
}

// WithLogger attaches a logger for debug tracing of validation results.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator validates fields of a form and tracks their statuses. It is
// not safe for concurrent use; the form controller serialises access.
type Orchestrator struct {
	form      *model.Form
	statuses  map[model.FieldName]model.Status
	terms     model.Status
	presenter render.Presenter
	logger    *zap.Logger
}

// New binds an orchestrator to form.
func New(form *model.Form, options ...Option) *Orchestrator {
	o := &Orchestrator{
		form:      form,
		statuses:  make(map[model.FieldName]model.Status),
		presenter: render.Nop{},
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// Status returns the current status of field.
func (o *Orchestrator) Status(field model.FieldName) model.Status {
	return o.statuses[field]
}

// TermsStatus returns the current status of the terms checkbox.
func (o *Orchestrator) TermsStatus() model.Status {
	return o.terms
}

// Validate evaluates field against the form's current values, replaces its
// status and reports the result.
func (o *Orchestrator) Validate(field model.FieldName) bool {
	o.setStatus(field, model.StatusUnvalidated)

	ok := Evaluate(field, o.form.Value(field), o.form.Value(model.FieldPassword))
	o.setStatus(field, model.StatusOf(ok))

	o.logger.Debug("field validated",
		zap.String("field", field.String()),
		zap.Bool("valid", ok),
	)
	return ok
}

// OnBlur always validates field.
func (o *Orchestrator) OnBlur(field model.FieldName) bool {
	return o.Validate(field)
}

// OnInput re-validates field only while it is marked invalid. The returned
// flag reports whether validation ran.
func (o *Orchestrator) OnInput(field model.FieldName) (validated, ok bool) {
	if o.statuses[field] != model.StatusInvalid {
		return false, false
	}
	return true, o.Validate(field)
}

// ValidateTerms checks the terms checkbox as a required boolean.
func (o *Orchestrator) ValidateTerms() bool {
	accepted := o.form.TermsAccepted()
	status := model.StatusUnvalidated
	if !accepted {
		status = model.StatusInvalid
	}
	if status != o.terms {
		o.terms = status
		o.presenter.SetTermsStatus(status)
	}
	return accepted
}

// Reset returns every status to unvalidated, rendering only the fields whose
// status actually changes.
func (o *Orchestrator) Reset() {
	for field, status := range o.statuses {
		if status != model.StatusUnvalidated {
			o.presenter.SetFieldStatus(field, model.StatusUnvalidated)
		}
	}
	o.statuses = make(map[model.FieldName]model.Status)
	if o.terms != model.StatusUnvalidated {
		o.terms = model.StatusUnvalidated
		o.presenter.SetTermsStatus(model.StatusUnvalidated)
	}
}

// Fields returns a view of every required field with its status.
func (o *Orchestrator) Fields() []model.FormField {
	out := make([]model.FormField, 0, len(model.RequiredFields))
	for _, name := range model.RequiredFields {
		out = append(out, o.form.Field(name, o.statuses[name]))
	}
	return out
}

func (o *Orchestrator) setStatus(field model.FieldName, status model.Status) {
	if o.statuses[field] == status {
		return
	}
	if status == model.StatusUnvalidated {
		delete(o.statuses, field)
	} else {
		o.statuses[field] = status
	}
	o.presenter.SetFieldStatus(field, status)
}
