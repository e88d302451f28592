package form

import (
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/submit"
)

// State is a step of the submission pipeline.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes how a submit attempt ended. Validation failures are an
// outcome, not an error.
type Outcome struct {
	State State
	// Errors lists the failed fields when State is StateFailed.
	Errors model.ValidationErrors
	// Payload is the dispatched record when State is StateSucceeded.
	Payload model.Payload
	// Result tells which delivery path carried the payload.
	Result submit.Result
}

// Succeeded reports whether the payload was handed off.
func (o Outcome) Succeeded() bool {
	return o.State == StateSucceeded
}
