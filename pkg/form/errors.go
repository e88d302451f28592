package form

import "errors"

var (
	// ErrSubmitInProgress is returned when Submit is called while another
	// submission has not settled.
	ErrSubmitInProgress = errors.New("form: submission already in progress")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("form: controller closed")
)
