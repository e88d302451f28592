package submit

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/model"
)

// Path tells which tier delivered a payload.
type Path string

const (
	PathPrimary  Path = "primary"
	PathFallback Path = "fallback"
)

// Result is the single outcome of a dispatch.
type Result struct {
	Path Path
	// Response is the decoded primary reply; nil on the fallback path.
	Response Response
	// PrimaryErr is why the primary attempt failed, when it did.
	PrimaryErr error
}

// Masked reports whether a primary failure was hidden behind the fallback.
func (r Result) Masked() bool {
	return r.Path == PathFallback && r.PrimaryErr != nil
}

// Dispatcher runs the primary sender and, on failure, the fallback once.
type Dispatcher struct {
	primary  Sender
	fallback Fallback
	settings settings
}

// NewDispatcher wires a primary sender and a fallback.
func NewDispatcher(primary Sender, fallback Fallback, options ...Option) (*Dispatcher, error) {
	if primary == nil {
		return nil, errors.New("submit: primary sender is required")
	}
	if fallback == nil {
		return nil, errors.New("submit: fallback is required")
	}
	return &Dispatcher{primary: primary, fallback: fallback, settings: newSettings(options)}, nil
}

// Dispatch delivers p. It never retries beyond the single fallback and never
// fails: the fallback's own error is logged, not returned.
func (d *Dispatcher) Dispatch(ctx context.Context, p model.Payload) Result {
	log := d.settings.logger.With(zap.Stringer("submission", p.ID()))

	resp, err := d.primary.Send(ctx, p)
	if err == nil {
		log.Info("registration delivered", zap.String("path", string(PathPrimary)))
		d.settings.metrics.observeDispatch(PathPrimary, nil)
		return Result{Path: PathPrimary, Response: resp}
	}

	log.Warn("primary submission failed, trying fallback", zap.Error(err))
	if ferr := d.fallback.Submit(ctx, p); ferr != nil {
		log.Warn("fallback submission reported an error", zap.Error(ferr))
	} else {
		log.Info("registration handed to fallback", zap.String("path", string(PathFallback)))
	}
	d.settings.metrics.observeDispatch(PathFallback, err)
	return Result{Path: PathFallback, PrimaryErr: err}
}
