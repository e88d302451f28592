package form

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/format"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/strength"
	"github.com/goliatone/go-regform/pkg/submit"
)

// Dispatcher delivers a payload. *submit.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, p model.Payload) submit.Result
}

// Controller binds a form, its validation state and a dispatcher.
type Controller struct {
	mu    sync.Mutex
	form  *model.Form
	orch  *orchestrator.Orchestrator
	state State

	dispatcher Dispatcher
	presenter  render.Presenter
	logger     *zap.Logger
	metrics    *submit.Metrics
	resetDelay time.Duration
	now        func() time.Time
	schedule   Scheduler

	submitting atomic.Bool
	closed     bool
	timers     map[*pendingReset]struct{}
}

type pendingReset struct {
	timer Timer
}

// New returns a controller that hands valid payloads to dispatcher.
func New(dispatcher Dispatcher, options ...Option) (*Controller, error) {
	if dispatcher == nil {
		return nil, errors.New("form: dispatcher is required")
	}
	c := &Controller{
		form:       model.NewForm(nil),
		dispatcher: dispatcher,
		presenter:  render.Nop{},
		logger:     zap.NewNop(),
		resetDelay: DefaultResetDelay,
		now:        time.Now,
		schedule:   afterFunc,
		timers:     make(map[*pendingReset]struct{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.orch = orchestrator.New(c.form,
		orchestrator.WithPresenter(c.presenter),
		orchestrator.WithLogger(c.logger),
	)
	return c, nil
}

// State returns the current pipeline state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Value returns the current value of field.
func (c *Controller) Value(field model.FieldName) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Value(field)
}

// Status returns the current validation status of field.
func (c *Controller) Status(field model.FieldName) model.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if field == model.FieldTerms {
		return c.orch.TermsStatus()
	}
	return c.orch.Status(field)
}

// Fields returns every required field with its value and status.
func (c *Controller) Fields() []model.FormField {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orch.Fields()
}

// HandleInput stores a keystroke-level change. Formatted fields are rewritten
// and echoed back, the password refreshes the strength indicator, and a field
// already marked invalid is re-validated. It returns the stored value.
func (c *Controller) HandleInput(field model.FieldName, raw string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	value := format.Apply(field, raw)
	c.form.SetValue(field, value)
	if value != raw {
		c.presenter.SetValue(field, value)
	}
	if field == model.FieldPassword {
		c.presenter.ShowStrength(strength.Score(value))
	}
	c.orch.OnInput(field)
	return value
}

// HandleBlur validates field as the user leaves it.
func (c *Controller) HandleBlur(field model.FieldName) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orch.OnBlur(field)
}

// SetTermsAccepted records the checkbox. Its validity is only checked on
// submit.
func (c *Controller) SetTermsAccepted(accepted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.SetTermsAccepted(accepted)
}

// Submit runs the pipeline once. Invalid input ends in StateFailed with the
// collected errors and no network call. Valid input is dispatched; the
// fallback path still counts as success. The form is cleared after the
// reset delay.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if !c.submitting.CompareAndSwap(false, true) {
		return Outcome{}, ErrSubmitInProgress
	}
	defer c.submitting.Store(false)

	payload, errs, failed, err := c.validate()
	if err != nil {
		return Outcome{}, err
	}
	if !errs.Empty() {
		// Entries carry raw values; only field names are logged.
		c.logger.Info("registration rejected", zap.Strings("fields", failed))
		c.metrics.ObserveValidationFailure()
		c.presenter.ShowBanner(render.ErrorBanner(errs.Message()))
		return Outcome{State: StateFailed, Errors: errs}, nil
	}

	c.logger.Info("registration valid, dispatching",
		zap.Stringer("submission", payload.ID()),
		zap.String("timestamp", payload.Timestamp()),
	)
	c.presenter.SetBusy(true)
	res := c.dispatcher.Dispatch(ctx, payload)
	c.presenter.SetBusy(false)

	c.mu.Lock()
	c.state = StateSucceeded
	c.scheduleReset()
	c.mu.Unlock()

	c.presenter.ShowBanner(render.SuccessBanner())
	return Outcome{State: StateSucceeded, Payload: payload, Result: res}, nil
}

// validate returns the payload, or the error entries together with the
// names of the fields that failed.
func (c *Controller) validate() (model.Payload, model.ValidationErrors, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return model.Payload{}, nil, nil, ErrClosed
	}
	c.state = StateValidating

	var (
		errs   model.ValidationErrors
		failed []string
	)
	for _, field := range model.RequiredFields {
		if !c.orch.Validate(field) {
			errs.AddField(field, c.form.Value(field))
			failed = append(failed, field.String())
		}
	}
	if !c.orch.ValidateTerms() {
		errs.AddTerms()
		failed = append(failed, model.FieldTerms.String())
	}
	if !errs.Empty() {
		c.state = StateFailed
		return model.Payload{}, errs, failed, nil
	}

	c.state = StateSubmitting
	return model.BuildPayload(c.form, c.now()), nil, nil, nil
}

// scheduleReset must be called with c.mu held.
func (c *Controller) scheduleReset() {
	if c.resetDelay < 0 || c.closed {
		return
	}
	pending := &pendingReset{}
	c.timers[pending] = struct{}{}
	pending.timer = c.schedule(c.resetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.timers[pending]; !ok {
			return
		}
		delete(c.timers, pending)
		c.reset()
	})
}

// Reset clears values, statuses and the strength indicator immediately.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Controller) reset() {
	for _, field := range model.RequiredFields {
		if c.form.Value(field) != "" {
			c.presenter.SetValue(field, "")
		}
	}
	c.form.Reset()
	c.orch.Reset()
	c.presenter.ResetStrength()
	c.state = StateIdle
	c.logger.Debug("form reset")
}

// Close cancels pending resets. Submit fails with ErrClosed afterwards.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for pending := range c.timers {
		if pending.timer != nil {
			pending.timer.Stop()
		}
		delete(c.timers, pending)
	}
	return nil
}
