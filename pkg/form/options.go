package form

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/submit"
)

// DefaultResetDelay is how long the success banner stays before the form is
// cleared.
const DefaultResetDelay = 3 * time.Second

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Option customises a Controller.
type Option func(*Controller)

// WithPresenter routes every visible change to p.
func WithPresenter(p render.Presenter) Option {
	return func(c *Controller) {
		if p != nil {
			c.presenter = p
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics counts rejected submit attempts on m.
func WithMetrics(m *submit.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithResetDelay overrides DefaultResetDelay. A zero delay resets on the
// next scheduler tick; negative values disable the reset.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.resetDelay = d
	}
}

// WithClock overrides time.Now for payload timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithScheduler overrides time.AfterFunc for the post-success reset.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithValues prefills the form.
func WithValues(values map[model.FieldName]string) Option {
	return func(c *Controller) {
		for name, value := range values {
			c.form.SetValue(name, value)
		}
	}
}
