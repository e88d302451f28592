// Package regform wires the registration form packages together from a
// config.Config: a primary multipart client, the configured fallback, the
// dispatcher and the form controller.
package regform

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/config"
	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/submit"
)

// Config aliases config.Config for callers that only import the root.
type Config = config.Config

// Controller aliases form.Controller.
type Controller = form.Controller

// Outcome aliases form.Outcome.
type Outcome = form.Outcome

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads settings from path and the environment.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// Option configures the wiring helpers.
type Option func(*settings)

type settings struct {
	logger    *zap.Logger
	presenter render.Presenter
	metrics   *submit.Metrics
	client    *http.Client
	opener    submit.Opener
	formOpts  []form.Option
}

// WithLogger shares logger across every component.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPresenter routes form feedback to p.
func WithPresenter(p render.Presenter) Option {
	return func(s *settings) {
		s.presenter = p
	}
}

// WithMetrics records submissions on m.
func WithMetrics(m *submit.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithHTTPClient overrides the client used for both submission tiers.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.client = client
	}
}

// WithPageOpener overrides where fallback pages go when the fallback mode
// is config.FallbackPage. By default they are written to Config.PageDir.
func WithPageOpener(opener submit.Opener) Option {
	return func(s *settings) {
		s.opener = opener
	}
}

// WithFormOptions passes extra options to the form controller.
func WithFormOptions(opts ...form.Option) Option {
	return func(s *settings) {
		s.formOpts = append(s.formOpts, opts...)
	}
}

func newSettings(options []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&s)
	}
	return s
}

// NewDispatcher builds the primary client and the configured fallback.
func NewDispatcher(cfg Config, options ...Option) (*submit.Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := newSettings(options)
	submitOpts := []submit.Option{
		submit.WithSubject(cfg.Subject),
		submit.WithLogger(s.logger),
		submit.WithMetrics(s.metrics),
		submit.WithHTTPClient(s.client),
	}

	primary, err := submit.NewClient(cfg.Endpoint, submitOpts...)
	if err != nil {
		return nil, err
	}

	var fallback submit.Fallback
	switch cfg.Fallback {
	case config.FallbackPage:
		opener := s.opener
		if opener == nil {
			opener = submit.FileOpener(cfg.PageDir, s.logger)
		}
		fallback, err = submit.NewPage(cfg.Endpoint, opener, submitOpts...)
	default:
		fallback, err = submit.NewFormPost(cfg.Endpoint, submitOpts...)
	}
	if err != nil {
		return nil, err
	}
	return submit.NewDispatcher(primary, fallback, submitOpts...)
}

// NewController builds a dispatcher from cfg and a form controller on top.
func NewController(cfg Config, options ...Option) (*Controller, error) {
	dispatcher, err := NewDispatcher(cfg, options...)
	if err != nil {
		return nil, err
	}
	s := newSettings(options)
	opts := []form.Option{
		form.WithLogger(s.logger),
		form.WithMetrics(s.metrics),
		form.WithResetDelay(cfg.ResetDelay),
		form.WithPresenter(s.presenter),
	}
	return form.New(dispatcher, append(opts, s.formOpts...)...)
}
