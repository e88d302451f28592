package submit

import (
	"net/http"

	"go.uber.org/zap"
)

// DefaultSubject is the _subject line sent with every submission.
const DefaultSubject = "New Registration Form Submission"

// DefaultEndpoint is the hosted form the registration page posts to.
const DefaultEndpoint = "https://formspree.io/f/xzzazwzo"

// Option configures senders, fallbacks and the dispatcher.
type Option func(*settings)

type settings struct {
	client  *http.Client
	subject string
	logger  *zap.Logger
	metrics *Metrics
}

func newSettings(options []Option) settings {
	s := settings{
		client:  http.DefaultClient,
		subject: DefaultSubject,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&s)
	}
	return s
}

// WithHTTPClient overrides the client. No timeout is imposed beyond the
// client's own configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		if client != nil {
			s.client = client
		}
	}
}

// WithSubject overrides the _subject line. An empty subject omits the field.
func WithSubject(subject string) Option {
	return func(s *settings) {
		s.subject = subject
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records dispatch outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}
