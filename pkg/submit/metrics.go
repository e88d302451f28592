package submit

import (
	"context"
	"errors"
	"net"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts submission attempts and outcomes.
type Metrics struct {
	ValidationFailures prometheus.Counter
	Dispatches         *prometheus.CounterVec
	PrimaryFailures    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "validation_failures_total",
			Help:      "Submit attempts rejected by field validation",
		}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "dispatches_total",
			Help:      "Payloads dispatched, by delivery path",
		}, []string{"path"}),
		PrimaryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "primary_failures_total",
			Help:      "Primary submission failures, by reason",
		}, []string{"reason"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.ValidationFailures, m.Dispatches, m.PrimaryFailures} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ObserveValidationFailure counts a rejected submit attempt.
func (m *Metrics) ObserveValidationFailure() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

func (m *Metrics) observeDispatch(path Path, primaryErr error) {
	if m == nil {
		return
	}
	m.Dispatches.WithLabelValues(string(path)).Inc()
	if primaryErr != nil {
		m.PrimaryFailures.WithLabelValues(failureReason(primaryErr)).Inc()
	}
}

func failureReason(err error) string {
	var statusErr *StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &netErr):
		return "network"
	default:
		return "other"
	}
}
