// Package testsupport holds helpers shared by package tests: a presenter that
// records every call and a fixture of valid registration values.
package testsupport

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/strength"
)

// Recorder is a render.Presenter that keeps every call in order. It is safe
// for concurrent use because reset timers call presenters from their own
// goroutine.
type Recorder struct {
	mu       sync.Mutex
	calls    []string
	values   map[model.FieldName]string
	statuses map[model.FieldName]model.Status
	terms    model.Status
	strength *strength.Assessment
	busy     []bool
	banners  []render.Banner
}

var _ render.Presenter = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		values:   make(map[model.FieldName]string),
		statuses: make(map[model.FieldName]model.Status),
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) SetValue(field model.FieldName, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[field] = value
	r.record("value %s=%s", field, value)
}

func (r *Recorder) SetFieldStatus(field model.FieldName, status model.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[field] = status
	r.record("status %s=%s", field, status)
}

func (r *Recorder) SetTermsStatus(status model.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = status
	r.record("terms=%s", status)
}

func (r *Recorder) ShowStrength(a strength.Assessment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strength = &a
	r.record("strength=%d", a.Score)
}

func (r *Recorder) ResetStrength() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strength = nil
	r.record("strength reset")
}

func (r *Recorder) SetBusy(busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = append(r.busy, busy)
	r.record("busy=%t", busy)
}

func (r *Recorder) ShowBanner(b render.Banner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banners = append(r.banners, b)
	r.record("banner %s: %s", b.Kind, b.Message)
}

// Calls returns a copy of the call log.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// StatusCalls counts SetFieldStatus calls for field.
func (r *Recorder) StatusCalls(field model.FieldName) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := "status " + string(field) + "="
	n := 0
	for _, call := range r.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// Status returns the last rendered status of field.
func (r *Recorder) Status(field model.FieldName) model.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statuses[field]
}

// Terms returns the last rendered terms status.
func (r *Recorder) Terms() model.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.terms
}

// Value returns the last rendered value of field.
func (r *Recorder) Value(field model.FieldName) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[field]
}

// Strength returns the last rendered assessment, nil when idle.
func (r *Recorder) Strength() *strength.Assessment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.strength
}

// Busy returns the sequence of SetBusy arguments.
func (r *Recorder) Busy() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.busy...)
}

// Banners returns every banner shown so far.
func (r *Recorder) Banners() []render.Banner {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]render.Banner(nil), r.banners...)
}
