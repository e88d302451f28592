package submit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/model"
)

// Fallback performs the secondary submission. The dispatcher logs the
// returned error but never propagates it.
type Fallback interface {
	Submit(ctx context.Context, p model.Payload) error
}

// FallbackFunc adapts a function to Fallback.
type FallbackFunc func(ctx context.Context, p model.Payload) error

// Submit calls f.
func (f FallbackFunc) Submit(ctx context.Context, p model.Payload) error {
	return f(ctx, p)
}

// FormPost submits the payload the way a plain HTML form would: an
// urlencoded POST whose reply is read and discarded.
type FormPost struct {
	endpoint string
	settings settings
}

var _ Fallback = (*FormPost)(nil)

// NewFormPost builds a urlencoded fallback for endpoint.
func NewFormPost(endpoint string, options ...Option) (*FormPost, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	return &FormPost{endpoint: endpoint, settings: newSettings(options)}, nil
}

// Submit posts p. Only transport errors are reported; the status code is
// logged and otherwise ignored.
func (f *FormPost) Submit(ctx context.Context, p model.Payload) error {
	values := url.Values{}
	for _, pair := range p.Fields(f.settings.subject) {
		values.Set(string(pair.Name), pair.Value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("submit: fallback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.settings.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit: fallback post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	f.settings.logger.Debug("fallback form posted",
		zap.Stringer("submission", p.ID()),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
