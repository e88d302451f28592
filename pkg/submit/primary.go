package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/model"
)

// Response is the decoded JSON body of a successful primary submission.
type Response map[string]any

// Sender performs the primary submission.
type Sender interface {
	Send(ctx context.Context, p model.Payload) (Response, error)
}

// Client posts payloads as multipart form data and expects JSON back.
type Client struct {
	endpoint string
	settings settings
}

var _ Sender = (*Client)(nil)

// NewClient builds a primary sender for endpoint.
func NewClient(endpoint string, options ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	return &Client{endpoint: endpoint, settings: newSettings(options)}, nil
}

// Send posts p. It fails on transport errors, non-2xx replies and bodies
// that are not JSON.
func (c *Client) Send(ctx context.Context, p model.Payload) (Response, error) {
	body, contentType, err := encodeMultipart(p, c.settings.subject)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("submit: request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	log := c.settings.logger.With(zap.Stringer("submission", p.ID()))
	log.Debug("sending registration", zap.String("endpoint", c.endpoint))

	resp, err := c.settings.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit: do request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug("endpoint replied", zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Status: reasonPhrase(resp)}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// reasonPhrase returns the endpoint's own status text, without the code.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}

func encodeMultipart(p model.Payload, subject string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, pair := range p.Fields(subject) {
		if err := w.WriteField(string(pair.Name), pair.Value); err != nil {
			return nil, "", fmt.Errorf("submit: encode %s: %w", pair.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("submit: encode: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
