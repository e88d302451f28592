package submit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/testsupport"
)

func testPayload() model.Payload {
	form := model.NewForm(testsupport.ValidValues())
	return model.BuildPayload(form, time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC))
}

func TestClient_SendsMultipartWithJSONAccept(t *testing.T) {
	var gotFields map[string]string
	var gotOrder []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		mr, err := r.MultipartReader()
		require.NoError(t, err)
		gotFields = map[string]string{}
		for {
			part, err := mr.NextPart()
			if err != nil {
				break
			}
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(part)
			gotFields[part.FormName()] = buf.String()
			gotOrder = append(gotOrder, part.FormName())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"next":"/thanks"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.Send(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, true, resp["ok"])

	wantOrder := []string{"fullName", "fatherName", "mobileNumber", "cnic", "username", "password", "timestamp", "_subject"}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, DefaultSubject, gotFields["_subject"])
	assert.Equal(t, "10/17/2026, 2:30:00 PM", gotFields["timestamp"])
	assert.NotContains(t, gotFields, "confirmPassword")
}

func TestClient_Failures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>thanks</html>"))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client, err := NewClient(srv.URL)
			require.NoError(t, err)
			_, err = client.Send(context.Background(), testPayload())
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestClient_StatusErrorKeepsReasonPhrase(t *testing.T) {
	cases := []struct {
		name   string
		status string
		want   string
	}{
		{name: "custom phrase", status: "429 Slow Down Please", want: "Slow Down Please"},
		{name: "no phrase", status: "429", want: http.StatusText(http.StatusTooManyRequests)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Status:     tc.status,
					Body:       io.NopCloser(strings.NewReader("")),
					Request:    r,
				}, nil
			})}
			c, err := NewClient("https://forms.example/f/abc", WithHTTPClient(client))
			require.NoError(t, err)

			_, err = c.Send(context.Background(), testPayload())
			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
			assert.Equal(t, tc.want, statusErr.Status)
		})
	}
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient("  ")
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestFormPost_IgnoresReplyStatus(t *testing.T) {
	var got map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	fb, err := NewFormPost(srv.URL, WithSubject("custom"))
	require.NoError(t, err)
	require.NoError(t, fb.Submit(context.Background(), testPayload()))

	assert.Equal(t, []string{"custom"}, got["_subject"])
	assert.Equal(t, []string{"12345-1234567-1"}, got["cnic"])
	assert.Len(t, got, 8)
}

type stubSender struct {
	calls int
	resp  Response
	err   error
}

func (s *stubSender) Send(context.Context, model.Payload) (Response, error) {
	s.calls++
	return s.resp, s.err
}

func TestDispatcher_PrimarySuccessSkipsFallback(t *testing.T) {
	primary := &stubSender{resp: Response{"ok": true}}
	var fallbackCalls int32
	fallback := FallbackFunc(func(context.Context, model.Payload) error {
		atomic.AddInt32(&fallbackCalls, 1)
		return nil
	})

	d, err := NewDispatcher(primary, fallback)
	require.NoError(t, err)

	res := d.Dispatch(context.Background(), testPayload())
	assert.Equal(t, PathPrimary, res.Path)
	assert.False(t, res.Masked())
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, atomic.LoadInt32(&fallbackCalls))
}

func TestDispatcher_FallbackOnceAndMasksFailure(t *testing.T) {
	primaryErr := &StatusError{Code: 503, Status: "Service Unavailable"}
	primary := &stubSender{err: primaryErr}
	var fallbackCalls int
	fallback := FallbackFunc(func(context.Context, model.Payload) error {
		fallbackCalls++
		return errors.New("fallback exploded")
	})

	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg, "regform")
	require.NoError(t, err)

	d, err := NewDispatcher(primary, fallback, WithMetrics(metrics))
	require.NoError(t, err)

	res := d.Dispatch(context.Background(), testPayload())
	assert.Equal(t, PathFallback, res.Path)
	assert.True(t, res.Masked())
	assert.ErrorIs(t, res.PrimaryErr, primaryErr)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallbackCalls)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Dispatches.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PrimaryFailures.WithLabelValues("status")))
}

func TestDispatcher_EndToEndFallbackAfterNetworkError(t *testing.T) {
	var posted int32
	fallbackSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&posted, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer fallbackSrv.Close()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	primary, err := NewClient(deadURL)
	require.NoError(t, err)
	fallback, err := NewFormPost(fallbackSrv.URL)
	require.NoError(t, err)
	d, err := NewDispatcher(primary, fallback)
	require.NoError(t, err)

	res := d.Dispatch(context.Background(), testPayload())
	assert.Equal(t, PathFallback, res.Path)
	assert.Equal(t, "network", failureReason(res.PrimaryErr))
	assert.EqualValues(t, 1, atomic.LoadInt32(&posted))
}

func TestPage_RendersHiddenSelfSubmittingForm(t *testing.T) {
	var captured []byte
	var name string
	page, err := NewPage("https://forms.example/f/abc", func(_ context.Context, n string, b []byte) error {
		name, captured = n, b
		return nil
	})
	require.NoError(t, err)

	form := model.NewForm(testsupport.ValidValues())
	form.SetValue(model.FieldFullName, `Ada "<b>" Lovelace`)
	p := model.BuildPayload(form, time.Now())

	require.NoError(t, page.Submit(context.Background(), p))

	html := string(captured)
	assert.True(t, strings.HasSuffix(name, ".html"))
	assert.Contains(t, html, `action="https://forms.example/f/abc"`)
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `name="_subject" value="New Registration Form Submission"`)
	assert.Contains(t, html, `name="cnic" value="12345-1234567-1"`)
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "alert-info")
	assert.Contains(t, html, ".submit();")
}

func TestFileOpener_WritesPage(t *testing.T) {
	dir := t.TempDir()
	open := FileOpener(dir, nil)
	require.NoError(t, open(context.Background(), "page.html", []byte("<html></html>")))
	assert.FileExists(t, dir+"/page.html")
}
