package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)         {}
func (m *mockLogger) Info(msg string, args ...any)          {}
func (m *mockLogger) Warn(msg string, args ...any)          {}
func (m *mockLogger) Error(msg string, args ...any)         {}
func (m *mockLogger) With(args ...any) types.Logger         { return m }
func (m *mockLogger) WithError(err error) types.Logger      { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func newUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchExternal_Success(t *testing.T) {
	upstream := newUpstream(t, http.StatusOK, `{"x":1}`)
	m := NewModule(upstream.URL, &mockLogger{})

	resp, err := m.fetchExternal(context.Background(), FetchRequest{}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.JSONEq(t, `{"x":1}`, string(resp.Body))
}

func TestFetchExternal_BodyRelayedVerbatim(t *testing.T) {
	payload := `{"results":[{"name":{"first":"Ada"}}],"info":{"seed":"abc","page":1}}`
	upstream := newUpstream(t, http.StatusOK, payload)
	m := NewModule(upstream.URL, &mockLogger{})

	body, err := m.fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

func TestFetchExternal_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"down"}`},
		{name: "not found", status: http.StatusNotFound, body: `{}`},
		{name: "non-JSON body", status: http.StatusOK, body: `<html>oops</html>`},
		{name: "empty body", status: http.StatusOK, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := newUpstream(t, tt.status, tt.body)
			m := NewModule(upstream.URL, &mockLogger{})

			resp, err := m.fetchExternal(context.Background(), FetchRequest{}, nil)
			require.NoError(t, err, "failures are reported in the response")
			assert.NotEmpty(t, resp.Error)
			assert.Empty(t, resp.Body)
		})
	}
}

func TestFetchExternal_ConnectionRefused(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	m := NewModule(url, &mockLogger{})

	_, err := m.fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchExternal_DeadlineBoundsUpstream(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(upstream.Close)
	t.Cleanup(func() { close(release) })

	m := NewModule(upstream.URL, &mockLogger{})
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := m.fetch(ctx)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchExternal_CanceledContext(t *testing.T) {
	upstream := newUpstream(t, http.StatusOK, `{}`)
	m := NewModule(upstream.URL, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := m.fetchExternal(ctx, FetchRequest{}, nil)
	require.NoError(t, err)
	assert.Contains(t, resp.Error, context.Canceled.Error())
}

func TestDecodeResponse(t *testing.T) {
	body, err := decodeResponse(FetchResponse{Body: []byte(`{"x":1}`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(body))

	_, err = decodeResponse(FetchResponse{Error: "upstream responded with status 503"})
	assert.True(t, errors.Is(err, ErrUpstreamFailure))
	assert.Contains(t, err.Error(), "503")

	_, err = decodeResponse(FetchResponse{})
	assert.True(t, errors.Is(err, ErrUpstreamFailure))
}

func TestModule_Lifecycle(t *testing.T) {
	ctx := context.Background()

	m := NewModule(DefaultUpstreamURL, &mockLogger{})
	assert.Equal(t, "relay", m.Name())
	assert.False(t, m.Health(ctx).Healthy)

	require.NoError(t, m.Start(ctx))
	health := m.Health(ctx)
	assert.True(t, health.Healthy)
	assert.Equal(t, DefaultUpstreamURL, health.Details["upstream"])

	require.NoError(t, m.Stop(ctx))

	assert.Error(t, NewModule("", &mockLogger{}).Start(ctx))
}
