package relay

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-monolith/mono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consumerModule depends on the relay module and captures its container.
type consumerModule struct {
	container mono.ServiceContainer
}

var (
	_ mono.Module          = (*consumerModule)(nil)
	_ mono.DependentModule = (*consumerModule)(nil)
)

func (p *consumerModule) Name() string                  { return "consumer" }
func (p *consumerModule) Start(_ context.Context) error { return nil }
func (p *consumerModule) Stop(_ context.Context) error  { return nil }
func (p *consumerModule) Dependencies() []string        { return []string{"relay"} }
func (p *consumerModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "relay" {
		p.container = container
	}
}

// startRelayApp runs the relay module inside a real mono application with an
// in-process NATS connection and returns an adapter bound to it.
func startRelayApp(t *testing.T, upstreamURL string) RelayPort {
	t.Helper()

	app, err := mono.NewMonoApplication(
		mono.WithLogLevel(mono.LogLevelError),
		mono.WithNATSDontListen(),
		mono.WithNATSInProcessConn(),
	)
	require.NoError(t, err)

	consumer := &consumerModule{}
	require.NoError(t, app.Register(NewModule(upstreamURL, &mockLogger{})))
	require.NoError(t, app.Register(consumer))

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() {
		_ = app.Stop(context.Background())
	})

	require.NotNil(t, consumer.container, "dependency container not injected")
	return NewRelayAdapter(consumer.container)
}

func TestRelayAdapter_BodyIsByteExact(t *testing.T) {
	payload := "{\"html\": \"<b>a & b</b>\",\n  \"n\": 1}"
	upstream := newUpstream(t, http.StatusOK, payload)
	port := startRelayApp(t, upstream.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	body, err := port.FetchExternal(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

func TestRelayAdapter_UpstreamFailure(t *testing.T) {
	upstream := newUpstream(t, http.StatusServiceUnavailable, `{"error":"down"}`)
	port := startRelayApp(t, upstream.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := port.FetchExternal(ctx)
	assert.True(t, errors.Is(err, ErrUpstreamFailure), "got %v", err)
	assert.Contains(t, err.Error(), "503")
}
