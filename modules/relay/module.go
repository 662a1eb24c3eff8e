package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// RelayModule forwards requests to a fixed third-party API.
type RelayModule struct {
	upstreamURL string
	logger      types.Logger
	started     bool
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*RelayModule)(nil)
	_ mono.ServiceProviderModule = (*RelayModule)(nil)
	_ mono.HealthCheckableModule = (*RelayModule)(nil)
)

// NewModule creates a new RelayModule targeting upstreamURL.
func NewModule(upstreamURL string, logger types.Logger) *RelayModule {
	return &RelayModule{
		upstreamURL: upstreamURL,
		logger:      logger.WithModule("relay"),
	}
}

// Name returns the module name.
func (m *RelayModule) Name() string {
	return "relay"
}

// RegisterServices registers request-reply services in the service container.
func (m *RelayModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceFetchExternal, json.Unmarshal, json.Marshal, m.fetchExternal,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceFetchExternal, err)
	}

	m.logger.Info("Registered services", "services", []string{ServiceFetchExternal})
	return nil
}

// Start initializes the relay module.
func (m *RelayModule) Start(_ context.Context) error {
	if m.upstreamURL == "" {
		return fmt.Errorf("upstream URL not set")
	}
	m.started = true
	m.logger.Info("Module started", "upstream", m.upstreamURL)
	return nil
}

// Stop stops the relay module.
func (m *RelayModule) Stop(_ context.Context) error {
	m.started = false
	m.logger.Info("Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *RelayModule) Health(_ context.Context) mono.HealthStatus {
	if !m.started {
		return mono.HealthStatus{
			Healthy: false,
			Message: "not started",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"upstream": m.upstreamURL,
		},
	}
}
