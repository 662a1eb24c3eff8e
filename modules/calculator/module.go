package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// CalculatorModule exposes the arithmetic dispatcher as a request-reply service.
type CalculatorModule struct {
	logger  types.Logger
	started bool
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*CalculatorModule)(nil)
	_ mono.ServiceProviderModule = (*CalculatorModule)(nil)
	_ mono.HealthCheckableModule = (*CalculatorModule)(nil)
)

// NewModule creates a new CalculatorModule.
func NewModule(logger types.Logger) *CalculatorModule {
	return &CalculatorModule{
		logger: logger.WithModule("calculator"),
	}
}

// Name returns the module name.
func (m *CalculatorModule) Name() string {
	return "calculator"
}

// RegisterServices registers request-reply services in the service container.
func (m *CalculatorModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCalculate, json.Unmarshal, json.Marshal, m.calculate,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCalculate, err)
	}

	m.logger.Info("Registered services", "services", []string{ServiceCalculate})
	return nil
}

// Start initializes the calculator module.
func (m *CalculatorModule) Start(_ context.Context) error {
	m.started = true
	m.logger.Info("Module started")
	return nil
}

// Stop stops the calculator module.
func (m *CalculatorModule) Stop(_ context.Context) error {
	m.started = false
	m.logger.Info("Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *CalculatorModule) Health(_ context.Context) mono.HealthStatus {
	if !m.started {
		return mono.HealthStatus{
			Healthy: false,
			Message: "not started",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}
