package api

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanMaria/sit737-2025-prac4p/modules/calculator"
	"github.com/AlanMaria/sit737-2025-prac4p/modules/relay"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the driving adapter that exposes the HTTP endpoints.
// It calls into the calculator and relay modules through their ports.
type APIModule struct {
	app        *fiber.App
	port       int
	calculator calculator.CalculatorPort
	relay      relay.RelayPort
	logger     types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates a new APIModule listening on port.
func NewModule(port int, logger types.Logger) *APIModule {
	return &APIModule{
		port:   port,
		logger: logger.WithModule("api"),
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"calculator", "relay"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "calculator":
		m.calculator = calculator.NewCalculatorAdapter(container)
	case "relay":
		m.relay = relay.NewRelayAdapter(container)
	}
}

// Start initializes and starts the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.calculator == nil {
		return fmt.Errorf("calculator dependency not set")
	}
	if m.relay == nil {
		return fmt.Errorf("relay dependency not set")
	}

	m.app = NewApp(NewHandlers(m.calculator, m.relay, m.logger), m.logger)

	addr := fmt.Sprintf(":%d", m.port)
	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(addr); err != nil {
			errCh <- err
		}
	}()

	// Wait briefly to catch immediate startup errors (port in use, permission denied)
	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	m.logger.Info(fmt.Sprintf("Calculator microservice running at http://localhost:%d", m.port))
	return nil
}

// Stop gracefully shuts down the HTTP server, waiting for in-flight requests.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server...")
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	m.logger.Info("HTTP server stopped")
	return nil
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "HTTP server not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// NewApp builds the Fiber application with middleware and routes.
func NewApp(h *Handlers, logger types.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Calculator Microservice",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(RequestID())

	// /external-api must be registered before the catch-all operation route.
	app.Get("/external-api", h.ExternalAPI)
	app.Get("/:operation", h.Operation)

	return app
}

// errorHandler handles errors globally.
func errorHandler(logger types.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestLogger(c, logger).Error("HTTP error",
			"code", code, "message", message, "error", err.Error())

		return c.Status(code).JSON(ErrorResponse{Error: message})
	}
}
