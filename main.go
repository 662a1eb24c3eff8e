package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/AlanMaria/sit737-2025-prac4p/logging"
	"github.com/AlanMaria/sit737-2025-prac4p/modules/api"
	"github.com/AlanMaria/sit737-2025-prac4p/modules/calculator"
	"github.com/AlanMaria/sit737-2025-prac4p/modules/relay"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("PORT", 3000)
	logCfg := logging.DefaultConfig()
	logCfg.Dir = getEnv("LOG_DIR", logCfg.Dir)
	logCfg.Level = getEnv("LOG_LEVEL", logCfg.Level)

	logger, err := logging.New(logCfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Create mono application
	app, err := newApplication(logger)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: service providers first, then the HTTP driving adapter
	modules := []mono.Module{
		calculator.NewModule(logger),
		relay.NewModule(relay.DefaultUpstreamURL, logger),
		api.NewModule(httpPort, logger),
	}
	for _, m := range modules {
		if err := app.Register(m); err != nil {
			log.Fatalf("Failed to register %s module: %v", m.Name(), err)
		}
	}

	if err := app.Start(context.Background()); err != nil {
		logger.Error("Failed to start application", "error", err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("Application started",
		"port", httpPort,
		"log_dir", logCfg.Dir,
		"upstream", relay.DefaultUpstreamURL)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				logger.Info("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	logger.Info("Application exited", "code", exitCode)
	_ = logger.Sync()
	os.Exit(exitCode)
}

// newApplication creates the mono application with framework records routed
// through logger, so they reach the same sinks as module records.
func newApplication(logger types.Logger, opts ...mono.MonoFrameworkOption) (mono.MonoApplication, error) {
	base := []mono.MonoFrameworkOption{
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogger(logger.WithModule("mono")),
	}
	return mono.NewMonoApplication(append(base, opts...)...)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
