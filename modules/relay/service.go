package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
)

// fetchExternal handles the fetch-external service request.
// Upstream failures are reported in the response so the message survives the bus.
func (m *RelayModule) fetchExternal(ctx context.Context, _ FetchRequest, _ *mono.Msg) (FetchResponse, error) {
	body, err := m.fetch(ctx)
	if err != nil {
		m.logger.Debug("Upstream request failed", "upstream", m.upstreamURL, "error", err)
		return FetchResponse{Error: err.Error()}, nil
	}
	return FetchResponse{Body: []byte(body)}, nil
}

// fetch performs a single GET against the upstream with no retry.
// The call is bounded only by the deadline of ctx, if it has one.
func (m *RelayModule) fetch(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("upstream request not sent: %w", err)
	}

	agent := fiber.Get(m.upstreamURL)
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	}
	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("invalid upstream request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("upstream request failed: %w", errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("upstream responded with status %d", code)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("upstream returned a non-JSON body")
	}

	return json.RawMessage(body), nil
}
