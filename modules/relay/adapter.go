package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// relayAdapter wraps ServiceContainer for type-safe cross-module communication.
type relayAdapter struct {
	container mono.ServiceContainer
}

// NewRelayAdapter creates a new adapter for the relay services.
func NewRelayAdapter(container mono.ServiceContainer) RelayPort {
	if container == nil {
		panic("relay adapter requires non-nil ServiceContainer")
	}
	return &relayAdapter{container: container}
}

// FetchExternal fetches the upstream JSON body via the fetch-external service.
func (a *relayAdapter) FetchExternal(ctx context.Context) (json.RawMessage, error) {
	var resp FetchResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceFetchExternal,
		json.Marshal,
		json.Unmarshal,
		&FetchRequest{},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%w: fetch-external service call failed: %v", ErrUpstreamFailure, err)
	}

	return decodeResponse(resp)
}

// decodeResponse maps a service response back to a body or ErrUpstreamFailure.
func decodeResponse(resp FetchResponse) (json.RawMessage, error) {
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamFailure, resp.Error)
	}
	if len(resp.Body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUpstreamFailure)
	}
	return json.RawMessage(resp.Body), nil
}
