package relay

import (
	"context"
	"encoding/json"
	"errors"
)

// DefaultUpstreamURL is the third-party endpoint the relay forwards to.
const DefaultUpstreamURL = "https://randomuser.me/api/"

// ServiceFetchExternal is the request-reply service name.
const ServiceFetchExternal = "fetch-external"

// ErrUpstreamFailure is returned when the upstream call fails for any reason.
var ErrUpstreamFailure = errors.New("upstream failure")

// FetchRequest is the request for the fetch-external service.
type FetchRequest struct{}

// FetchResponse carries either the upstream body or the failure message.
// Body is []byte so it crosses the bus base64-encoded and byte-exact.
type FetchResponse struct {
	Body  []byte `json:"body,omitempty"`
	Error string `json:"error,omitempty"`
}

// RelayPort defines the interface for the external fetch relay.
type RelayPort interface {
	FetchExternal(ctx context.Context) (json.RawMessage, error)
}
