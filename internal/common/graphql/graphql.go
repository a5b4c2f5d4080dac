package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// CachePolicy controls whether a fetch consults the local response cache.
type CachePolicy string

const (
	// NetworkOnly ignores any cached response and always hits the backend.
	NetworkOnly CachePolicy = "network-only"

	// CacheOnly never hits the backend; a miss fails with ErrCacheMiss.
	CacheOnly CachePolicy = "cache-only"

	// CacheFirst returns a cached response when present, fetching otherwise.
	CacheFirst CachePolicy = "cache-first"
)

var ErrCacheMiss = errors.New("no cached response")

type Request struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type ErrorEntry struct {
	Message string `json:"message"`
}

type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []ErrorEntry    `json:"errors,omitempty"`
}

func (r *Response) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// JoinedErrors concatenates all protocol-level error messages.
func (r *Response) JoinedErrors() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Client executes query/mutation operations against the backend and owns
// the local response cache.
type Client interface {
	Fetch(ctx context.Context, req Request, policy CachePolicy) (*Response, error)
	ClearCaches(ctx context.Context) error
}
