package identity

import (
	"fmt"
	"sync"

	"github.com/JulianoL13/identity-verify-sdk/internal/auth"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs"
)

// connectionManager hands back one shared transport per token provider,
// built lazily from the process-wide default configuration.
type connectionManager struct {
	mu         sync.Mutex
	defaultCfg *Config
	transports map[auth.TokenProvider]graphql.Client
}

var connections = &connectionManager{
	transports: make(map[auth.TokenProvider]graphql.Client),
}

// SetDefaultConfig installs the configuration FromConnectionManager uses
// when building transports. Call it once during process startup.
func SetDefaultConfig(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	connections.mu.Lock()
	defer connections.mu.Unlock()
	connections.defaultCfg = &cfg
	return nil
}

// FromConnectionManager builds a client backed by the shared transport
// for the given provider, creating it on first use.
func FromConnectionManager(provider auth.TokenProvider, logger logs.Logger) (*Client, error) {
	transport, err := connections.transport(provider, logger)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(transport, logger)
}

func (m *connectionManager) transport(provider auth.TokenProvider, logger logs.Logger) (graphql.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.transports[provider]; ok {
		return t, nil
	}
	if m.defaultCfg == nil {
		return nil, fmt.Errorf("%w: connection manager has no default configuration", ErrInvalidConfig)
	}

	t, err := buildTransport(*m.defaultCfg, provider, logger)
	if err != nil {
		return nil, err
	}
	m.transports[provider] = t
	return t, nil
}
