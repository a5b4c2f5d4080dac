package identity

import (
	"fmt"
	"time"
)

// ConfigNamespace is the section the SDK reads from a raw configuration
// document.
const ConfigNamespace = "identityVerification"

type Config struct {
	Endpoint string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func (c Config) validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}
	return nil
}

// ConfigFromMap extracts the SDK configuration from a raw document, e.g.
// a decoded JSON settings file shared with other SDKs. The
// identityVerification section and its endpoint key are mandatory.
func ConfigFromMap(raw map[string]any) (Config, error) {
	section, ok := raw[ConfigNamespace].(map[string]any)
	if !ok {
		return Config{}, fmt.Errorf("%w: missing %q section", ErrInvalidConfig, ConfigNamespace)
	}

	endpoint, ok := section["endpoint"].(string)
	if !ok || endpoint == "" {
		return Config{}, fmt.Errorf("%w: missing %q endpoint", ErrInvalidConfig, ConfigNamespace)
	}

	cfg := Config{Endpoint: endpoint}

	if secs, ok := section["timeoutSeconds"].(float64); ok && secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if mins, ok := section["cacheTtlMinutes"].(float64); ok && mins > 0 {
		cfg.CacheTTL = time.Duration(mins) * time.Minute
	}

	return cfg, nil
}
