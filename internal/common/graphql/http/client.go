package httpgraphql

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/auth"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql/cache"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs"
	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// Client is the default transport: GraphQL over HTTP POST with a local
// response cache consulted per CachePolicy.
type Client struct {
	endpoint string
	client   *http.Client
	provider auth.TokenProvider
	store    cache.Store
	logger   logs.Logger
}

func New(endpoint string, provider auth.TokenProvider, store cache.Store, logger logs.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.client.Timeout = timeout
	return c
}

func (c *Client) Fetch(ctx context.Context, req graphql.Request, policy graphql.CachePolicy) (*graphql.Response, error) {
	key := requestKey(req)

	switch policy {
	case graphql.CacheOnly:
		return c.fromCache(ctx, key)
	case graphql.CacheFirst:
		if resp, err := c.fromCache(ctx, key); err == nil {
			return resp, nil
		} else if !errors.Is(err, graphql.ErrCacheMiss) {
			return nil, err
		}
	}

	return c.fromNetwork(ctx, req, key)
}

func (c *Client) ClearCaches(ctx context.Context) error {
	if err := c.store.Flush(ctx); err != nil {
		return fmt.Errorf("clear caches: %w", err)
	}
	return nil
}

func (c *Client) fromCache(ctx context.Context, key string) (*graphql.Response, error) {
	payload, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return &graphql.Response{Data: payload}, nil
}

func (c *Client) fromNetwork(ctx context.Context, req graphql.Request, key string) (*graphql.Response, error) {
	requestID := uuid.NewString()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("bad request: %w", err)
	}

	header, err := c.provider.AuthHeader(ctx)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", header)
	httpReq.Header.Set("X-Request-ID", requestID)

	start := time.Now()

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Debug("graphql fetch failed",
			"operation", req.OperationName,
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("fetch %s: %w", req.OperationName, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: bad status: %d", req.OperationName, httpResp.StatusCode)
	}

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp graphql.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("graphql fetch",
		"operation", req.OperationName,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
		"protocol_errors", len(resp.Errors),
	)

	if !resp.HasErrors() && resp.Data != nil {
		if err := c.store.Set(ctx, key, resp.Data); err != nil {
			c.logger.Warn("cache fill failed", "operation", req.OperationName, "error", err)
		}
	}

	return &resp, nil
}

func requestKey(req graphql.Request) string {
	h := sha256.New()
	h.Write([]byte(req.OperationName))
	h.Write([]byte{0})
	h.Write([]byte(req.Query))
	if len(req.Variables) > 0 {
		vars, _ := json.Marshal(req.Variables)
		h.Write([]byte{0})
		h.Write(vars)
	}
	return hex.EncodeToString(h.Sum(nil))
}

var _ graphql.Client = (*Client)(nil)
