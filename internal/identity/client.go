package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JulianoL13/identity-verify-sdk/internal/auth"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql/cache"
	httpgraphql "github.com/JulianoL13/identity-verify-sdk/internal/common/graphql/http"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/workerpool"
)

// Client is the verification client facade. It translates transport
// results into domain values and serializes identity submissions.
type Client struct {
	transport graphql.Client
	mutations *workerpool.Pool
	logger    logs.Logger
}

// New builds a client with the default HTTP transport and an in-process
// response cache. Construction is all-or-nothing.
func New(cfg Config, provider auth.TokenProvider, logger logs.Logger) (*Client, error) {
	transport, err := buildTransport(cfg, provider, logger)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(transport, logger)
}

// NewWithTransport injects a pre-built transport, which is how tests
// substitute doubles.
func NewWithTransport(transport graphql.Client, logger logs.Logger) (*Client, error) {
	// One worker: at most one verify mutation in flight per client.
	mutations, err := workerpool.New(1)
	if err != nil {
		return nil, fmt.Errorf("%w: mutation queue: %v", ErrInvalidConfig, err)
	}
	return &Client{
		transport: transport,
		mutations: mutations,
		logger:    logger,
	}, nil
}

func buildTransport(cfg Config, provider auth.TokenProvider, logger logs.Logger) (graphql.Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	store := cache.NewMemory()
	if cfg.CacheTTL > 0 {
		store.WithTTL(cfg.CacheTTL)
	}

	transport := httpgraphql.New(cfg.Endpoint, provider, store, logger)
	if cfg.Timeout > 0 {
		transport.WithTimeout(cfg.Timeout)
	}
	return transport, nil
}

// Close releases the mutation queue. The client must not be used after.
func (c *Client) Close() {
	c.mutations.Stop()
}

// ListSupportedCountries returns the ISO country codes the backend can
// verify. The local cache is never consulted so the list always reflects
// current backend state.
func (c *Client) ListSupportedCountries(ctx context.Context) ([]string, error) {
	resp, err := c.transport.Fetch(ctx, graphql.Request{
		OperationName: opGetSupportedCountries,
		Query:         getSupportedCountriesQuery,
	}, graphql.NetworkOnly)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return []string{}, nil
	}
	if resp.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, resp.JoinedErrors())
	}

	var data struct {
		GetSupportedCountries *struct {
			CountryList []string `json:"countryList"`
		} `json:"getSupportedCountries"`
	}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: decode country list: %v", ErrBadData, err)
		}
	}
	if data.GetSupportedCountries == nil || data.GetSupportedCountries.CountryList == nil {
		return []string{}, nil
	}
	return data.GetSupportedCountries.CountryList, nil
}

// VerifyIdentity submits an identity for verification. Submissions from
// one client are serialized: a second call does not reach the transport
// until the first has resolved and its result has been observed.
func (c *Client) VerifyIdentity(ctx context.Context, in VerifyInput) (*VerifiedIdentity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		vi  *VerifiedIdentity
		err error
	}
	done := make(chan outcome, 1)

	// Once dequeued the mutation runs to completion; caller cancellation
	// no longer applies. The outcome send is unconditional: a panicked
	// submission must not leave the caller blocked on done.
	err := c.mutations.Submit(context.WithoutCancel(ctx), func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: verify submission panicked: %v", ErrFatal, r)}
			}
		}()
		vi, err := c.submitVerification(ctx, in)
		done <- outcome{vi: vi, err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: mutation queue: %v", ErrFatal, err)
	}

	out := <-done
	return out.vi, out.err
}

func (c *Client) submitVerification(ctx context.Context, in VerifyInput) (*VerifiedIdentity, error) {
	variables := map[string]any{
		"input": map[string]any{
			"firstName":   in.FirstName,
			"lastName":    in.LastName,
			"address":     in.Address,
			"city":        in.City,
			"state":       in.State,
			"postalCode":  in.PostalCode,
			"country":     in.Country,
			"dateOfBirth": in.DateOfBirth,
		},
	}

	resp, err := c.transport.Fetch(ctx, graphql.Request{
		OperationName: opVerifyIdentity,
		Query:         verifyIdentityMutation,
		Variables:     variables,
	}, graphql.NetworkOnly)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrIdentityNotVerified
	}
	if resp.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, resp.JoinedErrors())
	}

	var data struct {
		VerifyIdentity *verifiedIdentityPayload `json:"verifyIdentity"`
	}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: decode verify response: %v", ErrBadData, err)
		}
	}
	if data.VerifyIdentity == nil {
		return nil, ErrIdentityNotVerified
	}

	c.logger.Debug("identity submitted",
		"owner", data.VerifyIdentity.Owner,
		"verified", data.VerifyIdentity.Verified,
	)
	return data.VerifyIdentity.toDomain(), nil
}

// CheckIdentityVerification reads the current user's verification record.
// CacheOnly never touches the network and fails when nothing is cached;
// RemoteOnly always fetches, ignoring any cached record.
func (c *Client) CheckIdentityVerification(ctx context.Context, option QueryOption) (*VerifiedIdentity, error) {
	policy := graphql.NetworkOnly
	if option == CacheOnly {
		policy = graphql.CacheOnly
	}

	resp, err := c.transport.Fetch(ctx, graphql.Request{
		OperationName: opCheckIdentityVerification,
		Query:         checkIdentityVerificationQuery,
	}, policy)
	if errors.Is(err, graphql.ErrCacheMiss) {
		return nil, ErrVerificationResultNotFound
	}
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrVerificationResultNotFound
	}
	if resp.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, resp.JoinedErrors())
	}

	var data struct {
		CheckIdentityVerification *verifiedIdentityPayload `json:"checkIdentityVerification"`
	}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: decode verification record: %v", ErrBadData, err)
		}
	}
	if data.CheckIdentityVerification == nil {
		return nil, ErrVerificationResultNotFound
	}
	return data.CheckIdentityVerification.toDomain(), nil
}

// Reset clears all locally cached responses. The client stays usable.
func (c *Client) Reset(ctx context.Context) error {
	if err := c.transport.ClearCaches(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrFatal, err)
	}
	return nil
}
