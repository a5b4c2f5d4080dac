package auth

import (
	"context"
	"errors"
)

// ErrNotSignedIn indicates no authenticated user is available to sign
// requests for.
var ErrNotSignedIn = errors.New("not signed in")

// TokenProvider produces the Authorization header value for the current
// signed-in user.
type TokenProvider interface {
	AuthHeader(ctx context.Context) (string, error)
}

// Static always signs with a fixed bearer token.
type Static struct {
	token string
}

func NewStatic(token string) *Static {
	return &Static{token: token}
}

func (s *Static) AuthHeader(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", ErrNotSignedIn
	}
	return "Bearer " + s.token, nil
}

var _ TokenProvider = (*Static)(nil)
