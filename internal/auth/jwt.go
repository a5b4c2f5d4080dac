package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT signs short-lived HS256 tokens for a fixed subject, reusing the
// current token until it nears expiry.
type JWT struct {
	signingKey []byte
	issuer     string
	subject    string
	ttl        time.Duration

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewJWT(signingKey, issuer, subject string, ttl time.Duration) *JWT {
	return &JWT{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		subject:    subject,
		ttl:        ttl,
	}
}

func (j *JWT) AuthHeader(ctx context.Context) (string, error) {
	if j.subject == "" {
		return "", ErrNotSignedIn
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	// Refresh a little early so the backend never sees an expired token.
	if j.token != "" && time.Now().Add(30*time.Second).Before(j.expiresAt) {
		return "Bearer " + j.token, nil
	}

	now := time.Now()
	expiresAt := now.Add(j.ttl)

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   j.subject,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	})

	signed, err := newToken.SignedString(j.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	j.token = signed
	j.expiresAt = expiresAt

	return "Bearer " + signed, nil
}

var _ TokenProvider = (*JWT)(nil)
