package identity

import (
	"errors"

	"github.com/JulianoL13/identity-verify-sdk/internal/auth"
)

var (
	// ErrInvalidConfig indicates a malformed configuration or an
	// unbuildable transport; construction-time only.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput is reserved for caller input validation, which is
	// currently backend-enforced.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadData is reserved for malformed cached or backend payloads
	// surfaced by lower layers.
	ErrBadData = errors.New("bad data")

	// ErrIdentityNotVerified indicates a verify call produced no
	// confident result.
	ErrIdentityNotVerified = errors.New("identity not verified")

	// ErrNotSignedIn mirrors the auth package sentinel so callers can
	// match against either.
	ErrNotSignedIn = auth.ErrNotSignedIn

	// ErrVerificationResultNotFound indicates no verification record
	// exists for the current user.
	ErrVerificationResultNotFound = errors.New("verification result not found")

	// ErrGraphQL indicates the backend returned protocol-level errors;
	// wrapped instances carry the joined messages.
	ErrGraphQL = errors.New("graphql error")

	// ErrFatal indicates an unexpected internal condition.
	ErrFatal = errors.New("fatal error")
)
