package identity

import (
	"time"
)

// QueryOption controls whether a status check reads from the local cache
// or forces a remote fetch.
type QueryOption string

const (
	CacheOnly  QueryOption = "cache-only"
	RemoteOnly QueryOption = "remote-only"
)

// VerifiedIdentity is the backend's verification record for one user.
type VerifiedIdentity struct {
	Owner           string
	Verified        bool
	VerifiedAt      *time.Time
	Method          string
	CanAttemptAgain bool
	IDScanURL       string
}

// VerifyInput carries the fields of a verification submission. City and
// State are optional; DateOfBirth is yyyy-MM-dd. Values are not validated
// locally, the backend is authoritative.
type VerifyInput struct {
	FirstName   string
	LastName    string
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	DateOfBirth string
}

// verifiedIdentityPayload is the wire shape shared by the verify mutation
// and the status-check query.
type verifiedIdentityPayload struct {
	Owner                       string  `json:"owner"`
	Verified                    bool    `json:"verified"`
	VerifiedAtEpochMs           *int64  `json:"verifiedAtEpochMs,omitempty"`
	VerificationMethod          string  `json:"verificationMethod"`
	CanAttemptVerificationAgain bool    `json:"canAttemptVerificationAgain"`
	IDScanURL                   *string `json:"idScanUrl,omitempty"`
}

func (p *verifiedIdentityPayload) toDomain() *VerifiedIdentity {
	vi := &VerifiedIdentity{
		Owner:           p.Owner,
		Verified:        p.Verified,
		Method:          p.VerificationMethod,
		CanAttemptAgain: p.CanAttemptVerificationAgain,
	}
	if p.VerifiedAtEpochMs != nil {
		at := time.UnixMilli(*p.VerifiedAtEpochMs).UTC()
		vi.VerifiedAt = &at
	}
	if p.IDScanURL != nil {
		vi.IDScanURL = *p.IDScanURL
	}
	return vi
}
