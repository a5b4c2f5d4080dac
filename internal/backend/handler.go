package backend

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs"
	"github.com/google/uuid"
)

// Countries the stub accepts for verification.
var defaultCountries = []string{"USA", "CAN", "GBR", "DEU", "FRA", "BRA"}

type record struct {
	Owner                       string  `json:"owner"`
	Verified                    bool    `json:"verified"`
	VerifiedAtEpochMs           *int64  `json:"verifiedAtEpochMs,omitempty"`
	VerificationMethod          string  `json:"verificationMethod"`
	CanAttemptVerificationAgain bool    `json:"canAttemptVerificationAgain"`
	IDScanURL                   *string `json:"idScanUrl,omitempty"`
}

// Handler serves the GraphQL endpoint with in-memory verification
// records, one per caller token. It exists for local development and
// round-trip tests, not production.
type Handler struct {
	mu        sync.Mutex
	records   map[string]*record
	countries []string
	logger    logs.Logger
}

func NewHandler(logger logs.Logger) *Handler {
	return &Handler{
		records:   make(map[string]*record),
		countries: defaultCountries,
		logger:    logger,
	}
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) GraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	caller := callerKey(r)

	switch req.OperationName {
	case "GetSupportedCountries":
		h.writeData(w, map[string]any{
			"getSupportedCountries": map[string]any{
				"countryList": h.countries,
			},
		})
	case "VerifyIdentity":
		h.verifyIdentity(w, caller, req.Variables)
	case "CheckIdentityVerification":
		h.checkVerification(w, caller)
	default:
		h.writeErrors(w, "unknown operation: "+req.OperationName)
	}
}

func (h *Handler) verifyIdentity(w http.ResponseWriter, caller string, variables map[string]any) {
	input, _ := variables["input"].(map[string]any)
	country, _ := input["country"].(string)

	if !slices.Contains(h.countries, country) {
		h.writeErrors(w, "unsupported country: "+country)
		return
	}

	now := time.Now().UnixMilli()
	rec := &record{
		Owner:              uuid.NewString(),
		Verified:           true,
		VerifiedAtEpochMs:  &now,
		VerificationMethod: "KBA",
	}

	h.mu.Lock()
	h.records[caller] = rec
	h.mu.Unlock()

	h.logger.Info("identity verified", "owner", rec.Owner, "country", country)
	h.writeData(w, map[string]any{"verifyIdentity": rec})
}

func (h *Handler) checkVerification(w http.ResponseWriter, caller string) {
	h.mu.Lock()
	rec := h.records[caller]
	h.mu.Unlock()

	if rec == nil {
		h.writeData(w, map[string]any{"checkIdentityVerification": nil})
		return
	}
	h.writeData(w, map[string]any{"checkIdentityVerification": rec})
}

func (h *Handler) writeData(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func (h *Handler) writeErrors(w http.ResponseWriter, messages ...string) {
	entries := make([]map[string]string, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, map[string]string{"message": m})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"errors": entries})
}

func callerKey(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "anonymous"
	}
	return token
}
