package backend_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JulianoL13/identity-verify-sdk/internal/backend"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func post(t *testing.T, server *httptest.Server, token string, body map[string]any) envelope {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/graphql", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHandler_GraphQL(t *testing.T) {
	handler := backend.NewHandler(mocks.LoggerMock{})
	server := httptest.NewServer(backend.NewRouter(handler, mocks.LoggerMock{}))
	defer server.Close()

	t.Run("serves the country list", func(t *testing.T) {
		env := post(t, server, "u1", map[string]any{
			"operationName": "GetSupportedCountries",
			"query":         "query GetSupportedCountries { getSupportedCountries { countryList } }",
		})

		require.Empty(t, env.Errors)
		var payload struct {
			CountryList []string `json:"countryList"`
		}
		require.NoError(t, json.Unmarshal(env.Data["getSupportedCountries"], &payload))
		assert.Contains(t, payload.CountryList, "USA")
	})

	t.Run("check before verify returns a null record", func(t *testing.T) {
		env := post(t, server, "fresh-user", map[string]any{
			"operationName": "CheckIdentityVerification",
			"query":         "query CheckIdentityVerification { checkIdentityVerification { owner } }",
		})

		require.Empty(t, env.Errors)
		assert.Equal(t, "null", string(env.Data["checkIdentityVerification"]))
	})

	t.Run("verify stores a record per caller", func(t *testing.T) {
		env := post(t, server, "u1", map[string]any{
			"operationName": "VerifyIdentity",
			"query":         "mutation VerifyIdentity { verifyIdentity { owner } }",
			"variables": map[string]any{
				"input": map[string]any{"country": "USA"},
			},
		})
		require.Empty(t, env.Errors)

		check := post(t, server, "u1", map[string]any{
			"operationName": "CheckIdentityVerification",
			"query":         "query CheckIdentityVerification { checkIdentityVerification { owner } }",
		})
		require.Empty(t, check.Errors)
		assert.NotEqual(t, "null", string(check.Data["checkIdentityVerification"]))

		other := post(t, server, "u2", map[string]any{
			"operationName": "CheckIdentityVerification",
			"query":         "query CheckIdentityVerification { checkIdentityVerification { owner } }",
		})
		assert.Equal(t, "null", string(other.Data["checkIdentityVerification"]))
	})

	t.Run("rejects unsupported countries", func(t *testing.T) {
		env := post(t, server, "u3", map[string]any{
			"operationName": "VerifyIdentity",
			"query":         "mutation VerifyIdentity { verifyIdentity { owner } }",
			"variables": map[string]any{
				"input": map[string]any{"country": "ZZZ"},
			},
		})

		require.Len(t, env.Errors, 1)
		assert.Contains(t, env.Errors[0].Message, "unsupported country")
	})

	t.Run("rejects unknown operations", func(t *testing.T) {
		env := post(t, server, "u1", map[string]any{
			"operationName": "DeleteEverything",
			"query":         "mutation DeleteEverything { deleteEverything }",
		})

		require.Len(t, env.Errors, 1)
		assert.Contains(t, env.Errors[0].Message, "unknown operation")
	})
}
