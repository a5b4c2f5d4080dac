package auth_test

import (
	"context"
	"testing"

	"github.com/JulianoL13/identity-verify-sdk/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()

	t.Run("produces a bearer header", func(t *testing.T) {
		header, err := auth.NewStatic("tok").AuthHeader(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Bearer tok", header)
	})

	t.Run("empty token means not signed in", func(t *testing.T) {
		_, err := auth.NewStatic("").AuthHeader(ctx)

		assert.ErrorIs(t, err, auth.ErrNotSignedIn)
	})
}
