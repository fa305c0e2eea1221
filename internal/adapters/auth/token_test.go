package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/auth"
)

func TestEnvTokenSource(t *testing.T) {
	t.Setenv("PANTRY_TEST_TOKEN", "  tok-123  ")

	src := auth.NewEnvTokenSource("PANTRY_TEST_TOKEN")
	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestEnvTokenSource_UnsetVariable(t *testing.T) {
	src := auth.NewEnvTokenSource("PANTRY_TEST_TOKEN_UNSET")
	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestEnvTokenSource_NoVariableConfigured(t *testing.T) {
	src := auth.NewEnvTokenSource("")
	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}
