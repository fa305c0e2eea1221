// Package auth supplies bearer tokens for outgoing requests.
package auth

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/pantry/internal/core/ports"
)

// EnvTokenSource implements ports.TokenSource by reading a token from an
// environment variable on every request. Token refresh is the environment
// owner's concern; this source only observes the current value.
type EnvTokenSource struct {
	envVar string
}

// NewEnvTokenSource creates a token source bound to envVar. An empty
// envVar yields a source that never authenticates.
func NewEnvTokenSource(envVar string) *EnvTokenSource {
	return &EnvTokenSource{envVar: envVar}
}

// Token returns the current token, or empty when none is configured.
func (s *EnvTokenSource) Token(_ context.Context) (string, error) {
	if s.envVar == "" {
		return "", nil
	}
	return strings.TrimSpace(os.Getenv(s.envVar)), nil
}

var _ ports.TokenSource = (*EnvTokenSource)(nil)
