package ports

import "context"

// TokenSource supplies a bearer token for outgoing requests. An empty
// token with a nil error means the request goes out unauthenticated; the
// engine never refreshes tokens itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=token.go -destination=mocks/mock_token.go -package=mocks
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
