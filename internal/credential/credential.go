// Package credential resolves named credentials into ready-to-use
// Authorization header values. Callers name a credential; they never
// handle the underlying secret.
package credential

import (
	"context"
	"errors"
	"fmt"
)

// ErrCredentialNotFound is returned when a credential name has no usable secret bound to it.
var ErrCredentialNotFound = errors.New("credential not found")

// Provider yields the Authorization header value for a named credential.
type Provider interface {
	AuthHeader(ctx context.Context, name string) (string, error)
}

// Static is a Provider backed by a fixed name -> bearer token mapping.
type Static struct {
	tokens map[string]string
}

// NewStatic copies the given bindings into a Static provider.
func NewStatic(tokens map[string]string) *Static {
	cp := make(map[string]string, len(tokens))
	for name, token := range tokens {
		cp[name] = token
	}
	return &Static{tokens: cp}
}

// AuthHeader returns "Bearer <token>" for the named credential.
// An unbound or empty token is reported as ErrCredentialNotFound.
func (s *Static) AuthHeader(_ context.Context, name string) (string, error) {
	token := s.tokens[name]
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrCredentialNotFound, name)
	}
	return "Bearer " + token, nil
}

var _ Provider = (*Static)(nil)
