package middleware

import (
	"context"

	authz "github.com/philly/inkwell/internal/authz/domain"
)

type contextKey string

const authStateKey contextKey = "auth"

// authState is shared by every middleware and handler of one request. The
// principal is resolved at most once and reused afterwards.
type authState struct {
	identity  *authz.Identity
	principal *authz.Principal
	resolved  bool
}

func stateFrom(ctx context.Context) *authState {
	s, _ := ctx.Value(authStateKey).(*authState)
	return s
}

// WithIdentity attaches a verified identity to ctx. A nil identity marks the
// request as anonymous.
func WithIdentity(ctx context.Context, identity *authz.Identity) context.Context {
	return context.WithValue(ctx, authStateKey, &authState{identity: identity})
}

// IdentityFrom returns the identity resolved from the bearer token, if any.
func IdentityFrom(ctx context.Context) *authz.Identity {
	if s := stateFrom(ctx); s != nil {
		return s.identity
	}
	return nil
}

// PrincipalFrom returns the principal a gate resolved for this request. It is
// nil for anonymous callers and before any gate ran.
func PrincipalFrom(ctx context.Context) *authz.Principal {
	if s := stateFrom(ctx); s != nil && s.resolved {
		return s.principal
	}
	return nil
}
