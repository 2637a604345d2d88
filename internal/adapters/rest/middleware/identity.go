package middleware

import (
	"context"
	"net/http"

	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/logger"
)

// IdentityResolver turns an Authorization header into a verified identity.
// It returns nil for a missing or unusable token.
type IdentityResolver interface {
	Resolve(ctx context.Context, authorization string) *authz.Identity
}

// Authenticator resolves the caller's identity for every request. It never
// rejects; gates decide whether an identity is needed.
type Authenticator struct {
	resolver IdentityResolver
}

func NewAuthenticator(resolver IdentityResolver) *Authenticator {
	return &Authenticator{resolver: resolver}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity := a.resolver.Resolve(ctx, r.Header.Get("Authorization"))
		ctx = WithIdentity(ctx, identity)
		if identity != nil {
			ctx = logger.WithFields(ctx, "user_id", identity.ID.String())
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
