package middleware

import (
	"context"
	"errors"
	"net/http"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/logger"
)

// PrincipalResolver loads the role for an identity. A nil identity resolves
// to a nil principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, identity *authz.Identity) (*authz.Principal, error)
}

// Gate enforces a requirement before the handler runs.
type Gate struct {
	resolver PrincipalResolver
	logger   logger.Logger
}

func NewGate(resolver PrincipalResolver, logger logger.Logger) *Gate {
	return &Gate{resolver: resolver, logger: logger}
}

// Require rejects the request with 401 or 403 unless the caller satisfies req.
func (g *Gate) Require(req authz.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, principal, err := g.principal(r.Context())
			if err != nil {
				WriteAppError(w, err)
				return
			}
			if err := authzapp.Check(principal, req); err != nil {
				g.logger.Warn(ctx, "request denied",
					"path", r.URL.Path,
					"requirement", req.String(),
				)
				WriteAppError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Optional resolves the principal when a token was sent but lets anonymous
// callers through. A revoked session is treated as anonymous.
func (g *Gate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _, err := g.principal(r.Context())
		if errors.Is(err, authzapp.ErrSessionRevoked) {
			ctx = WithIdentity(ctx, nil)
			ctx, _, err = g.principal(ctx)
		}
		if err != nil {
			WriteAppError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Gate) principal(ctx context.Context) (context.Context, *authz.Principal, error) {
	state := stateFrom(ctx)
	if state == nil {
		ctx = WithIdentity(ctx, nil)
		state = stateFrom(ctx)
	}
	if state.resolved {
		return ctx, state.principal, nil
	}
	principal, err := g.resolver.Resolve(ctx, state.identity)
	if err != nil {
		if !errors.Is(err, authzapp.ErrSessionRevoked) {
			g.logger.Error(ctx, "failed to resolve principal", "error", err)
		}
		return ctx, nil, err
	}
	state.principal = principal
	state.resolved = true
	return ctx, principal, nil
}
