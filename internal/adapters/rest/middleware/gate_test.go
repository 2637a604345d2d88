package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/logger"
)

type staticResolver struct {
	identities map[string]*authz.Identity
}

func (s staticResolver) Resolve(ctx context.Context, header string) *authz.Identity {
	return s.identities[header]
}

type countingPrincipals struct {
	roles map[uuid.UUID]authz.Role
	err   error
	calls int
}

func (c *countingPrincipals) Resolve(ctx context.Context, identity *authz.Identity) (*authz.Principal, error) {
	c.calls++
	if identity == nil {
		return nil, nil
	}
	if c.err != nil {
		return nil, c.err
	}
	return &authz.Principal{Identity: *identity, Role: c.roles[identity.ID]}, nil
}

func newTestLogger() logger.Logger {
	return logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
}

func identityFor(id uuid.UUID) *authz.Identity {
	return &authz.Identity{ID: id, Email: "u@example.com", IssuedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
}

func TestGateRequire(t *testing.T) {
	admin := uuid.New()
	reader := uuid.New()
	principals := &countingPrincipals{roles: map[uuid.UUID]authz.Role{admin: authz.RoleAdmin, reader: authz.RoleUser}}
	authn := NewAuthenticator(staticResolver{identities: map[string]*authz.Identity{
		"Bearer admin":  identityFor(admin),
		"Bearer reader": identityFor(reader),
	}})
	gate := NewGate(principals, newTestLogger())

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := authn.Middleware(gate.Require(authz.Admin())(ok))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "anonymous is unauthorized", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "unknown token is unauthorized", header: "Bearer nope", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "plain user is forbidden", header: "Bearer reader", wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "admin passes", header: "Bearer admin", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/posts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), `"error":"`+tt.wantCode+`"`)
			}
		})
	}
}

func TestGateResolvesPrincipalOncePerRequest(t *testing.T) {
	id := uuid.New()
	principals := &countingPrincipals{roles: map[uuid.UUID]authz.Role{id: authz.RoleSuperadmin}}
	authn := NewAuthenticator(staticResolver{identities: map[string]*authz.Identity{"Bearer t": identityFor(id)}})
	gate := NewGate(principals, newTestLogger())

	var seen *authz.Principal
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = PrincipalFrom(r.Context())
	})
	handler := authn.Middleware(gate.Optional(gate.Require(authz.Authenticated())(gate.Require(authz.Superadmin())(final))))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer t")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, id, seen.ID)
	assert.Equal(t, 1, principals.calls)
}

func TestGateOptional(t *testing.T) {
	id := uuid.New()
	authn := NewAuthenticator(staticResolver{identities: map[string]*authz.Identity{"Bearer t": identityFor(id)}})

	capture := func(out **authz.Principal, reached *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*reached = true
			*out = PrincipalFrom(r.Context())
		})
	}

	t.Run("anonymous callers pass through", func(t *testing.T) {
		var p *authz.Principal
		var reached bool
		gate := NewGate(&countingPrincipals{}, newTestLogger())
		w := httptest.NewRecorder()

		authn.Middleware(gate.Optional(capture(&p, &reached))).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))

		assert.True(t, reached)
		assert.Nil(t, p)
	})

	t.Run("revoked sessions are treated as anonymous", func(t *testing.T) {
		var p *authz.Principal
		var reached bool
		gate := NewGate(&countingPrincipals{err: authzapp.ErrSessionRevoked}, newTestLogger())
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()

		authn.Middleware(gate.Optional(capture(&p, &reached))).ServeHTTP(w, req)

		assert.True(t, reached)
		assert.Nil(t, p)
	})

	t.Run("lookup failures are not swallowed", func(t *testing.T) {
		var p *authz.Principal
		var reached bool
		gate := NewGate(&countingPrincipals{err: authzapp.ErrAccessLookupFailed}, newTestLogger())
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()

		authn.Middleware(gate.Optional(capture(&p, &reached))).ServeHTTP(w, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGateRequireRejectsRevokedSession(t *testing.T) {
	id := uuid.New()
	authn := NewAuthenticator(staticResolver{identities: map[string]*authz.Identity{"Bearer t": identityFor(id)}})
	gate := NewGate(&countingPrincipals{err: authzapp.ErrSessionRevoked}, newTestLogger())
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()

	authn.Middleware(gate.Require(authz.Authenticated())(http.NotFoundHandler())).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_REVOKED")
}
