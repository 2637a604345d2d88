package middleware

import (
	"github.com/google/wire"

	"github.com/philly/inkwell/internal/adapters/auth"
	authzapp "github.com/philly/inkwell/internal/authz/application"
)

// ProviderSet is the wire provider set for middleware components
var ProviderSet = wire.NewSet(
	NewAuthenticator,
	wire.Bind(new(IdentityResolver), new(*auth.IdentityResolver)),
	NewGate,
	wire.Bind(new(PrincipalResolver), new(*authzapp.AuthzService)),
	NewRateLimiter,
)
