package auth

import (
	"github.com/google/wire"

	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

var ProviderSet = wire.NewSet(
	NewIdentityResolver,
	wire.Bind(new(profileports.IdentityInvalidator), new(*IdentityResolver)),
)
