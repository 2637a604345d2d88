package authz_adapter

import (
	"github.com/google/wire"

	postsPorts "github.com/philly/inkwell/internal/posts/ports"
)

var ProviderSet = wire.NewSet(
	NewAuthzAdapter,
	wire.Bind(new(postsPorts.Authorizer), new(*AuthzAdapter)),
)
