package ownership

import "github.com/google/wire"

// ProviderSet provides an empty registry. The server builds its own
// *DefaultRegistry so that checkers are registered before first use.
var ProviderSet = wire.NewSet(
	NewRegistry,
	wire.Bind(new(Registry), new(*DefaultRegistry)),
)
