package eventbus

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewBus,
	wire.Bind(new(Publisher), new(*Bus)),
)
