package application

import "github.com/google/wire"

// ProviderSet provides the posts service. Ownership is registered by the
// server through RegisterPostsOwnership.
var ProviderSet = wire.NewSet(NewPostsService)
