package supabase

import (
	"github.com/google/wire"

	postports "github.com/philly/inkwell/internal/posts/ports"
	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

var ProviderSet = wire.NewSet(
	NewClient,
	NewAuthAdmin,
	wire.Bind(new(profileports.AuthAdmin), new(*AuthAdmin)),
	NewStorage,
	wire.Bind(new(postports.ImageStore), new(*Storage)),
	wire.Bind(new(profileports.ImageStore), new(*Storage)),
)
