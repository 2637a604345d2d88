//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/inkwell/internal/adapters/auth"
	"github.com/philly/inkwell/internal/adapters/authz_adapter"
	pgadapter "github.com/philly/inkwell/internal/adapters/postgres"
	"github.com/philly/inkwell/internal/adapters/rest"
	"github.com/philly/inkwell/internal/adapters/rest/middleware"
	"github.com/philly/inkwell/internal/adapters/supabase"
	authzapp "github.com/philly/inkwell/internal/authz/application"
	catapp "github.com/philly/inkwell/internal/categories/application"
	cmtapp "github.com/philly/inkwell/internal/comments/application"
	likeapp "github.com/philly/inkwell/internal/likes/application"
	notifapp "github.com/philly/inkwell/internal/notifications/application"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/ownership"
	"github.com/philly/inkwell/internal/platform/postgres"
	postapp "github.com/philly/inkwell/internal/posts/application"
	profapp "github.com/philly/inkwell/internal/profiles/application"
)

var baseSet = wire.NewSet(
	// Bootstrap phase
	logger.ProviderSet,
	LoadConfig,
	provideLoggerConfig,

	// Database
	ConnectDatabase,
	wire.Bind(new(postgres.Querier), new(*pgxpool.Pool)),
	pgadapter.ProviderSet,

	provideSeeder,
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		baseSet,
		postgres.NewTransactionManager,
		provideRedisClient,
		provideCategoryCache,

		// Platform services
		eventbus.ProviderSet,
		provideOwnershipRegistry,
		wire.Bind(new(ownership.Registry), new(*ownership.DefaultRegistry)),

		// External services
		provideSupabaseConfig,
		supabase.ProviderSet,
		provideVerifier,
		wire.Bind(new(auth.Verifier), new(*auth.JWKSVerifier)),
		provideIdentityCache,
		auth.ProviderSet,

		// Application services
		authzapp.ProviderSet,
		authz_adapter.ProviderSet,
		postapp.ProviderSet,
		catapp.ProviderSet,
		cmtapp.ProviderSet,
		likeapp.ProviderSet,
		notifapp.ProviderSet,
		profapp.ProviderSet,
		provideSubscriptions,

		// HTTP
		middleware.ProviderSet,
		provideRateLimitConfig,
		rest.ProviderSet,
		provideVersion,
		provideHealthChecks,
		NewHTTPServer,

		NewApp,
	)

	return nil, nil, nil
}

// InitializeTasks wires the database-only commands (migrate, seed).
func InitializeTasks(ctx context.Context) (*Tasks, func(), error) {
	wire.Build(
		baseSet,
		NewTasks,
	)

	return nil, nil, nil
}
