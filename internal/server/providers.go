package server

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/philly/inkwell/internal/adapters/auth"
	redisadapter "github.com/philly/inkwell/internal/adapters/redis"
	"github.com/philly/inkwell/internal/adapters/rest"
	"github.com/philly/inkwell/internal/adapters/rest/middleware"
	"github.com/philly/inkwell/internal/adapters/supabase"
	catapp "github.com/philly/inkwell/internal/categories/application"
	catports "github.com/philly/inkwell/internal/categories/ports"
	catseeder "github.com/philly/inkwell/internal/categories/seeder"
	notifapp "github.com/philly/inkwell/internal/notifications/application"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/ownership"
	"github.com/philly/inkwell/internal/platform/seeder"
	postapp "github.com/philly/inkwell/internal/posts/application"
	postports "github.com/philly/inkwell/internal/posts/ports"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

func provideVersion() rest.Version {
	return Version
}

func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
	}
}

// provideVerifier fetches the provider's key set. Only serve needs it, so
// the token settings are validated here rather than in LoadConfig.
func provideVerifier(ctx context.Context, config Config) (*auth.JWKSVerifier, error) {
	if err := config.ValidateServe(); err != nil {
		return nil, err
	}
	return auth.NewJWKSVerifier(ctx, config.JWKSEndpoint, config.JWTIssuer)
}

func provideIdentityCache(config Config) (*auth.IdentityCache, error) {
	return auth.NewIdentityCache(config.IdentityCacheSize)
}

func provideSupabaseConfig(config Config) supabase.Config {
	return supabase.Config{
		URL:            config.SupabaseURL,
		ServiceRoleKey: config.SupabaseServiceRoleKey,
		Bucket:         config.StorageBucket,
	}
}

// provideRedisClient returns nil when REDIS_URL is unset.
func provideRedisClient(ctx context.Context, config Config, log logger.Logger) (*goredis.Client, func(), error) {
	client, err := redisadapter.NewClient(ctx, config.RedisURL)
	if err != nil {
		log.Error(ctx, "failed to connect to redis", "error", err)
		return nil, nil, err
	}
	if client == nil {
		log.Info(ctx, "redis disabled, category cache off")
		return nil, func() {}, nil
	}
	log.Info(ctx, "redis connection established")
	return client, func() {
		if err := client.Close(); err != nil {
			log.Warn(context.Background(), "failed to close redis client", "error", err)
		}
	}, nil
}

func provideCategoryCache(client *goredis.Client, config Config, log logger.Logger) catports.CategoryCache {
	return redisadapter.NewCategoryCache(client, config.CategoryCacheTTL, log)
}

func provideRateLimitConfig(config Config) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	}
}

func provideHealthChecks(pool *pgxpool.Pool, redis *goredis.Client) []rest.HealthCheck {
	checks := []rest.HealthCheck{
		{Name: "database", Check: pool.Ping},
	}
	if redis != nil {
		checks = append(checks, rest.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redis.Ping(ctx).Err() },
		})
	}
	return checks
}

// provideOwnershipRegistry registers every resource checker before the
// registry is handed to the authorization service.
func provideOwnershipRegistry(posts postports.PostRepository, log logger.Logger) *ownership.DefaultRegistry {
	registry := ownership.NewRegistry()
	postapp.RegisterPostsOwnership(registry, posts, log)
	return registry
}

func provideSubscriptions(
	bus *eventbus.Bus,
	categories *catapp.CategoriesService,
	notifications *notifapp.NotificationsService,
) Subscriptions {
	catapp.RegisterSubscribers(bus, categories)
	notifapp.RegisterSubscribers(bus, notifications)
	return Subscriptions{}
}

func provideSeeder(categories catports.CategoryRepository, log logger.Logger) *seeder.Orchestrator {
	return seeder.NewOrchestrator(log, []seeder.Seeder{
		catseeder.NewGeneralCategorySeeder(categories, log),
	})
}
