package logger

import (
	"github.com/google/wire"
)

// ProviderSet builds the bootstrap logger (used while loading config) and
// the configured logger that replaces it.
var ProviderSet = wire.NewSet(
	NewBootstrapLogger,
	NewConfiguredLogger,
	wire.Bind(new(Logger), new(*SlogAdapter)),
)

type Config struct {
	Environment string
	LogLevel    string
}

// NewConfiguredLogger treats an unset environment as production so that a
// misconfigured deploy still emits JSON.
func NewConfiguredLogger(config Config) *SlogAdapter {
	env := config.Environment
	if env == "" {
		env = "production"
	}
	return NewSlogAdapter(env, config.LogLevel)
}
