package seeder_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/seeder"
)

type stubSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s stubSeeder) Name() string { return s.name }

func (s stubSeeder) Seed(ctx context.Context) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestOrchestratorStopsAtFirstFailure(t *testing.T) {
	var ran []string
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")

	o := seeder.NewOrchestrator(log, []seeder.Seeder{
		stubSeeder{name: "a", ran: &ran},
		stubSeeder{name: "b", err: errors.New("boom"), ran: &ran},
		stubSeeder{name: "c", ran: &ran},
	})

	err := o.RunAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeder b failed")
	assert.Equal(t, []string{"a", "b"}, ran)
}
