package ownership

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrNoChecker = errors.New("no ownership checker registered")

// DefaultRegistry is filled once at startup and read on every ownership
// decision afterwards.
type DefaultRegistry struct {
	mu       sync.RWMutex
	checkers map[Resource]Checker
}

func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{checkers: make(map[Resource]Checker)}
}

// Register replaces any checker already registered for resource.
func (r *DefaultRegistry) Register(resource Resource, checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[resource] = checker
}

func (r *DefaultRegistry) Owns(ctx context.Context, resource Resource, userID uuid.UUID, id int64) (bool, error) {
	r.mu.RLock()
	checker, ok := r.checkers[resource]
	r.mu.RUnlock()
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNoChecker, resource)
	}
	return checker.Owns(ctx, userID, id)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context, userID uuid.UUID, id int64) (bool, error)

func (f CheckerFunc) Owns(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	return f(ctx, userID, id)
}

var _ Registry = (*DefaultRegistry)(nil)
