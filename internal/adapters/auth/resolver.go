package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/logger"
)

// IdentityResolver turns an Authorization header into an identity. It never
// fails: anything short of a valid bearer token resolves to nil.
type IdentityResolver struct {
	verifier Verifier
	cache    *IdentityCache
	logger   logger.Logger
	now      func() time.Time
}

func NewIdentityResolver(verifier Verifier, cache *IdentityCache, logger logger.Logger) *IdentityResolver {
	return &IdentityResolver{verifier: verifier, cache: cache, logger: logger, now: time.Now}
}

func (r *IdentityResolver) Resolve(ctx context.Context, authorization string) *authz.Identity {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil
	}

	key := cacheKey(token)
	if identity, ok := r.cache.Get(key, r.now()); ok {
		return identity
	}

	identity, err := r.verifier.Verify(ctx, token)
	if err != nil {
		r.logger.Debug(ctx, "bearer token rejected", "error", err)
		return nil
	}
	if !r.now().Before(identity.ExpiresAt) {
		return nil
	}
	r.cache.Put(key, identity)
	return identity
}

// InvalidateUser forgets cached tokens of id, e.g. after a password reset.
func (r *IdentityResolver) InvalidateUser(id uuid.UUID) {
	if n := r.cache.InvalidateUser(id); n > 0 {
		r.logger.Info(context.Background(), "identity cache invalidated", "user_id", id, "entries", n)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
