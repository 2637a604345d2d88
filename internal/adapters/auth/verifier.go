package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	authz "github.com/philly/inkwell/internal/authz/domain"
)

var (
	ErrInvalidToken   = errors.New("invalid authentication token")
	ErrMissingSubject = errors.New("missing or malformed subject in token")
	ErrMissingEmail   = errors.New("missing email in token")
	ErrMissingExpiry  = errors.New("missing expiry in token")
)

// Verifier checks a raw bearer token and returns the identity it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (*authz.Identity, error)
}

// JWKSVerifier validates provider-issued JWTs against a key set.
type JWKSVerifier struct {
	issuer string
	keys   func(ctx context.Context) (jwk.Set, error)
}

// NewJWKSVerifier registers the endpoint with an auto-refreshing cache and
// fetches it once so a bad URL fails at startup.
func NewJWKSVerifier(ctx context.Context, jwksEndpoint, issuer string) (*JWKSVerifier, error) {
	cache, err := jwk.NewCache(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create jwks cache: %w", err)
	}
	if err := cache.Register(ctx, jwksEndpoint); err != nil {
		return nil, fmt.Errorf("register jwks url: %w", err)
	}
	if _, err := cache.Lookup(ctx, jwksEndpoint); err != nil {
		return nil, fmt.Errorf("fetch initial jwks: %w", err)
	}

	return &JWKSVerifier{
		issuer: issuer,
		keys: func(ctx context.Context) (jwk.Set, error) {
			return cache.Lookup(ctx, jwksEndpoint)
		},
	}, nil
}

// NewKeySetVerifier verifies against a fixed key set.
func NewKeySetVerifier(set jwk.Set, issuer string) *JWKSVerifier {
	return &JWKSVerifier{
		issuer: issuer,
		keys:   func(context.Context) (jwk.Set, error) { return set, nil },
	}
}

func (v *JWKSVerifier) Verify(ctx context.Context, raw string) (*authz.Identity, error) {
	keySet, err := v.keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jwks: %w", err)
	}

	token, err := jwt.ParseString(
		raw,
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var subject string
	if err := token.Get(jwt.SubjectKey, &subject); err != nil {
		return nil, ErrMissingSubject
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrMissingSubject
	}

	var email string
	if err := token.Get("email", &email); err != nil || email == "" {
		return nil, ErrMissingEmail
	}

	var exp time.Time
	if err := token.Get(jwt.ExpirationKey, &exp); err != nil || exp.IsZero() {
		return nil, ErrMissingExpiry
	}

	// iat is optional; a zero IssuedAt loses to any revocation.
	var iat time.Time
	_ = token.Get(jwt.IssuedAtKey, &iat)

	return &authz.Identity{ID: id, Email: email, IssuedAt: iat, ExpiresAt: exp}, nil
}

var _ Verifier = (*JWKSVerifier)(nil)
