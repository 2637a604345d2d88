package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	authz "github.com/philly/inkwell/internal/authz/domain"
)

const DefaultIdentityCacheSize = 10000

type cachedIdentity struct {
	identity authz.Identity
	expires  time.Time
}

// IdentityCache keeps verified identities until their token expires.
type IdentityCache struct {
	entries *lru.Cache[string, cachedIdentity]
}

func NewIdentityCache(size int) (*IdentityCache, error) {
	if size <= 0 {
		size = DefaultIdentityCacheSize
	}
	entries, err := lru.New[string, cachedIdentity](size)
	if err != nil {
		return nil, fmt.Errorf("create identity cache: %w", err)
	}
	return &IdentityCache{entries: entries}, nil
}

// Get returns a copy of the cached identity; expired entries are dropped.
func (c *IdentityCache) Get(key string, now time.Time) (*authz.Identity, bool) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if !now.Before(entry.expires) {
		c.entries.Remove(key)
		return nil, false
	}
	identity := entry.identity
	return &identity, true
}

func (c *IdentityCache) Put(key string, identity *authz.Identity) {
	c.entries.Add(key, cachedIdentity{identity: *identity, expires: identity.ExpiresAt})
}

// InvalidateUser drops every token cached for id and returns how many went.
func (c *IdentityCache) InvalidateUser(id uuid.UUID) int {
	removed := 0
	for _, key := range c.entries.Keys() {
		entry, ok := c.entries.Peek(key)
		if ok && entry.identity.ID == id {
			c.entries.Remove(key)
			removed++
		}
	}
	return removed
}

func (c *IdentityCache) Len() int { return c.entries.Len() }
