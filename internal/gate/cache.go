package gate

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// RoleCache keeps the roles found by another source for ttl. Concurrent
// misses for one user share a single lookup. Role edits must call
// Invalidate for the edited user.
type RoleCache struct {
	source RoleSource
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[uint]cached
	gen     uint64
	flight  singleflight.Group
}

type cached struct {
	role      *Role
	expiresAt time.Time
}

func NewRoleCache(source RoleSource, ttl time.Duration) *RoleCache {
	return &RoleCache{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uint]cached),
	}
}

// RoleOf serves fresh entries from memory. Lookup errors are not kept.
func (c *RoleCache) RoleOf(ctx context.Context, userID uint) (*Role, error) {
	c.mu.RLock()
	e, ok := c.entries[userID]
	gen := c.gen
	c.mu.RUnlock()
	if ok && c.now().Before(e.expiresAt) {
		return e.role, nil
	}

	v, err, _ := c.flight.Do(strconv.FormatUint(uint64(userID), 10), func() (any, error) {
		role, err := c.source.RoleOf(ctx, userID)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// an Invalidate during the lookup wins over the looked-up role
		if c.gen == gen {
			c.entries[userID] = cached{role: role, expiresAt: c.now().Add(c.ttl)}
		}
		c.mu.Unlock()
		return role, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Role), nil
}

func (c *RoleCache) Invalidate(userID uint) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.gen++
	c.mu.Unlock()
	c.flight.Forget(strconv.FormatUint(uint64(userID), 10))
}
