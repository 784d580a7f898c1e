package cache

import (
	"sync"
	"time"
)

// Cache holds the live gate sessions in memory. Nothing survives a restart.
type Cache struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[string]time.Time),
	}
}

func (c *Cache) SetSession(id string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[id] = time.Now().Add(ttl)
}

func (c *Cache) SessionValid(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	expires, exists := c.sessions[id]
	return exists && time.Now().Before(expires)
}

func (c *Cache) DeleteSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
}

// Cleanup drops expired sessions. Meant to run periodically.
func (c *Cache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for id, expires := range c.sessions {
		if now.After(expires) {
			delete(c.sessions, id)
		}
	}
}
