package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SessionLifecycle(t *testing.T) {
	t.Parallel()

	c := NewCache()

	c.SetSession("abc", time.Minute)
	assert.True(t, c.SessionValid("abc"))
	assert.False(t, c.SessionValid("missing"))

	c.DeleteSession("abc")
	assert.False(t, c.SessionValid("abc"))
}

func TestCache_SessionExpiration(t *testing.T) {
	t.Parallel()

	c := NewCache()

	c.SetSession("expired", -time.Minute)
	assert.False(t, c.SessionValid("expired"))
}

func TestCache_Cleanup(t *testing.T) {
	t.Parallel()

	c := NewCache()

	c.SetSession("dead", -time.Minute)
	c.SetSession("live", time.Minute)

	c.Cleanup()

	c.mu.Lock()
	_, deadExists := c.sessions["dead"]
	_, liveExists := c.sessions["live"]
	c.mu.Unlock()

	assert.False(t, deadExists)
	assert.True(t, liveExists)
}
