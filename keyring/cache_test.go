package keyring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheLookupOnEmptyCache(t *testing.T) {
	c := newCache(DefaultWindow)

	_, ok := c.lookup("service1", "user1")
	assert.False(t, ok)
}

func TestCacheStoreThenLookup(t *testing.T) {
	c := newCache(DefaultWindow)

	c.store("service1", "user1", entry{password: "secret1", found: true})

	e, ok := c.lookup("service1", "user1")
	assert.True(t, ok)
	assert.True(t, e.found)
	assert.Equal(t, "secret1", e.password)
}

func TestCacheStoresNegativeEntries(t *testing.T) {
	c := newCache(DefaultWindow)

	c.store("service1", "user1", entry{})

	e, ok := c.lookup("service1", "user1")
	assert.True(t, ok)
	assert.False(t, e.found)
}

func TestCacheExpiresAfterWindow(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	c := newCache(DefaultWindow)
	c.now = func() time.Time { return now }

	c.store("service1", "user1", entry{password: "secret1", found: true})

	now = now.Add(59 * time.Second)
	_, ok := c.lookup("service1", "user1")
	assert.True(t, ok)

	now = now.Add(1 * time.Second)
	_, ok = c.lookup("service1", "user1")
	assert.False(t, ok)
}

func TestCacheWindowIsSharedAcrossKeys(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	c := newCache(DefaultWindow)
	c.now = func() time.Time { return now }

	c.store("service1", "user1", entry{password: "secret1", found: true})

	// a remote access to another key renews the shared clock
	now = now.Add(45 * time.Second)
	c.store("service2", "user2", entry{password: "secret2", found: true})

	now = now.Add(45 * time.Second)
	_, ok := c.lookup("service1", "user1")
	assert.True(t, ok)
}

func TestCacheInvalidateDiscardsAllEntries(t *testing.T) {
	c := newCache(DefaultWindow)

	c.store("service1", "user1", entry{password: "secret1", found: true})
	c.store("service2", "user2", entry{password: "secret2", found: true})

	c.invalidate()

	_, ok := c.lookup("service1", "user1")
	assert.False(t, ok)

	_, ok = c.lookup("service2", "user2")
	assert.False(t, ok)
}

func TestCacheKeysDoNotCollide(t *testing.T) {
	c := newCache(DefaultWindow)

	c.store("service", "1user", entry{password: "secret1", found: true})

	_, ok := c.lookup("service1", "user")
	assert.False(t, ok)
}
