package keyring

import (
	"fmt"
	"time"
)

// DefaultWindow is the default staleness window for cached reads. The Sheets
// API is slow by execution speed but a minute is fast by human standards, which
// matches the intended interactive use.
const DefaultWindow = 60 * time.Second

type entry struct {
	password string
	found    bool
}

// cache memoizes remote reads for a short window. A single clock records the
// most recent remote access to any key - once the window elapses every entry
// is treated as absent, and any write discards the lot. The backing store has
// no change notification, so a coarse shared clock is safer than per-key
// freshness at the cost of extra reads after an unrelated write.
type cache struct {
	window   time.Duration
	now      func() time.Time
	accessed time.Time
	entries  map[string]entry
}

func newCache(window time.Duration) *cache {
	if window <= 0 {
		window = DefaultWindow
	}

	return &cache{
		window:  window,
		now:     time.Now,
		entries: map[string]entry{},
	}
}

func cacheKey(service, username string) string {
	return fmt.Sprintf("%s\x00%s", service, username)
}

// lookup returns the cached entry for a key, if any. Entries older than the
// staleness window are treated as absent.
func (c *cache) lookup(service, username string) (entry, bool) {
	if c.now().Sub(c.accessed) >= c.window {
		c.entries = map[string]entry{}
		return entry{}, false
	}

	e, ok := c.entries[cacheKey(service, username)]

	return e, ok
}

// store records the result of a remote read (found or not) and resets the
// shared access clock.
func (c *cache) store(service, username string, e entry) {
	c.entries[cacheKey(service, username)] = e
	c.accessed = c.now()
}

// invalidate discards all entries, regardless of key.
func (c *cache) invalidate() {
	c.entries = map[string]entry{}
	c.accessed = c.now()
}
