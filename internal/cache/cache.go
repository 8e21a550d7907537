// Package cache keeps the per-user last-location mapping in memory, backed by
// the durable weather table. The map is a read-through copy: every write goes
// to the store first and is followed by a wholesale reload, so after Set
// returns the cache cannot have drifted from the table. Do not replace the
// reload with an incremental patch; it is the consistency mechanism.
package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/irclabs/weathercmd/internal/store"
)

// Cache is the process-wide nick → location mapping.
type Cache struct {
	mu        sync.RWMutex
	store     store.LocationStore
	locations map[string]string
}

// New creates an empty Cache over the given store. Call Load before first use.
func New(s store.LocationStore) *Cache {
	return &Cache{
		store:     s,
		locations: make(map[string]string),
	}
}

// Load reads every row from the store and replaces the in-memory mapping.
func (c *Cache) Load(ctx context.Context) error {
	rows, err := c.store.SelectAll(ctx)
	if err != nil {
		return err
	}

	fresh := make(map[string]string, len(rows))
	for _, row := range rows {
		fresh[row.Nick] = row.Loc
	}

	c.mu.Lock()
	c.locations = fresh
	c.mu.Unlock()
	return nil
}

// Get returns the saved location for nick, case-insensitively. The second
// return value is false when the user was never written.
func (c *Cache) Get(nick string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	loc, ok := c.locations[strings.ToLower(nick)]
	return loc, ok
}

// Set lower-cases both keys, writes through to the store (update when the
// nick is already known, insert otherwise) and resynchronizes the whole map.
// Concurrent Sets for the same nick race with last-write-wins.
func (c *Cache) Set(ctx context.Context, nick, location string) error {
	nick, location = strings.ToLower(nick), strings.ToLower(location)

	_, known := c.Get(nick)

	var err error
	if known {
		err = c.store.Update(ctx, nick, location)
	} else {
		err = c.store.Insert(ctx, nick, location)
	}
	if err != nil {
		return err
	}

	return c.Load(ctx)
}
