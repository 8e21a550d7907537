package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irclabs/weathercmd/internal/store"
)

// fakeStore is an in-memory LocationStore that counts SelectAll calls so
// tests can assert the reload-after-write behavior.
type fakeStore struct {
	rows       map[string]string
	selectAlls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]string)}
}

func (f *fakeStore) SelectAll(_ context.Context) ([]store.UserLocation, error) {
	f.selectAlls++
	out := make([]store.UserLocation, 0, len(f.rows))
	for nick, loc := range f.rows {
		out = append(out, store.UserLocation{Nick: nick, Loc: loc})
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, nick, loc string) error {
	f.rows[nick] = loc
	return nil
}

func (f *fakeStore) Update(_ context.Context, nick, loc string) error {
	f.rows[nick] = loc
	return nil
}

func (f *fakeStore) Close() error { return nil }

func TestSetThenGetAnyCasing(t *testing.T) {
	fs := newFakeStore()
	c := New(fs)

	require.NoError(t, c.Set(context.Background(), "Alice", "Paris, France"))

	for _, nick := range []string{"alice", "Alice", "ALICE"} {
		loc, ok := c.Get(nick)
		require.True(t, ok, "lookup for %q", nick)
		assert.Equal(t, "paris, france", loc)
	}
}

func TestGetUnknownNickIsAbsentNotError(t *testing.T) {
	c := New(newFakeStore())

	loc, ok := c.Get("nobody")
	assert.False(t, ok)
	assert.Empty(t, loc)
}

func TestSetReloadsWholeCache(t *testing.T) {
	fs := newFakeStore()
	c := New(fs)

	// A row written behind the cache's back becomes visible after any Set,
	// because Set reloads the entire table.
	fs.rows["bob"] = "berlin"

	require.NoError(t, c.Set(context.Background(), "alice", "paris"))

	loc, ok := c.Get("bob")
	require.True(t, ok)
	assert.Equal(t, "berlin", loc)
	assert.Equal(t, 1, fs.selectAlls)
}

func TestSetUpdatesExistingNick(t *testing.T) {
	fs := newFakeStore()
	c := New(fs)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "alice", "paris"))
	require.NoError(t, c.Set(ctx, "ALICE", "london"))

	loc, ok := c.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "london", loc)

	// Still one row: the second Set must be an update, not a second insert.
	assert.Len(t, fs.rows, 1)
}
