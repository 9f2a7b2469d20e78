package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_ZeroConfigIsPassthrough(t *testing.T) {
	mem := NewMemoryStore()
	assert.Same(t, mem, Limit(mem, LimitConfig{}))
}

func TestLimit_DelegatesCalls(t *testing.T) {
	ctx := context.Background()
	store := Limit(NewMemoryStore(), LimitConfig{RequestsPerSecond: 1000, Burst: 10, MaxInFlight: 2})

	require.NoError(t, store.Put(ctx, "a.txt", []byte("crane\n")))

	data, err := ReadFile(ctx, store, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "crane\n", string(data))

	w, err := store.Create(ctx, "b.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("slate\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)

	require.NoError(t, store.Delete(ctx, "a.txt"))
	_, err = store.Open(ctx, "a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLimit_KeepsMappable(t *testing.T) {
	ctx := context.Background()

	local := NewLocalStore(t.TempDir())
	require.NoError(t, local.Put(ctx, "words.txt", []byte("crane\nslate\n")))

	store := Limit(local, LimitConfig{MaxInFlight: 1})
	b, err := store.Open(ctx, "words.txt")
	require.NoError(t, err)
	defer b.Close()

	m, ok := b.(Mappable)
	require.True(t, ok)
	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "crane\nslate\n", string(data))

	all, err := ReadAll(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "crane\nslate\n", string(all))

	// Memory blobs are not mappable and stay that way behind the limit.
	mem := Limit(NewMemoryStore(), LimitConfig{MaxInFlight: 1})
	require.NoError(t, mem.Put(ctx, "a.txt", []byte("x")))
	mb, err := mem.Open(ctx, "a.txt")
	require.NoError(t, err)
	defer mb.Close()
	_, ok = mb.(Mappable)
	assert.False(t, ok)
}

func TestLimit_RateExceedsDeadline(t *testing.T) {
	store := Limit(NewMemoryStore(), LimitConfig{RequestsPerSecond: 0.01, Burst: 1})

	require.NoError(t, store.Put(context.Background(), "a.txt", []byte("x")))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// The next token is 100s away, far past the deadline.
	err := store.Put(ctx, "b.txt", []byte("y"))
	assert.Error(t, err)
}

func TestLimit_InFlightRespectsContext(t *testing.T) {
	ls := Limit(NewMemoryStore(), LimitConfig{MaxInFlight: 1}).(*LimitedStore)

	release, err := ls.acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ls.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
