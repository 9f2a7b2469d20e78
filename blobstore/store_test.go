package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]BlobStore {
	return map[string]BlobStore{
		"local":  NewLocalStore(t.TempDir()),
		"memory": NewMemoryStore(),
	}
}

func TestBlobStore_Lifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			data := []byte("crane\nslate\ntrace\n")

			w, err := store.Create(ctx, "lists/en.txt")
			require.NoError(t, err)
			n, err := w.Write(data)
			require.NoError(t, err)
			require.Equal(t, len(data), n)
			require.NoError(t, w.Sync())
			require.NoError(t, w.Close())

			_, err = w.Write([]byte("late"))
			assert.ErrorIs(t, err, ErrClosed)

			blob, err := store.Open(ctx, "lists/en.txt")
			require.NoError(t, err)
			defer blob.Close()

			require.Equal(t, int64(len(data)), blob.Size())

			buf := make([]byte, 5)
			n, err = blob.ReadAt(ctx, buf, 6)
			require.NoError(t, err)
			assert.Equal(t, 5, n)
			assert.Equal(t, "slate", string(buf))

			rc, err := blob.ReadRange(ctx, 12, 5)
			require.NoError(t, err)
			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			assert.Equal(t, "trace", string(got))

			all, err := ReadAll(ctx, blob)
			require.NoError(t, err)
			assert.Equal(t, data, all)

			require.NoError(t, store.Put(ctx, "lists/de.txt", []byte("abend\n")))
			require.NoError(t, store.Put(ctx, "cache/words.idx", []byte{1, 2, 3}))

			names, err := store.List(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"cache/words.idx", "lists/de.txt", "lists/en.txt"}, names)

			names, err = store.List(ctx, "lists/")
			require.NoError(t, err)
			assert.Equal(t, []string{"lists/de.txt", "lists/en.txt"}, names)

			require.NoError(t, store.Delete(ctx, "lists/en.txt"))
			require.NoError(t, store.Delete(ctx, "lists/en.txt"))

			_, err = store.Open(ctx, "lists/en.txt")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBlobStore_ReadBoundaries(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "digits", []byte("0123456789")))

			blob, err := store.Open(ctx, "digits")
			require.NoError(t, err)
			defer blob.Close()

			rc, err := blob.ReadRange(ctx, 8, 5)
			require.NoError(t, err)
			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "89", string(got))

			_, err = blob.ReadRange(ctx, 20, 5)
			assert.ErrorIs(t, err, io.EOF)

			_, err = blob.ReadRange(ctx, -1, 5)
			assert.ErrorIs(t, err, ErrOutOfRange)

			buf := make([]byte, 4)
			n, err := blob.ReadAt(ctx, buf, 8)
			assert.Equal(t, 2, n)
			assert.ErrorIs(t, err, io.EOF)

			_, err = blob.ReadAt(ctx, buf, -3)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestBlobStore_EmptyBlob(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "empty", nil))

			data, err := ReadFile(ctx, store, "empty")
			require.NoError(t, err)
			assert.Empty(t, data)
		})
	}
}

func TestBlobStore_CanceledContext(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := store.Open(ctx, "any")
			assert.ErrorIs(t, err, context.Canceled)
			assert.ErrorIs(t, store.Put(ctx, "any", []byte("x")), context.Canceled)
		})
	}
}

func TestMemoryStore_PutCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("crane")
	require.NoError(t, store.Put(ctx, "w", data))
	data[0] = 'x'

	got, err := ReadFile(ctx, store, "w")
	require.NoError(t, err)
	assert.Equal(t, "crane", string(got))
}

func TestLocalStore_AtomicCreate(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := NewLocalStore(root)

	w, err := store.Create(ctx, "words.idx")
	require.NoError(t, err)
	_, err = w.Write([]byte("partial"))
	require.NoError(t, err)

	// Not visible before Close.
	_, err = os.Stat(filepath.Join(root, "words.idx"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, w.Close())

	got, err := os.ReadFile(filepath.Join(root, "words.idx"))
	require.NoError(t, err)
	assert.Equal(t, "partial", string(got))
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "absent"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_ReadAllCopies(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "w", []byte("slate")))

	blob, err := store.Open(ctx, "w")
	require.NoError(t, err)
	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	require.NoError(t, blob.Close())

	// Still valid after the mapping is gone.
	assert.Equal(t, "slate", string(data))
}
