package wordlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/wordsieve/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleList = `# five letter words
apple
  zoola
bytea

zycxu
jklqa
`

func TestRead(t *testing.T) {
	words, err := Read(strings.NewReader(sampleList))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "zoola", "bytea", "zycxu", "jklqa"}, words)
}

func TestRead_Options(t *testing.T) {
	input := "Crane\nslate\ncrane\nto\nCRANE\ntrace\n"

	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"verbatim", nil, []string{"Crane", "slate", "crane", "to", "CRANE", "trace"}},
		{"fold case", []Option{WithFoldCase(true)}, []string{"crane", "slate", "crane", "to", "crane", "trace"}},
		{"length", []Option{WithLength(5)}, []string{"Crane", "slate", "crane", "CRANE", "trace"}},
		{"dedupe", []Option{WithDedupe(true)}, []string{"Crane", "slate", "crane", "to", "CRANE", "trace"}},
		{
			"fold length dedupe",
			[]Option{WithFoldCase(true), WithLength(5), WithDedupe(true)},
			[]string{"crane", "slate", "trace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Read(strings.NewReader(input), tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, words)
		})
	}
}

func TestRead_FoldCaseIsASCIIOnly(t *testing.T) {
	// U+212A KELVIN SIGN lowers to "k" under Unicode rules.
	input := "\u212Aarma\nÉCLAT\nKARMA\n"

	words, err := Read(strings.NewReader(input), WithFoldCase(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"\u212Aarma", "Éclat", "karma"}, words)

	words, err = Read(strings.NewReader(input), WithFoldCase(true), WithLength(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"karma"}, words)
}

func TestRead_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only comments\n#\n", "to\nbe\n"} {
		_, err := Read(strings.NewReader(input), WithLength(5))
		assert.ErrorIs(t, err, ErrEmpty, "input %q", input)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRead_ScannerError(t *testing.T) {
	_, err := Read(failingReader{})
	assert.EqualError(t, err, "disk on fire")
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o644))

	words, err := LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Len(t, words, 5)

	_, err = LoadFile(ctx, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrNotFound)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = LoadFile(canceled, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "words/en.txt", []byte(sampleList)))

	words, err := Load(ctx, store, "words/en.txt")
	require.NoError(t, err)
	assert.Equal(t, "apple", words[0])

	_, err = Load(ctx, store, "words/de.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "a.txt", []byte("crane\nslate\n")))
	require.NoError(t, store.Put(ctx, "b.txt", []byte("# nothing here\n")))
	require.NoError(t, store.Put(ctx, "c.txt", []byte("trace\ncrane\n")))

	words, err := LoadAll(ctx, store, []string{"c.txt", "b.txt", "a.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "crane", "crane", "slate"}, words)

	words, err = LoadAll(ctx, store, []string{"a.txt", "c.txt"}, WithDedupe(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace"}, words)
}

func TestLoadAll_Errors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "a.txt", []byte("crane\n")))
	require.NoError(t, store.Put(ctx, "empty.txt", nil))

	_, err := LoadAll(ctx, store, []string{"a.txt", "missing.txt"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LoadAll(ctx, store, []string{"empty.txt"})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = LoadAll(ctx, store, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}
