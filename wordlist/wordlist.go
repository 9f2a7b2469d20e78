package wordlist

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hupe1980/wordsieve/blobstore"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single line; word lists never come close.
const maxLineSize = 1 << 20

// Read parses a word list from r.
func Read(r io.Reader, optFns ...Option) ([]string, error) {
	o := applyOptions(optFns)

	words, err := scan(r, o)
	if err != nil {
		return nil, err
	}
	return finish(words, o)
}

// LoadFile reads the word list at path on the local file system.
func LoadFile(ctx context.Context, path string, optFns ...Option) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	words, err := Read(f, optFns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Load reads the word list stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) ([]string, error) {
	o := applyOptions(optFns)

	words, err := load(ctx, store, name, o)
	if err != nil {
		return nil, err
	}
	return finish(words, o)
}

// LoadAll reads every named list concurrently and concatenates the words in
// the order of names. The first failure cancels the remaining reads.
func LoadAll(ctx context.Context, store blobstore.BlobStore, names []string, optFns ...Option) ([]string, error) {
	o := applyOptions(optFns)

	parts := make([][]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			words, err := load(gctx, store, name, o)
			if err != nil {
				return err
			}
			parts[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, p := range parts {
		total += len(p)
	}
	words := make([]string, 0, total)
	for _, p := range parts {
		words = append(words, p...)
	}

	return finish(words, o)
}

func load(ctx context.Context, store blobstore.BlobStore, name string, o options) ([]string, error) {
	data, err := blobstore.ReadFile(ctx, store, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	words, err := scan(bytes.NewReader(data), o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return words, nil
}

func scan(r io.Reader, o options) ([]string, error) {
	var words []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if o.foldCase {
			line = strings.Map(lowerASCII, line)
		}
		if o.length > 0 && len(line) != o.length {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func finish(words []string, o options) ([]string, error) {
	if o.dedupe {
		seen := make(map[string]struct{}, len(words))
		out := words[:0]
		for _, w := range words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
		words = out
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
