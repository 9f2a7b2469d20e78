package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordsieve/persistence"
	"github.com/hupe1980/wordsieve/query"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordsieve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
words: [answers.txt, allowed.txt]
word_length: 6
policy: strict
store:
  kind: minio
  bucket: lists
  endpoint: localhost:9000
cache:
  compression: lz4
logging:
  level: debug
  format: json
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"answers.txt", "allowed.txt"}, cfg.Words)
	assert.Equal(t, 6, cfg.WordLength)
	assert.Equal(t, StoreMinIO, cfg.Store.Kind)
	assert.Equal(t, "lists", cfg.Store.Bucket)
	// Unset keys keep their defaults.
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "wordsieve.idx", cfg.Cache.Name)

	policy, err := cfg.QueryPolicy()
	require.NoError(t, err)
	assert.Equal(t, query.Strict, policy)

	c, err := cfg.Compression()
	require.NoError(t, err)
	assert.Equal(t, persistence.CompressionLZ4, c)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words: [unterminated"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORDSIEVE_WORDS", "a.txt, b.txt,")
	t.Setenv("WORDSIEVE_WORD_LENGTH", "7")
	t.Setenv("WORDSIEVE_STORE", "s3")
	t.Setenv("WORDSIEVE_BUCKET", "bucket")
	t.Setenv("WORDSIEVE_PREFIX", "lists/")
	t.Setenv("WORDSIEVE_CACHE", "seven.idx")
	t.Setenv("WORDSIEVE_LOG_LEVEL", "info")
	t.Setenv("WORDSIEVE_REQUESTS_PER_SECOND", "2.5")

	t.Run("without file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Words)
		assert.Equal(t, 7, cfg.WordLength)
		assert.Equal(t, StoreS3, cfg.Store.Kind)
		assert.Equal(t, "bucket", cfg.Store.Bucket)
		assert.Equal(t, "lists/", cfg.Store.Prefix)
		assert.Equal(t, "seven.idx", cfg.Cache.Name)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.InDelta(t, 2.5, cfg.Store.RequestsPerSecond, 1e-9)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("env wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wordsieve.yaml")
		require.NoError(t, os.WriteFile(path, []byte("word_length: 5\nstore:\n  kind: local\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.WordLength)
		assert.Equal(t, StoreS3, cfg.Store.Kind)
	})

	t.Run("malformed number is ignored", func(t *testing.T) {
		t.Setenv("WORDSIEVE_WORD_LENGTH", "five")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 5, cfg.WordLength)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"word length", func(c *Config) { c.WordLength = 0 }, "word_length"},
		{"policy", func(c *Config) { c.Policy = "picky" }, "unknown policy"},
		{"compression", func(c *Config) { c.Cache.Compression = "brotli" }, "unknown compression"},
		{"codec", func(c *Config) { c.Output.Codec = "xml" }, "unknown output codec"},
		{"store kind", func(c *Config) { c.Store.Kind = "ftp" }, "unknown store kind"},
		{"s3 bucket", func(c *Config) { c.Store.Kind = StoreS3 }, "requires a bucket"},
		{"minio endpoint", func(c *Config) {
			c.Store.Kind = StoreMinIO
			c.Store.Bucket = "b"
		}, "requires an endpoint"},
		{"negative limit", func(c *Config) { c.Store.MaxInFlight = -1 }, "must not be negative"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "unknown log format"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestCompression_EmptyMeansDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Compression = ""

	c, err := cfg.Compression()
	require.NoError(t, err)
	assert.Equal(t, persistence.CompressionZSTD, c)
	assert.NoError(t, cfg.Validate())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordsieve.yaml")

	cfg := DefaultConfig()
	cfg.Words = []string{"custom.txt"}
	cfg.FoldCase = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
