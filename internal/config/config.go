// Package config loads the wordsieve CLI configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/wordsieve/codec"
	"github.com/hupe1980/wordsieve/persistence"
	"github.com/hupe1980/wordsieve/query"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "wordsieve.yaml"

// Store kinds.
const (
	StoreLocal = "local"
	StoreS3    = "s3"
	StoreMinIO = "minio"
)

// Config holds all wordsieve CLI configuration.
type Config struct {
	// Word lists, as blob names inside the store.
	Words      []string `yaml:"words"`
	WordLength int      `yaml:"word_length"`
	FoldCase   bool     `yaml:"fold_case"`
	Dedupe     bool     `yaml:"dedupe"`

	// Query argument policy: lenient or strict.
	Policy string `yaml:"policy"`

	Store   StoreConfig   `yaml:"store"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// StoreConfig selects the blob store holding word lists and the cache.
type StoreConfig struct {
	Kind string `yaml:"kind"` // local, s3, minio

	// local
	Root string `yaml:"root"`

	// s3 and minio
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`

	// minio only; s3 uses the default AWS credential chain.
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`

	// Request throttling, 0 means unlimited.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	MaxInFlight       int64   `yaml:"max_in_flight"`
}

// CacheConfig configures the persisted index cache.
type CacheConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Name        string `yaml:"name"`
	Compression string `yaml:"compression"` // none, lz4, zstd
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// OutputConfig configures result output.
type OutputConfig struct {
	JSON  bool   `yaml:"json"`
	Codec string `yaml:"codec"` // go-json, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Words:      []string{"words.txt"},
		WordLength: 5,
		Policy:     query.Lenient.String(),

		Store: StoreConfig{
			Kind:   StoreLocal,
			Root:   ".",
			Region: "us-east-1",
			Secure: true,
		},

		Cache: CacheConfig{
			Enabled:     true,
			Name:        "wordsieve.idx",
			Compression: persistence.CompressionZSTD.String(),
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},

		Output: OutputConfig{
			Codec: codec.Default.Name(),
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies WORDSIEVE_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDSIEVE_WORDS"); v != "" {
		c.Words = splitList(v)
	}
	if v := os.Getenv("WORDSIEVE_WORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.WordLength = n
		}
	}
	if v := os.Getenv("WORDSIEVE_POLICY"); v != "" {
		c.Policy = v
	}

	// Store
	if v := os.Getenv("WORDSIEVE_STORE"); v != "" {
		c.Store.Kind = v
	}
	if v := os.Getenv("WORDSIEVE_ROOT"); v != "" {
		c.Store.Root = v
	}
	if v := os.Getenv("WORDSIEVE_BUCKET"); v != "" {
		c.Store.Bucket = v
	}
	if v := os.Getenv("WORDSIEVE_PREFIX"); v != "" {
		c.Store.Prefix = v
	}
	if v := os.Getenv("WORDSIEVE_REGION"); v != "" {
		c.Store.Region = v
	}
	if v := os.Getenv("WORDSIEVE_ENDPOINT"); v != "" {
		c.Store.Endpoint = v
	}
	if v := os.Getenv("WORDSIEVE_ACCESS_KEY"); v != "" {
		c.Store.AccessKey = v
	}
	if v := os.Getenv("WORDSIEVE_SECRET_KEY"); v != "" {
		c.Store.SecretKey = v
	}
	if v := os.Getenv("WORDSIEVE_REQUESTS_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Store.RequestsPerSecond = f
		}
	}

	// Cache
	if v := os.Getenv("WORDSIEVE_CACHE"); v != "" {
		c.Cache.Name = v
	}
	if v := os.Getenv("WORDSIEVE_COMPRESSION"); v != "" {
		c.Cache.Compression = v
	}

	if v := os.Getenv("WORDSIEVE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration for unknown enum values.
func (c *Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("word_length must be positive, got %d", c.WordLength)
	}
	if _, err := c.QueryPolicy(); err != nil {
		return err
	}
	if _, err := c.Compression(); err != nil {
		return err
	}
	if _, ok := codec.ByName(c.Output.Codec); !ok {
		return fmt.Errorf("unknown output codec %q", c.Output.Codec)
	}

	switch c.Store.Kind {
	case StoreLocal:
	case StoreS3, StoreMinIO:
		if c.Store.Bucket == "" {
			return fmt.Errorf("store %s requires a bucket", c.Store.Kind)
		}
		if c.Store.Kind == StoreMinIO && c.Store.Endpoint == "" {
			return fmt.Errorf("store minio requires an endpoint")
		}
	default:
		return fmt.Errorf("unknown store kind %q", c.Store.Kind)
	}

	if c.Store.RequestsPerSecond < 0 || c.Store.Burst < 0 || c.Store.MaxInFlight < 0 {
		return fmt.Errorf("store limits must not be negative")
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// QueryPolicy returns the configured argument policy.
func (c *Config) QueryPolicy() (query.Policy, error) {
	switch strings.ToLower(c.Policy) {
	case "", "lenient":
		return query.Lenient, nil
	case "strict":
		return query.Strict, nil
	default:
		return query.Lenient, fmt.Errorf("unknown policy %q", c.Policy)
	}
}

// Compression returns the configured cache compression.
func (c *Config) Compression() (persistence.Compression, error) {
	return persistence.ParseCompression(c.Cache.Compression)
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return level, nil
}
