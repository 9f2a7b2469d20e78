package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/wordsieve"
	"github.com/hupe1980/wordsieve/blobstore"
	"github.com/hupe1980/wordsieve/blobstore/minio"
	"github.com/hupe1980/wordsieve/blobstore/s3"
	"github.com/hupe1980/wordsieve/codec"
	"github.com/hupe1980/wordsieve/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries global flags and the state derived from them.
type app struct {
	configPath string
	words      []string
	cache      string
	store      string
	verbose    bool
	jsonOut    bool

	cfg    *config.Config
	logger *wordsieve.Logger
	out    io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "wordsieve",
		Short: "Narrow a word list with Wordle-style letter constraints",
		Long: `wordsieve indexes a word list once (optionally caching the index in a
local directory, S3 or MinIO) and filters it by letter constraints.

Constraint expressions:
  +ab   contains a and b anywhere
  -xy   contains neither x nor y
  a@0   has a at slot 0
  a!1   does not have a at slot 1`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "Path to the YAML config file")
	pf.StringArrayVar(&a.words, "words", nil, "Word list name inside the store (repeatable)")
	pf.StringVar(&a.cache, "cache", "", "Index cache name inside the store (\"-\" disables the cache)")
	pf.StringVar(&a.store, "store", "", "Blob store kind: local, s3 or minio")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&a.jsonOut, "json", false, "Write JSON instead of plain text")

	root.AddCommand(
		newFilterCmd(a),
		newDumpCmd(a),
		newStatsCmd(a),
		newBuildCacheCmd(a),
		newInitConfigCmd(a),
		newVersionCmd(a),
	)

	return root
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.Words = a.words
	}
	if flags.Changed("cache") {
		if a.cache == "-" {
			cfg.Cache.Enabled = false
		} else {
			cfg.Cache.Enabled = true
			cfg.Cache.Name = a.cache
		}
	}
	if flags.Changed("store") {
		cfg.Store.Kind = a.store
	}
	if flags.Changed("json") {
		cfg.Output.JSON = a.jsonOut
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.LogLevel()
	if cfg.Logging.Format == "json" {
		a.logger = wordsieve.NewJSONLogger(level)
	} else {
		a.logger = wordsieve.NewTextLogger(level)
	}

	return nil
}

func (a *app) openStore(ctx context.Context) (blobstore.BlobStore, error) {
	store, err := a.newStore(ctx)
	if err != nil {
		return nil, err
	}
	sc := a.cfg.Store
	return blobstore.Limit(store, blobstore.LimitConfig{
		RequestsPerSecond: sc.RequestsPerSecond,
		Burst:             sc.Burst,
		MaxInFlight:       sc.MaxInFlight,
	}), nil
}

func (a *app) newStore(ctx context.Context) (blobstore.BlobStore, error) {
	sc := a.cfg.Store
	switch sc.Kind {
	case config.StoreS3:
		return s3.New(ctx, sc.Bucket,
			s3.WithPrefix(sc.Prefix),
			s3.WithRegion(sc.Region),
			s3.WithEndpoint(sc.Endpoint),
		)
	case config.StoreMinIO:
		return minio.New(minio.Config{
			Endpoint:  sc.Endpoint,
			AccessKey: sc.AccessKey,
			SecretKey: sc.SecretKey,
			Region:    sc.Region,
			Bucket:    sc.Bucket,
			Prefix:    sc.Prefix,
			Secure:    sc.Secure,
		})
	default:
		return blobstore.NewLocalStore(sc.Root), nil
	}
}

// options translates the config into Sieve options over store.
func (a *app) options(store blobstore.BlobStore) []wordsieve.Option {
	policy, _ := a.cfg.QueryPolicy()
	compression, _ := a.cfg.Compression()

	opts := []wordsieve.Option{
		wordsieve.WithWordLists(store, a.cfg.Words...),
		wordsieve.WithWordLength(a.cfg.WordLength),
		wordsieve.WithFoldCase(a.cfg.FoldCase),
		wordsieve.WithDedupe(a.cfg.Dedupe),
		wordsieve.WithPolicy(policy),
		wordsieve.WithCompression(compression),
		wordsieve.WithLogger(a.logger),
	}
	if a.cfg.Cache.Enabled {
		opts = append(opts, wordsieve.WithCache(store, a.cfg.Cache.Name))
	}
	return opts
}

func (a *app) open(ctx context.Context, extra ...wordsieve.Option) (*wordsieve.Sieve, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Store.Kind, err)
	}
	return wordsieve.Open(ctx, append(a.options(store), extra...)...)
}

func (a *app) writeJSON(v any) error {
	c, ok := codec.ByName(a.cfg.Output.Codec)
	if !ok {
		c = codec.Default
	}
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s\n", data)
	return err
}
