package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/wordsieve"
	"github.com/hupe1980/wordsieve/wordlist"
)

func newBuildCacheCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build-cache",
		Short: "Rebuild the index from the word lists and write the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !a.cfg.Cache.Enabled {
				return errors.New("cache is disabled")
			}

			store, err := a.openStore(ctx)
			if err != nil {
				return fmt.Errorf("open %s store: %w", a.cfg.Store.Kind, err)
			}

			words, err := wordlist.LoadAll(ctx, store, a.cfg.Words,
				wordlist.WithFoldCase(a.cfg.FoldCase),
				wordlist.WithLength(a.cfg.WordLength),
				wordlist.WithDedupe(a.cfg.Dedupe),
			)
			if err != nil {
				return fmt.Errorf("%w: %w", wordsieve.ErrNoWords, err)
			}

			s, err := wordsieve.New(words, a.options(store)...)
			if err != nil {
				return err
			}

			n, err := s.SaveCache(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "wrote %s: %d words, %d bytes\n", a.cfg.Cache.Name, s.Len(), n)
			return nil
		},
	}
}
