package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the word list, bitmasks, presence index and position index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			if a.cfg.Output.JSON {
				return a.writeJSON(s.Tables())
			}
			return s.Dump(a.out)
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print index size information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			st := s.Index().Stats()
			if a.cfg.Output.JSON {
				return a.writeJSON(struct {
					Words   int    `json:"words"`
					Slots   int    `json:"slots"`
					Letters int    `json:"letters"`
					Bytes   uint64 `json:"bytes"`
				}{st.Words, st.Slots, st.Letters, st.Bytes})
			}
			fmt.Fprintf(a.out, "words:   %d\nslots:   %d\nletters: %d\nbytes:   %d\n",
				st.Words, st.Slots, st.Letters, st.Bytes)
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// The version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintln(a.out, "wordsieve", version)
		},
	}
}
