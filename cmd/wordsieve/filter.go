package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/wordsieve"
	"github.com/hupe1980/wordsieve/query"
)

type filterFlags struct {
	contains []string
	exclude  []string
	at       []string
	notAt    []string
	feedback []string
	strict   bool
}

type filterResult struct {
	Constraints string   `json:"constraints"`
	Count       int      `json:"count"`
	Words       []string `json:"words"`
}

func newFilterCmd(a *app) *cobra.Command {
	f := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "filter [expr...]",
		Short: "Print the words matching every constraint",
		Long: `Applies constraints from flags and expressions and prints the surviving
words in word list order.

Examples:
  wordsieve filter "+ae -by a@0 l!1"
  wordsieve filter --contains ae --exclude by --at 0:a --not-at 1:l
  wordsieve filter --feedback slate:bbggg --feedback crane:gggbg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := f.constraints(args)
			if err != nil {
				return err
			}

			var extra []wordsieve.Option
			if f.strict {
				extra = append(extra, wordsieve.WithPolicy(query.Strict))
			}

			s, err := a.open(cmd.Context(), extra...)
			if err != nil {
				return err
			}

			words, err := s.Filter(cmd.Context(), cs...)
			if err != nil {
				return err
			}

			if a.cfg.Output.JSON {
				return a.writeJSON(filterResult{
					Constraints: query.Format(cs),
					Count:       len(words),
					Words:       words,
				})
			}
			for _, w := range words {
				fmt.Fprintln(a.out, w)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVar(&f.contains, "contains", nil, "Letters that must all occur (repeatable)")
	fl.StringArrayVar(&f.exclude, "exclude", nil, "Letters that must not occur (repeatable)")
	fl.StringArrayVar(&f.at, "at", nil, "SLOT:LETTER that must match (repeatable)")
	fl.StringArrayVar(&f.notAt, "not-at", nil, "SLOT:LETTER that must not match (repeatable)")
	fl.StringArrayVar(&f.feedback, "feedback", nil, "GUESS:PATTERN with g=green y=yellow b/x/.=grey (repeatable)")
	fl.BoolVar(&f.strict, "strict", false, "Reject out-of-range slots and non a-z letters")

	return cmd
}

func (f *filterFlags) constraints(exprs []string) ([]query.Constraint, error) {
	var cs []query.Constraint

	for _, fb := range f.feedback {
		guess, pattern, ok := strings.Cut(fb, ":")
		if !ok {
			return nil, fmt.Errorf("--feedback %q: want GUESS:PATTERN", fb)
		}
		more, err := query.Feedback(guess, pattern)
		if err != nil {
			return nil, err
		}
		cs = append(cs, more...)
	}

	for _, letters := range f.contains {
		cs = append(cs, query.Contains(letters))
	}
	for _, letters := range f.exclude {
		cs = append(cs, query.DoesntContain(letters))
	}
	for _, v := range f.at {
		slot, letter, err := parseSlotLetter("--at", v)
		if err != nil {
			return nil, err
		}
		cs = append(cs, query.AtPosition(slot, letter))
	}
	for _, v := range f.notAt {
		slot, letter, err := parseSlotLetter("--not-at", v)
		if err != nil {
			return nil, err
		}
		cs = append(cs, query.NotAtPosition(slot, letter))
	}

	for _, expr := range exprs {
		more, err := query.Parse(expr)
		if err != nil {
			return nil, err
		}
		cs = append(cs, more...)
	}

	return cs, nil
}

func parseSlotLetter(flag, v string) (int, rune, error) {
	s, l, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%s %q: want SLOT:LETTER", flag, v)
	}
	slot, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%s %q: bad slot: %w", flag, v, err)
	}
	r := []rune(l)
	if len(r) != 1 {
		return 0, 0, fmt.Errorf("%s %q: want a single letter", flag, v)
	}
	return slot, r[0], nil
}
