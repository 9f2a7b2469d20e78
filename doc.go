// Package wordsieve narrows a word list to the words consistent with a set
// of letter constraints, as used when solving Wordle-style puzzles.
//
// Wordsieve indexes the list once into per-letter and per-position posting
// lists (roaring bitmaps) and then answers chained constraint queries by
// intersecting and subtracting those lists.
//
// # Quick Start
//
// In memory:
//
//	s, _ := wordsieve.New([]string{"apple", "zoola", "bytea", "zycxu", "jklqa"})
//	words := s.Query().
//	    Contains("ae").
//	    DoesntContain("by").
//	    AtPosition(0, 'a').
//	    NotAtPosition(1, 'l').
//	    Results() // [apple]
//
// With a persisted index cache:
//
//	ctx := context.Background()
//	lists := blobstore.NewLocalStore("./lists")
//	s, _ := wordsieve.Open(ctx,
//	    wordsieve.WithWordLists(lists, "answers.txt"),
//	    wordsieve.WithCache(blobstore.NewLocalStore("./cache"), ""),
//	)
//
// Open reads the cache when it is present and valid, otherwise it rebuilds
// the index from the word lists and writes the cache again. The cache store
// may be any blobstore.BlobStore, including the S3 and MinIO stores.
//
// # Constraints
//
// Constraints also exist as values, parsed from a compact expression or
// derived from Wordle feedback:
//
//	cs, _ := query.Parse("+ae -by a@0 l!1")
//	words, _ := s.Filter(ctx, cs...)
//
//	cs, _ = query.Feedback("crane", "bygbb")
//
// # Argument Policy
//
// By default an out-of-range slot or a letter outside a-z behaves like an
// empty posting list. WithPolicy(query.Strict) turns it into a sticky error
// instead.
package wordsieve
