// Package s3 stores word lists and index caches in Amazon S3.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("wordsieve/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	sv, err := wordsieve.Open(ctx,
//	    wordsieve.WithStore(store),
//	    wordsieve.WithWordLists("words/en.txt"),
//	)
//
// Reads use ranged GetObject requests; streaming writes go through the
// multipart upload manager; Put sends a single PutObject with a CRC32C
// checksum.
package s3
