// Package wordlist reads word lists: one word per line, blank lines and
// lines starting with '#' ignored.
//
// Sources are plain readers, local files or blobs of any blobstore.BlobStore.
// LoadAll reads several blobs concurrently and concatenates them in argument
// order, so word ids stay stable between runs.
//
// The loader does not validate characters; index.Build rejects anything
// outside 'a'..'z'.
package wordlist
