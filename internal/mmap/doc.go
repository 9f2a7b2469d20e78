// Package mmap maps files read-only into memory.
//
// LocalStore blobs are served from a Mapping, so reading a cache file costs
// no copy through kernel buffers.
//
//	m, err := mmap.Open("words.idx")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2); Windows uses CreateFileMapping and
// MapViewOfFile, where Advise is a no-op.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but no
// goroutine may touch the slice returned by Bytes after Close.
package mmap
