// Package hash provides the CRC32-Castagnoli checksum used by the index cache
// header and by S3 uploads.
//
// Go's hash/crc32 uses the SSE4.2 and ARM CRC instructions when available.
//
//	sum := hash.CRC32C(payload)
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum = h.Sum32()
package hash
