// Package bitmap provides the ordered id sets used by the word index.
//
// Every posting list (letter -> word ids, slot+letter -> word ids) and every
// query candidate set is a Bitmap. The type is a thin wrapper over Roaring
// Bitmaps, which keeps ids sorted by construction, makes intersection and
// difference cheap, and gives a portable serialization format for the index
// cache.
//
// # Example Usage
//
//	candidates := bitmap.Range(uint32(len(words))) // all ids
//	candidates.And(presence['a'-'a'])              // keep words with an 'a'
//	candidates.AndNot(presence['y'-'a'])           // drop words with a 'y'
//
//	for id := range candidates.All() {
//	    fmt.Println(words[id])
//	}
//
// Bitmaps are not safe for concurrent mutation.
package bitmap
