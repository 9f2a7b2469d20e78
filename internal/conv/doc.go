// Package conv provides bounds-checked integer conversions for sizes and
// counts that end up in fixed-width fields of the index and its cache.
package conv
