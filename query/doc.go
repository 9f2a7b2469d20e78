// Package query narrows the words of an index.Index by letter constraints.
//
// A Query owns a candidate set of word ids, initially every word. Each
// operation intersects it with, or subtracts from it, a posting list of the
// shared index:
//
//	Contains(letters)        AND of the presence lists of every letter
//	DoesntContain(letters)   minus the presence list of every letter
//	AtPosition(slot, c)      AND of the (slot, c) position list
//	NotAtPosition(slot, c)   minus the (slot, c) position list
//
// The candidate set never grows, so the final result does not depend on the
// order of the operations. Results may be read at any point of the chain.
//
// Constraints are also available as values (Contains, AtPosition, ...), can
// be parsed from a compact expression with Parse, or derived from a
// Wordle-style colouring with Feedback.
//
// # Invalid Arguments
//
// With the default Lenient policy, a slot outside the position index or a
// letter outside 'a'..'z' behaves like an empty posting list. With Strict,
// the session records an *ArgumentError instead (see Query.Err).
//
// # Tracing
//
// WithTracer installs a hook receiving an Event after each operation. The
// package itself never logs.
package query
