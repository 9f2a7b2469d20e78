package query

import (
	"fmt"

	"github.com/hupe1980/wordsieve/index"
	"github.com/hupe1980/wordsieve/internal/bitmap"
)

// Query is a filtering session over an Index.
//
// It owns a candidate set, initialized to every word id, which each
// operation narrows. Operations return the session itself so they can be
// chained:
//
//	words := query.New(ix).
//	    Contains("ae").
//	    DoesntContain("by").
//	    AtPosition(0, 'a').
//	    NotAtPosition(1, 'l').
//	    Results()
//
// A Query is not safe for concurrent use; open one session per goroutine
// (or Clone) against the shared Index.
type Query struct {
	ix         *index.Index
	candidates *bitmap.Bitmap
	opts       options
	err        error
}

// New opens a session with every word of ix as a candidate.
func New(ix *index.Index, optFns ...Option) *Query {
	o := options{
		policy: Lenient,
		tracer: noopTracer{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	return &Query{
		ix:         ix,
		candidates: bitmap.Range(uint32(ix.Len())),
		opts:       o,
	}
}

// Contains keeps the words containing every listed letter somewhere.
func (q *Query) Contains(letters string) *Query {
	return q.presence(OpContains, letters, (*bitmap.Bitmap).And)
}

// DoesntContain drops every word containing any of the listed letters.
func (q *Query) DoesntContain(letters string) *Query {
	return q.presence(OpDoesntContain, letters, (*bitmap.Bitmap).AndNot)
}

// AtPosition keeps the words having letter at slot.
func (q *Query) AtPosition(slot int, letter rune) *Query {
	return q.position(OpAtPosition, slot, letter, (*bitmap.Bitmap).And)
}

// NotAtPosition drops the words having letter at slot.
func (q *Query) NotAtPosition(slot int, letter rune) *Query {
	return q.position(OpNotAtPosition, slot, letter, (*bitmap.Bitmap).AndNot)
}

// Apply applies the constraints in order.
func (q *Query) Apply(cs ...Constraint) *Query {
	for _, c := range cs {
		c.Apply(q)
	}
	return q
}

func (q *Query) presence(op Op, letters string, combine func(dst, postings *bitmap.Bitmap)) *Query {
	if q.err != nil {
		return q
	}
	before := q.Count()
	for _, r := range letters {
		postings, ok := q.lookup(op, index.AnySlot, r)
		if !ok {
			break
		}
		combine(q.candidates, postings)
	}
	q.trace(op, letters, index.AnySlot, before)
	return q
}

func (q *Query) position(op Op, slot int, letter rune, combine func(dst, postings *bitmap.Bitmap)) *Query {
	if q.err != nil {
		return q
	}
	before := q.Count()
	if postings, ok := q.lookup(op, slot, letter); ok {
		combine(q.candidates, postings)
	}
	q.trace(op, string(letter), slot, before)
	return q
}

// lookup resolves a posting list according to the session policy.
// It returns false only after a Strict session failed.
func (q *Query) lookup(op Op, slot int, letter rune) (*bitmap.Bitmap, bool) {
	if q.opts.foldCase && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	// AnySlot is an internal selector, never a caller supplied slot.
	if slot != index.AnySlot || op == OpContains || op == OpDoesntContain {
		if postings, ok := q.ix.Postings(slot, letter); ok {
			return postings, true
		}
	}
	if q.opts.policy == Strict {
		q.fail(q.argumentError(op, slot, letter))
		return nil, false
	}
	return bitmap.New(), true
}

func (q *Query) argumentError(op Op, slot int, letter rune) *ArgumentError {
	e := &ArgumentError{Op: op, Slot: slot, Letter: letter}
	if _, ok := index.LetterOffset(letter); !ok {
		e.Reason = fmt.Sprintf("letter %q outside a-z", letter)
	} else {
		e.Reason = fmt.Sprintf("slot %d out of range [0,%d)", slot, q.ix.Slots())
	}
	return e
}

func (q *Query) fail(err error) {
	q.err = err
	q.candidates.Clear()
}

func (q *Query) trace(op Op, letters string, slot, before int) {
	q.opts.tracer.Trace(Event{
		Op:      op,
		Letters: letters,
		Slot:    slot,
		Before:  before,
		After:   q.Count(),
		Err:     q.err,
	})
}

// Err returns the error recorded by a Strict session, if any.
func (q *Query) Err() error {
	return q.err
}

// Count returns the number of remaining candidates.
func (q *Query) Count() int {
	return int(q.candidates.Cardinality())
}

// IDs returns the remaining word ids in ascending order.
func (q *Query) IDs() []uint32 {
	return q.candidates.ToArray()
}

// Results returns the remaining words in ascending id order.
// It does not end the session; more operations may follow.
func (q *Query) Results() []string {
	out := make([]string, 0, q.Count())
	for id := range q.candidates.All() {
		if w, ok := q.ix.Word(id); ok {
			out = append(out, w)
		}
	}
	return out
}

// Clone returns an independent session with a copy of the candidate set.
func (q *Query) Clone() *Query {
	return &Query{
		ix:         q.ix,
		candidates: q.candidates.Clone(),
		opts:       q.opts,
		err:        q.err,
	}
}

// Index returns the index the session filters.
func (q *Query) Index() *index.Index {
	return q.ix
}
