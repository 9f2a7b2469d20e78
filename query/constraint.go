package query

import (
	"fmt"
	"strings"
)

// Constraint is a single filtering step as a value. Constraints can be
// collected, reordered and replayed against any session.
//
// The String form of the built-in constraints is accepted by Parse.
type Constraint interface {
	Apply(q *Query) *Query
	String() string
}

type containsConstraint struct{ letters string }

// Contains returns a constraint keeping words that contain every letter.
func Contains(letters string) Constraint { return containsConstraint{letters: letters} }

func (c containsConstraint) Apply(q *Query) *Query { return q.Contains(c.letters) }
func (c containsConstraint) String() string        { return "+" + c.letters }

type doesntContainConstraint struct{ letters string }

// DoesntContain returns a constraint dropping words that contain any letter.
func DoesntContain(letters string) Constraint { return doesntContainConstraint{letters: letters} }

func (c doesntContainConstraint) Apply(q *Query) *Query { return q.DoesntContain(c.letters) }
func (c doesntContainConstraint) String() string        { return "-" + c.letters }

type atPositionConstraint struct {
	slot   int
	letter rune
}

// AtPosition returns a constraint keeping words with letter at slot.
func AtPosition(slot int, letter rune) Constraint {
	return atPositionConstraint{slot: slot, letter: letter}
}

func (c atPositionConstraint) Apply(q *Query) *Query { return q.AtPosition(c.slot, c.letter) }
func (c atPositionConstraint) String() string        { return fmt.Sprintf("%c@%d", c.letter, c.slot) }

type notAtPositionConstraint struct {
	slot   int
	letter rune
}

// NotAtPosition returns a constraint dropping words with letter at slot.
func NotAtPosition(slot int, letter rune) Constraint {
	return notAtPositionConstraint{slot: slot, letter: letter}
}

func (c notAtPositionConstraint) Apply(q *Query) *Query { return q.NotAtPosition(c.slot, c.letter) }
func (c notAtPositionConstraint) String() string        { return fmt.Sprintf("%c!%d", c.letter, c.slot) }

// Format joins constraints into an expression Parse accepts.
func Format(cs []Constraint) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
