// Package lit implements the literal encoding used throughout the solver.
package lit

import "fmt"

// Undef is the sentinel literal meaning "no literal", used both for the
// decision-heuristic "no variable left" signal and as a placeholder entry.
const Undef = Lit(-1)

// Lit is a literal packed into a single int: the sign occupies the least
// significant bit and the 0-indexed variable occupies the rest. Packing the
// sign this way keeps a literal and its negation adjacent once sorted, which
// the clause model relies on to collapse duplicate literals cheaply.
type Lit int

// New returns the literal for 0-indexed variable v, negated if neg is set.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// FromInt returns the literal corresponding to a signed DIMACS-style integer,
// whose magnitude is the 1-indexed variable and whose sign is the polarity.
func FromInt(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return Lit(l ^ 1)
}

// Sign reports whether the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns the literal's 0-indexed variable, suitable for indexing
// parallel per-variable slices.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's 1-indexed variable, as it appears in DIMACS text.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Int returns the literal as a signed DIMACS-style integer.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// IsUndef reports whether l is the Undef sentinel.
func (l Lit) IsUndef() bool {
	return l == Undef
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("-%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
