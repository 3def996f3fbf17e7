// Package clause implements the clause model and the four predicates the
// DPLL engine evaluates over a partial assignment: satisfied, conflicting,
// unit, and tautological.
package clause

import (
	"sort"
	"strings"

	"github.com/Phenriquess25/SatSolver/lit"
	"github.com/Phenriquess25/SatSolver/tribool"
)

// Assignment is the minimal view of a partial assignment the predicates in
// this package need. formula.Formula satisfies it; tests can satisfy it with
// a bare slice.
type Assignment interface {
	ValueOf(l lit.Lit) tribool.Tribool
}

// sliceAssignment adapts a raw per-variable value slice to Assignment, for
// use in tests and by callers that don't want to depend on formula. The
// slice is 0-indexed by Lit.Index() (i.e. entry i holds the value of
// variable i+1), unlike formula.Formula's 1-indexed assigns vector.
type sliceAssignment []tribool.Tribool

// ValueOf implements Assignment.
func (a sliceAssignment) ValueOf(l lit.Lit) tribool.Tribool {
	if l.IsUndef() {
		return tribool.Unassigned
	}
	v := a[l.Index()]
	if l.Sign() {
		return v.Not()
	}
	return v
}

// Of wraps a raw per-variable value slice as an Assignment.
func Of(values []tribool.Tribool) Assignment {
	return sliceAssignment(values)
}

// Clause is an ordered, duplicate-free, non-tautological disjunction of
// literals. Clauses are built once by New and are otherwise read-only; the
// literal order after construction carries no semantics beyond iteration
// stability.
type Clause struct {
	lits []lit.Lit
}

// New builds a clause from raw literals, collapsing duplicate literals and
// reporting whether the clause is a tautology (in which case it must not be
// stored: ok is false and the returned clause is nil). An empty clause,
// whether given directly or produced by collapsing duplicates, is also
// rejected the same way; callers at the parser boundary that must tell the
// two apart check len(lits) == 0 before calling New.
func New(lits []lit.Lit) (c *Clause, ok bool) {
	cp := append([]lit.Lit(nil), lits...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	out := cp[:0]
	last := lit.Undef

	for _, p := range cp {
		switch {
		case p == last:
			continue
		case p == last.Not():
			return nil, false
		}
		out = append(out, p)
		last = p
	}
	if len(out) == 0 {
		return nil, false
	}
	return &Clause{lits: out}, true
}

// Lits returns the clause's literals. The returned slice must not be
// mutated by the caller.
func (c *Clause) Lits() []lit.Lit {
	return c.lits
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Satisfied reports whether some literal in the clause evaluates to true
// under a.
func (c *Clause) Satisfied(a Assignment) bool {
	for _, p := range c.lits {
		if a.ValueOf(p).IsTrue() {
			return true
		}
	}
	return false
}

// Conflicting reports whether every literal in the clause evaluates to false
// under a, i.e. the clause is falsified.
func (c *Clause) Conflicting(a Assignment) bool {
	for _, p := range c.lits {
		if !a.ValueOf(p).IsFalse() {
			return false
		}
	}
	return true
}

// Unit reports whether the clause is unit under a: not satisfied, exactly one
// literal unassigned, and every other literal false. When true, unitLit is
// that literal.
func (c *Clause) Unit(a Assignment) (unitLit lit.Lit, ok bool) {
	unitLit = lit.Undef
	count := 0

	for _, p := range c.lits {
		switch {
		case a.ValueOf(p).IsTrue():
			return lit.Undef, false
		case a.ValueOf(p).IsUnassigned():
			count++
			if count > 1 {
				return lit.Undef, false
			}
			unitLit = p
		}
	}
	return unitLit, count == 1
}

// asStrings renders each literal as its DIMACS-style string form.
func (c *Clause) asStrings() []string {
	out := make([]string, len(c.lits))
	for i, p := range c.lits {
		out[i] = p.String()
	}
	return out
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	return strings.Join(c.asStrings(), " ")
}
