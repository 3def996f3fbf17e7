// Package formula implements the CNF data model: a clause set together with
// a dense, variable-indexed assignment vector.
package formula

import (
	"fmt"

	"github.com/Phenriquess25/SatSolver/clause"
	"github.com/Phenriquess25/SatSolver/internal/solveerr"
	"github.com/Phenriquess25/SatSolver/internal/varset"
	"github.com/Phenriquess25/SatSolver/lit"
	"github.com/Phenriquess25/SatSolver/tribool"
)

// Formula owns a clause set and the assignment vector the solver mutates
// during a solve. Index 0 of the assignment vector is unused; variables are
// 1-indexed, matching DIMACS text.
type Formula struct {
	n       int
	clauses []*clause.Clause
	assigns []tribool.Tribool
	used    varset.Set

	// failNextAdd lets tests exercise the OutOfMemory contract of AddClause
	// without actually exhausting memory.
	failNextAdd bool
}

// New returns an empty formula declared over variables 1..n.
func New(n int) *Formula {
	return &Formula{
		n:       n,
		clauses: make([]*clause.Clause, 0),
		assigns: make([]tribool.Tribool, n+1),
		used:    varset.New(),
	}
}

// NVars returns the declared number of variables.
func (f *Formula) NVars() int {
	return f.n
}

// Clauses returns the formula's clauses. The returned slice must not be
// mutated by the caller.
func (f *Formula) Clauses() []*clause.Clause {
	return f.clauses
}

// NClauses returns the number of stored clauses.
func (f *Formula) NClauses() int {
	return len(f.clauses)
}

// UsedVars returns the set of variables that have appeared in some clause
// added via AddClause.
func (f *Formula) UsedVars() varset.Set {
	return f.used
}

// AddClause takes ownership of lits, builds a clause from them, and appends
// it to the clause set. ok is false when the clause was filtered (empty or
// tautological, per the clause package's invariants) rather than stored;
// that is not itself an error. err is non-nil only on allocation failure.
func (f *Formula) AddClause(lits []lit.Lit) (ok bool, err error) {
	if f.failNextAdd {
		f.failNextAdd = false
		return false, solveerr.New(solveerr.OutOfMemory, "add clause: allocation failed")
	}
	c, ok := clause.New(lits)
	if !ok {
		return false, nil
	}
	for _, p := range c.Lits() {
		varset.Add(f.used, p.Var())
	}
	f.clauses = append(f.clauses, c)
	return true, nil
}

// InjectAllocationFailure arranges for the next AddClause call to fail with
// OutOfMemory, exercising the contract described in §4.2 without an actual
// allocator hook.
func (f *Formula) InjectAllocationFailure() {
	f.failNextAdd = true
}

// ValueOf implements clause.Assignment.
func (f *Formula) ValueOf(l lit.Lit) tribool.Tribool {
	if l.IsUndef() {
		return tribool.Unassigned
	}
	v := f.assigns[l.Var()]
	if l.Sign() {
		return v.Not()
	}
	return v
}

// Assign sets variable v (1-indexed) to val. The caller — the solver's
// trail bindings — is responsible for keeping the trail and this vector in
// sync; see solver/bindings.go.
func (f *Formula) Assign(v int, val tribool.Tribool) {
	f.assigns[v] = val
}

// VarValue returns the raw (unpolarized) value of 1-indexed variable v.
func (f *Formula) VarValue(v int) tribool.Tribool {
	return f.assigns[v]
}

// Unassign clears variable v (1-indexed) back to Unassigned.
func (f *Formula) Unassign(v int) {
	f.assigns[v] = tribool.Unassigned
}

// IsSatisfied reports whether every clause is satisfied under the current
// assignment. Linear in total literal count; callers in a hot loop should
// prefer checking HasConflict first since a conflict implies not satisfied.
func (f *Formula) IsSatisfied() bool {
	for _, c := range f.clauses {
		if !c.Satisfied(f) {
			return false
		}
	}
	return true
}

// HasConflict reports whether at least one clause is conflicting (falsified)
// under the current assignment.
func (f *Formula) HasConflict() bool {
	for _, c := range f.clauses {
		if c.Conflicting(f) {
			return true
		}
	}
	return false
}

// Model returns the current assignment as a DIMACS-style model: one signed
// integer per declared variable, in order, with unassigned variables
// reported as false per §6.3's convention.
func (f *Formula) Model() []int {
	out := make([]int, f.n)
	for v := 1; v <= f.n; v++ {
		if f.assigns[v].IsTrue() {
			out[v-1] = v
		} else {
			out[v-1] = -v
		}
	}
	return out
}

// String renders the formula as DIMACS clause lines, for debugging.
func (f *Formula) String() string {
	return fmt.Sprintf("p cnf %d %d", f.n, len(f.clauses))
}
