package solver

import "github.com/Phenriquess25/SatSolver/tribool"

// push applies one binding to both the trail and the formula's assignment
// vector. The two must never be mutated separately — every caller in this
// package goes through push/pop/backtrackTo to keep them in lockstep.
func (s *Solver) push(v int, value bool, isDecision bool) {
	s.trail.Push(v, value, isDecision, false)
	s.formula.Assign(v, tribool.FromBool(value))
}

// pushFlippedDecision re-decides v as the alternate phase of a decision that
// was just undone, marking the new entry so a later conflict on it is known
// to have exhausted both phases rather than flipping back and forth forever.
func (s *Solver) pushFlippedDecision(v int, value bool) {
	s.trail.Push(v, value, true, true)
	s.formula.Assign(v, tribool.FromBool(value))
}

// pop undoes the most recent binding on both the trail and the formula.
func (s *Solver) pop() {
	e := s.trail.Pop()
	s.formula.Unassign(e.Var)
}

// backtrackTo unwinds the trail until the remaining top entry's level is at
// most level, leaving level-`level` entries in place. Popping a decision
// entry lowers the trail's own notion of its current level, so this is
// simply "pop while we're still above it."
func (s *Solver) backtrackTo(level int) {
	for s.trail.Level() > level {
		s.pop()
	}
}
