package solver

import "time"

// Solve runs preprocessing followed by the main DPLL loop and returns once
// the formula is decided or a resource budget is spent.
func (s *Solver) Solve() Result {
	s.start = time.Now()
	s.logf("solve: %d vars, %d clauses", s.formula.NVars(), s.formula.NClauses())

	if status := s.preprocess(); status != StatusUnknown {
		if status == StatusSAT {
			return s.satResult()
		}
		return s.unsatResult()
	}

	// progress snapshot for the no-progress guard: compared against the
	// counters recorded at the top of the previous iteration.
	prevDecisions, prevPropagations := -1, -1
	prevEliminations, prevBacktracks, prevRestarts := -1, -1, -1

	for {
		if prevDecisions >= 0 &&
			s.stats.Decisions == prevDecisions &&
			s.stats.Propagations == prevPropagations &&
			s.stats.Eliminations == prevEliminations &&
			s.stats.Backtracks == prevBacktracks &&
			s.stats.Restarts == prevRestarts {
			return s.unknownResult(ReasonNoProgress)
		}
		prevDecisions, prevPropagations = s.stats.Decisions, s.stats.Propagations
		prevEliminations, prevBacktracks, prevRestarts = s.stats.Eliminations, s.stats.Backtracks, s.stats.Restarts

		// Step 1: budgets.
		if s.cfg.Deadline > 0 && time.Since(s.start) >= s.cfg.Deadline {
			return s.unknownResult(ReasonTimeout)
		}
		if s.cfg.DecisionBudget > 0 && s.stats.Decisions >= s.cfg.DecisionBudget {
			return s.unknownResult(ReasonDecisionBudget)
		}

		// Step 2.
		if s.formula.IsSatisfied() {
			return s.satResult()
		}

		// Step 3.
		if s.formula.HasConflict() {
			s.stats.Conflicts++
			if s.restartDue() {
				s.restart()
				continue
			}
			if !s.backtrack() {
				return s.unsatResult()
			}
			continue
		}

		// Step 4.
		if s.unitPropagate() == Conflict {
			continue
		}

		// Step 5.
		if s.cfg.EnableEliminations {
			switch s.pureLiteralEliminate() {
			case Conflict:
				continue
			case Fixed:
				continue
			}
		}

		// Step 6.
		v := s.strategy.Choose(s.formula)
		if v == 0 {
			if s.formula.IsSatisfied() {
				return s.satResult()
			}
			return s.unsatResult()
		}

		// Step 7.
		s.push(v, true, true)
		s.stats.Decisions++
	}
}

// preprocess runs propagation and pure-literal elimination to a joint fixed
// point at decision level 0, before any decision is made. Returns
// StatusUnknown to mean "continue to the main loop."
func (s *Solver) preprocess() Status {
	for {
		if s.unitPropagate() == Conflict {
			return StatusUNSAT
		}
		changed := false
		if s.cfg.EnableEliminations {
			switch s.pureLiteralEliminate() {
			case Conflict:
				return StatusUNSAT
			case Fixed:
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	if s.formula.NClauses() == 0 || s.formula.IsSatisfied() {
		return StatusSAT
	}
	if s.formula.HasConflict() {
		return StatusUNSAT
	}
	return StatusUnknown
}

// backtrack performs chronological backtracking with phase tracking: it
// locates the most recent decision and undoes every binding through it. If
// that decision hasn't been flipped yet, its negation is re-pushed as the
// flipped phase of the same decision. If it was already the flipped phase,
// both values of that decision have now failed, so it is discarded entirely
// and the search falls through to the decision above it. Returns false only
// once no decision remains to flip, meaning the search space is exhausted.
func (s *Solver) backtrack() bool {
	for {
		idx := s.trail.LastDecisionIndex()
		if idx == -1 {
			return false
		}

		d := s.trail.Entries()[idx]
		for s.trail.Len() > idx {
			s.pop()
		}

		if d.Flipped {
			// Both phases of this decision failed; it contributes nothing
			// further, so keep unwinding to the decision above it.
			continue
		}

		s.pushFlippedDecision(d.Var, !d.Value)
		s.stats.Backtracks++
		return true
	}
}

// restartDue reports whether the optional restart scheme should fire instead
// of an ordinary backtrack: enabled, a positive threshold configured, at
// least one decision to undo, and enough conflicts accumulated since the
// last restart.
func (s *Solver) restartDue() bool {
	if !s.cfg.EnableRestarts || s.cfg.RestartThreshold <= 0 {
		return false
	}
	if s.trail.Level() == 0 {
		return false
	}
	s.conflictsSinceRestart++
	return s.conflictsSinceRestart >= s.cfg.RestartThreshold
}

// restart unwinds the trail to decision level 0, keeping whatever
// propagation and elimination established there, and resets the conflict
// counter. Unlike backtrack it does not flip anything: the next decision
// picks however the configured strategy sees fit.
func (s *Solver) restart() {
	s.backtrackTo(0)
	s.conflictsSinceRestart = 0
	s.stats.Restarts++
}
