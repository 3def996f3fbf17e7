package solver

// Outcome reports what a propagation phase did to the assignment.
type Outcome int

const (
	// Ok means the phase ran and changed nothing.
	Ok Outcome = iota
	// Fixed means the phase pushed at least one new binding and left the
	// formula without a conflict.
	Fixed
	// Conflict means the phase surfaced a falsified clause.
	Conflict
)

// unitPropagate repeatedly scans every clause for one that is unit under the
// current assignment and pushes its forced literal, until a full pass makes
// no new assignment or a clause turns out conflicting. It has no watch list:
// each pass costs O(total literals), which the spec's stated complexity
// bound accepts in exchange for never maintaining watches across restarts
// and backtracks.
func (s *Solver) unitPropagate() Outcome {
	any := false
	for {
		progressed := false
		conflicted := false
		for _, c := range s.formula.Clauses() {
			if c.Conflicting(s.formula) {
				conflicted = true
				break
			}
			if c.Satisfied(s.formula) {
				continue
			}
			ul, ok := c.Unit(s.formula)
			if !ok {
				continue
			}
			s.push(ul.Var(), !ul.Sign(), false)
			s.stats.Propagations++
			progressed = true
			any = true
		}
		if conflicted {
			return Conflict
		}
		if !progressed {
			break
		}
	}
	if any {
		return Fixed
	}
	return Ok
}

// pureLiteralEliminate runs one sweep: any unassigned variable appearing
// with only one polarity across the not-yet-satisfied clauses is pushed to
// the value that satisfies that polarity. Unlike unitPropagate this does not
// iterate to a fixed point itself; the caller re-runs it (by looping the
// whole search step) until a sweep reports Ok.
func (s *Solver) pureLiteralEliminate() Outcome {
	pos := make([]bool, s.formula.NVars()+1)
	neg := make([]bool, s.formula.NVars()+1)
	for _, c := range s.formula.Clauses() {
		if c.Satisfied(s.formula) {
			continue
		}
		for _, p := range c.Lits() {
			if p.Sign() {
				neg[p.Var()] = true
			} else {
				pos[p.Var()] = true
			}
		}
	}

	any := false
	for v := 1; v <= s.formula.NVars(); v++ {
		if !s.formula.VarValue(v).IsUnassigned() {
			continue
		}
		switch {
		case pos[v] && !neg[v]:
			s.push(v, true, false)
			s.stats.Eliminations++
			any = true
		case neg[v] && !pos[v]:
			s.push(v, false, false)
			s.stats.Eliminations++
			any = true
		}
	}

	if s.formula.HasConflict() {
		// Can't happen from pure literals alone — a variable forced to
		// satisfy every clause it appears in cannot falsify one — but the
		// check is cheap and the consequence of missing a real conflict is
		// an unsound answer, so it stays.
		return Conflict
	}
	if any {
		return Fixed
	}
	return Ok
}
