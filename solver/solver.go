// Package solver implements the DPLL search driver: unit propagation, pure
// literal elimination, decision making, and chronological backtracking over
// a formula.Formula.
//
// The teacher's solver in this package drove a watched-literal CDCL loop:
// two-literal watches, a learned-clause database, conflict analysis that
// built an asserting clause and computed a backjump level, and a Luby
// restart schedule tied to that learning. None of that survives here. This
// driver rescans every clause on each propagation pass instead of
// maintaining watches, it never learns a clause, and when it backtracks it
// undoes to the most recent decision, flips it once, and — if that flip also
// fails — discards it and keeps unwinding to the decision above, so chronological
// backtracking without learning still visits every node of the search tree
// exactly once. What's kept is the shape: a struct holding the formula and a
// trail, propagation and decision phases as separate methods, and a Stats
// block the caller can inspect after Solve returns.
package solver

import (
	"time"

	"github.com/Phenriquess25/SatSolver/config"
	"github.com/Phenriquess25/SatSolver/formula"
	"github.com/Phenriquess25/SatSolver/order"
	"github.com/Phenriquess25/SatSolver/trail"
)

// Status is the outcome of a Solve call.
type Status int

const (
	// StatusUnknown means the search stopped before deciding satisfiability,
	// per Reason.
	StatusUnknown Status = iota
	// StatusSAT means a satisfying assignment was found; see Result.Model.
	StatusSAT
	// StatusUNSAT means the search exhausted the decision space.
	StatusUNSAT
)

// String implements the Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusSAT:
		return "SATISFIABLE"
	case StatusUNSAT:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Reason further explains a StatusUnknown result.
type Reason int

const (
	// ReasonNone applies to non-Unknown statuses.
	ReasonNone Reason = iota
	// ReasonTimeout means the configured deadline elapsed.
	ReasonTimeout
	// ReasonDecisionBudget means the configured decision budget was spent.
	ReasonDecisionBudget
	// ReasonNoProgress means a full loop iteration produced no propagation,
	// elimination, decision, or backtrack — a defensive stop against an
	// engine bug, since a correctly implemented driver always makes progress
	// or terminates.
	ReasonNoProgress
)

// String implements the Stringer interface.
func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonDecisionBudget:
		return "decision budget exhausted"
	case ReasonNoProgress:
		return "no progress"
	default:
		return ""
	}
}

// Stats counts the work a Solve call performed.
type Stats struct {
	Decisions    int
	Propagations int
	Eliminations int
	Conflicts    int
	Backtracks   int
	Restarts     int
	Elapsed      time.Duration
}

// Result is the outcome of a Solve call.
type Result struct {
	Status Status
	Reason Reason
	// Model holds one signed integer per declared variable, set only when
	// Status is StatusSAT.
	Model []int
	Stats Stats
}

// Solver drives a DPLL search over a formula.
type Solver struct {
	formula  *formula.Formula
	trail    *trail.Trail
	cfg      *config.Config
	strategy order.Strategy

	stats                 Stats
	conflictsSinceRestart int
	start                 time.Time
}

// New returns a Solver ready to search f under cfg. cfg must not be nil; use
// config.New for the documented defaults.
func New(f *formula.Formula, cfg *config.Config) (*Solver, error) {
	strategy, err := order.New(cfg.Strategy, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Solver{
		formula:  f,
		trail:    trail.New(),
		cfg:      cfg,
		strategy: strategy,
	}, nil
}

// Trail exposes the solver's assignment trail for introspection, e.g. a
// caller wanting to print the decision sequence that led to a result.
func (s *Solver) Trail() *trail.Trail {
	return s.trail
}

func (s *Solver) logf(format string, args ...interface{}) {
	if s.cfg.Verbose && s.cfg.Logger != nil {
		s.cfg.Logger.Printf(format, args...)
	}
}

func (s *Solver) satResult() Result {
	s.stats.Elapsed = time.Since(s.start)
	return Result{Status: StatusSAT, Model: s.formula.Model(), Stats: s.stats}
}

func (s *Solver) unsatResult() Result {
	s.stats.Elapsed = time.Since(s.start)
	return Result{Status: StatusUNSAT, Stats: s.stats}
}

func (s *Solver) unknownResult(reason Reason) Result {
	s.stats.Elapsed = time.Since(s.start)
	return Result{Status: StatusUnknown, Reason: reason, Stats: s.stats}
}
