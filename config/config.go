// Package config holds the solver's run configuration: decision heuristic,
// resource budgets, and logging.
package config

import (
	"log"
	"os"
	"time"

	"github.com/Phenriquess25/SatSolver/order"
)

// Config configures a single solve() invocation.
type Config struct {
	// Logger receives progress messages when Verbose is set. Defaults to a
	// stdlib logger writing to stdout, matching the teacher's convention.
	Logger *log.Logger
	// Verbose turns on progress logging during the search.
	Verbose bool
	// Strategy names the decision heuristic; see order.Name.
	Strategy order.Name
	// Seed seeds the random strategy's PRNG. Nil seeds from wall time; it is
	// ignored by every strategy but order.Random.
	Seed *int64
	// Deadline bounds wall-clock search time. Zero means unlimited — this is
	// taken literally, never silently overridden.
	Deadline time.Duration
	// DecisionBudget bounds the number of branching decisions. Zero means
	// unlimited.
	DecisionBudget int
	// EnableEliminations turns on pure-literal elimination.
	EnableEliminations bool
	// EnableRestarts turns on the optional restart scheme.
	EnableRestarts bool
	// RestartThreshold is the number of conflicts since the last restart
	// that triggers another one, when EnableRestarts is set.
	RestartThreshold int
}

// New returns a Config with the spec's defaults: Jeroslow-Wang strategy,
// eliminations on, restarts off, no deadline, no decision budget.
func New() *Config {
	return &Config{
		Logger:             log.New(os.Stdout, "", log.Ldate|log.Ltime),
		Strategy:           order.JW,
		EnableEliminations: true,
	}
}
