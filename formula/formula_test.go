package formula

import (
	"errors"
	"testing"

	"github.com/Phenriquess25/SatSolver/internal/solveerr"
	"github.com/Phenriquess25/SatSolver/lit"
	"github.com/Phenriquess25/SatSolver/tribool"
)

func TestAddClauseFiltersTautology(t *testing.T) {
	f := New(2)
	ok, err := f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(-1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected tautology to be filtered")
	}
	if f.NClauses() != 0 {
		t.Fatalf("tautology must not be stored, got %d clauses", f.NClauses())
	}
}

func TestAddClauseTracksUsedVars(t *testing.T) {
	f := New(3)
	f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(-2)})

	if f.UsedVars().Cardinality() != 2 {
		t.Fatalf("expected 2 used vars, got %d", f.UsedVars().Cardinality())
	}
}

func TestAddClauseOutOfMemory(t *testing.T) {
	f := New(1)
	f.InjectAllocationFailure()

	_, err := f.AddClause([]lit.Lit{lit.FromInt(1)})
	var serr *solveerr.Error
	if err == nil {
		t.Fatalf("expected injected OutOfMemory error")
	}
	if !errors.As(err, &serr) || serr.Kind != solveerr.OutOfMemory {
		t.Fatalf("expected OutOfMemory kind, got %v", err)
	}
}

func TestIsSatisfiedAndHasConflict(t *testing.T) {
	f := New(2)
	f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(2)})

	if f.IsSatisfied() {
		t.Fatalf("expected unsatisfied with no assignment")
	}
	if f.HasConflict() {
		t.Fatalf("expected no conflict with no assignment")
	}

	f.Assign(1, tribool.False)
	f.Assign(2, tribool.False)

	if !f.HasConflict() {
		t.Fatalf("expected conflict")
	}

	f.Assign(1, tribool.True)

	if !f.IsSatisfied() {
		t.Fatalf("expected satisfied")
	}
}

func TestModelReportsUnassignedAsFalse(t *testing.T) {
	f := New(2)
	f.Assign(1, tribool.True)

	model := f.Model()
	if model[0] != 1 {
		t.Fatalf("expected var 1 true, got %v", model)
	}
	if model[1] != -2 {
		t.Fatalf("expected unassigned var 2 reported false, got %v", model)
	}
}
