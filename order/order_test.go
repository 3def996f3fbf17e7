package order

import (
	"testing"

	"github.com/Phenriquess25/SatSolver/formula"
	"github.com/Phenriquess25/SatSolver/lit"
	"github.com/Phenriquess25/SatSolver/tribool"
)

func TestFirstUnassigned(t *testing.T) {
	f := formula.New(3)
	f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(2)})
	f.AddClause([]lit.Lit{lit.FromInt(3)})
	f.Assign(1, tribool.True)

	if v := (FirstUnassigned{}).Choose(f); v != 2 {
		t.Fatalf("Choose() = %d, want 2", v)
	}
}

func TestFirstUnassignedSkipsDeclaredUnused(t *testing.T) {
	// Variable 2 is declared (V=3 in DIMACS terms) but never appears in any
	// clause; it must never be picked as a decision.
	f := formula.New(3)
	f.AddClause([]lit.Lit{lit.FromInt(1)})
	f.AddClause([]lit.Lit{lit.FromInt(3)})

	if v := (FirstUnassigned{}).Choose(f); v != 1 {
		t.Fatalf("Choose() = %d, want 1 (var 2 unused, var 3 unassigned later)", v)
	}
	f.Assign(1, tribool.True)
	if v := (FirstUnassigned{}).Choose(f); v != 3 {
		t.Fatalf("Choose() = %d, want 3 (var 2 stays skipped)", v)
	}
}

func TestFirstUnassignedNoneLeft(t *testing.T) {
	f := formula.New(1)
	f.Assign(1, tribool.True)

	if v := (FirstUnassigned{}).Choose(f); v != 0 {
		t.Fatalf("Choose() = %d, want 0", v)
	}
}

func TestMostFrequentPrefersVarInMoreClauses(t *testing.T) {
	f := formula.New(3)
	f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(2)})
	f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(3)})
	f.AddClause([]lit.Lit{lit.FromInt(1), lit.FromInt(-2)})

	if v := (MostFrequent{}).Choose(f); v != 1 {
		t.Fatalf("Choose() = %d, want 1 (appears in all 3 clauses)", v)
	}
}

func TestMostFrequentIgnoresSatisfiedClauses(t *testing.T) {
	f := formula.New(2)
	f.AddClause([]lit.Lit{lit.FromInt(1)})
	f.AddClause([]lit.Lit{lit.FromInt(2)})
	f.Assign(1, tribool.True)

	if v := (MostFrequent{}).Choose(f); v != 2 {
		t.Fatalf("Choose() = %d, want 2 (var 1's clause is satisfied)", v)
	}
}

func TestJeroslowWangPrefersShorterClauses(t *testing.T) {
	f := formula.New(3)
	f.AddClause([]lit.Lit{lit.FromInt(1)})
	f.AddClause([]lit.Lit{lit.FromInt(2), lit.FromInt(3)})

	if v := (JeroslowWang{}).Choose(f); v != 1 {
		t.Fatalf("Choose() = %d, want 1 (unit clause dominates)", v)
	}
}

func declareAllUsed(f *formula.Formula, n int) {
	for v := 1; v <= n; v++ {
		f.AddClause([]lit.Lit{lit.FromInt(v)})
	}
}

func TestRandomPicksAmongUnassigned(t *testing.T) {
	f := formula.New(5)
	declareAllUsed(f, 5)
	f.Assign(1, tribool.True)
	f.Assign(2, tribool.True)

	seed := int64(42)
	strat := NewRandom(&seed)

	for i := 0; i < 20; i++ {
		v := strat.Choose(f)
		if v < 3 || v > 5 {
			t.Fatalf("Choose() = %d, want in [3,5]", v)
		}
	}
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	f1 := formula.New(10)
	f2 := formula.New(10)
	declareAllUsed(f1, 10)
	declareAllUsed(f2, 10)
	seed := int64(7)

	s1 := NewRandom(&seed)
	s2 := NewRandom(&seed)

	for i := 0; i < 10; i++ {
		v1 := s1.Choose(f1)
		v2 := s2.Choose(f2)
		if v1 != v2 {
			t.Fatalf("same-seed strategies diverged: %d != %d", v1, v2)
		}
		f1.Assign(v1, tribool.True)
		f2.Assign(v2, tribool.True)
	}
}

func TestNewUnknownStrategy(t *testing.T) {
	if _, err := New("bogus", nil); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}
