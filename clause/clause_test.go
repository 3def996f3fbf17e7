package clause

import (
	"testing"

	"github.com/Phenriquess25/SatSolver/lit"
	"github.com/Phenriquess25/SatSolver/tribool"
)

func TestNewCollapsesDuplicates(t *testing.T) {
	c, ok := New([]lit.Lit{lit.FromInt(1), lit.FromInt(1), lit.FromInt(2)})
	if !ok || c.Len() != 2 {
		t.Fatalf("New() did not collapse duplicates, len=%d ok=%v", c.Len(), ok)
	}
}

func TestNewRejectsTautology(t *testing.T) {
	if _, ok := New([]lit.Lit{lit.FromInt(1), lit.FromInt(-1), lit.FromInt(2)}); ok {
		t.Fatalf("New() accepted a tautological clause")
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, ok := New(nil); ok {
		t.Fatalf("New() accepted an empty clause")
	}
}

func TestSatisfied(t *testing.T) {
	c, _ := New([]lit.Lit{lit.FromInt(1), lit.FromInt(-2)})
	a := Of([]tribool.Tribool{tribool.False, tribool.True})

	if c.Satisfied(a) {
		t.Fatalf("expected clause not satisfied")
	}
	a = Of([]tribool.Tribool{tribool.True, tribool.True})
	if !c.Satisfied(a) {
		t.Fatalf("expected clause satisfied by var 1")
	}
}

func TestConflicting(t *testing.T) {
	c, _ := New([]lit.Lit{lit.FromInt(1), lit.FromInt(-2)})
	a := Of([]tribool.Tribool{tribool.False, tribool.True})

	if !c.Conflicting(a) {
		t.Fatalf("expected clause conflicting")
	}
}

func TestUnit(t *testing.T) {
	c, _ := New([]lit.Lit{lit.FromInt(1), lit.FromInt(-2)})
	a := Of([]tribool.Tribool{tribool.Unassigned, tribool.True})

	p, ok := c.Unit(a)
	if !ok || p != lit.FromInt(1) {
		t.Fatalf("expected unit on literal 1, got %v ok=%v", p, ok)
	}

	a = Of([]tribool.Tribool{tribool.Unassigned, tribool.Unassigned})
	if _, ok := c.Unit(a); ok {
		t.Fatalf("expected not unit with two unassigned literals")
	}
}
