package lit

import "testing"

func TestFromInt(t *testing.T) {
	if l := FromInt(12); l.Var() != 12 || l.Sign() {
		t.Fatalf("FromInt(12) = %v", l)
	}
	if l := FromInt(-12); l.Var() != 12 || !l.Sign() {
		t.Fatalf("FromInt(-12) = %v", l)
	}
}

func TestNot(t *testing.T) {
	if l := New(12, false).Not(); l != New(12, true) {
		t.Fatalf("Not() = %v", l)
	}
}

func TestSign(t *testing.T) {
	if l := New(12, true); !l.Sign() {
		t.Fatalf("Sign() = false, want true")
	}
	if l := New(12, false); l.Sign() {
		t.Fatalf("Sign() = true, want false")
	}
}

func TestVar(t *testing.T) {
	if l := New(23, false); l.Var() != 24 {
		t.Fatalf("Var() = %d, want 24", l.Var())
	}
	if l := New(23, true); l.Var() != 24 {
		t.Fatalf("Var() = %d, want 24", l.Var())
	}
}

func TestInt(t *testing.T) {
	if l := FromInt(5); l.Int() != 5 {
		t.Fatalf("Int() = %d, want 5", l.Int())
	}
	if l := FromInt(-5); l.Int() != -5 {
		t.Fatalf("Int() = %d, want -5", l.Int())
	}
}

func TestIsUndef(t *testing.T) {
	if !Undef.IsUndef() {
		t.Fatalf("Undef.IsUndef() = false")
	}
	if FromInt(1).IsUndef() {
		t.Fatalf("FromInt(1).IsUndef() = true")
	}
}

func TestString(t *testing.T) {
	if s := FromInt(3).String(); s != "3" {
		t.Fatalf("String() = %q, want %q", s, "3")
	}
	if s := FromInt(-3).String(); s != "-3" {
		t.Fatalf("String() = %q, want %q", s, "-3")
	}
}
