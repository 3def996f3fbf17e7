package solveerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	e := NewFormat(LiteralOutOfRange, 3, "literal 9 exceeds declared 5 variables")
	want := "format error (literal out of range) at line 3: literal 9 exceeds declared 5 variables"
	if got := e.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	e := Wrap(FileUnreadable, cause, "opening input.cnf")

	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is did not find wrapped cause")
	}
}

func TestAsMatchesKind(t *testing.T) {
	var target *Error
	err := error(NewFormat(EmptyClause, 7, "empty clause in strict mode"))

	if !errors.As(err, &target) {
		t.Fatalf("errors.As failed to match *Error")
	}
	if target.Kind != FormatError || target.Subkind != EmptyClause {
		t.Fatalf("unexpected kind/subkind: %v/%v", target.Kind, target.Subkind)
	}
}
