package ir

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestCheckTransition_Valid(t *testing.T) {
	c := newBinaryConfig()

	if err := CheckTransition(c, "S0", '1', "S1"); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestCheckTransition_Order(t *testing.T) {
	c := newBinaryConfig()

	// every argument is invalid; only the source state is reported
	err := CheckTransition(c, "S9", 'x', "S8")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d", len(err.Issues))
	}
	if err.Issues[0].Code != ErrCodeUnknownState {
		t.Errorf("expected UNKNOWN_STATE, got %s", err.Issues[0].Code)
	}

	err = CheckTransition(c, "S0", 'x', "S8")
	if err == nil || err.Issues[0].Code != ErrCodeUnknownSymbol {
		t.Errorf("expected UNKNOWN_SYMBOL, got %v", err)
	}

	err = CheckTransition(c, "S0", '1', "S8")
	if err == nil || err.Issues[0].Code != ErrCodeUnknownFinalState {
		t.Errorf("expected UNKNOWN_FINAL_STATE, got %v", err)
	}
}

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
		set  string
	}{
		{UnknownStateError("S2"), "there is no 'S2' specified in states", SetStates},
		{UnknownSymbolError("4"), "there is no '4' specified in alphabet", SetAlphabet},
		{UnknownFinalStateError("S1"), "there is no 'S1' specified in final states", SetFinalStates},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.err.Error())
		}
		if tt.err.Issues[0].Set != tt.set {
			t.Errorf("expected set %q, got %q", tt.set, tt.err.Issues[0].Set)
		}
	}
}

type bit rune

func (b bit) String() string { return string(rune(b)) }

func TestValidationError_SymbolFormatting(t *testing.T) {
	c := NewAutomatonConfig[string, rune]()
	if err := CheckSymbol(c, '1'); err.Error() != "there is no '49' specified in alphabet" {
		t.Errorf("expected rune printed as code point, got %q", err.Error())
	}

	bits := NewAutomatonConfig[string, bit]()
	if err := CheckSymbol(bits, bit('1')); err.Error() != "there is no '1' specified in alphabet" {
		t.Errorf("expected Stringer symbol printed by String, got %q", err.Error())
	}
}

func TestValidationError_Is(t *testing.T) {
	var err error = UnknownSymbolError('4')

	if !errors.Is(err, ErrUnknownSymbol) {
		t.Error("expected error to match ErrUnknownSymbol")
	}
	if errors.Is(err, ErrUnknownState) {
		t.Error("expected error not to match ErrUnknownState")
	}

	wrapped := errors.Wrap(err, "processing input")
	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("expected wrapped error to unwrap to *ValidationError")
	}
	if verr.Value() != '4' {
		t.Errorf("expected offending value '4', got %v", verr.Value())
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(newBinaryConfig()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingInitial(t *testing.T) {
	c := newBinaryConfig()
	c.HasInitial = false

	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for missing initial state")
	}
	if !err.HasCode(ErrCodeMissingInitial) {
		t.Errorf("expected MISSING_INITIAL error, got: %v", err)
	}
}

func TestValidate_InitialNotFound(t *testing.T) {
	c := newBinaryConfig()
	c.Initial = "nowhere"

	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for unknown initial state")
	}
	if !err.HasCode(ErrCodeUnknownState) {
		t.Errorf("expected UNKNOWN_STATE error, got: %v", err)
	}
	want := "initial state 'nowhere' not found in states or final states"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestValidate_InitialInFinalStatesOnly(t *testing.T) {
	c := newBinaryConfig()
	c.Final.Add("S9")
	c.Initial = "S9"

	if err := Validate(c); err != nil {
		t.Errorf("expected final-only initial state to be accepted, got: %v", err)
	}
}

func TestValidate_BulkTransitionsCollectsAllIssues(t *testing.T) {
	c := newBinaryConfig()
	c.Transitions.Put("S7", '1', "S1")
	c.Transitions.Put("S0", 'z', "S1")
	c.Transitions.Put("S1", '0', "S0")

	err := Validate(c)
	if err == nil {
		t.Fatal("expected errors for inconsistent table")
	}
	if len(err.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(err.Issues), err)
	}
	for _, code := range []string{ErrCodeUnknownState, ErrCodeUnknownSymbol, ErrCodeUnknownFinalState} {
		if !err.HasCode(code) {
			t.Errorf("expected %s issue, got: %v", code, err)
		}
	}
	if !strings.Contains(err.Error(), "validation failed with 3 issues") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	for _, issue := range err.Issues {
		if len(issue.Path) != 3 || issue.Path[0] != "transitions" {
			t.Errorf("expected transition path, got %v", issue.Path)
		}
	}
}

func TestValidationIssue_String(t *testing.T) {
	issue := ValidationIssue{Code: "X", Message: "bad", Path: []string{"transitions", "S0", "1"}}
	if issue.String() != "[X] bad (at transitions.S0.1)" {
		t.Errorf("unexpected string: %s", issue.String())
	}
	issue.Path = nil
	if issue.String() != "[X] bad" {
		t.Errorf("unexpected string: %s", issue.String())
	}
}
