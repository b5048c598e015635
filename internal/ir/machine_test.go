package ir

import "testing"

func newBinaryConfig() *AutomatonConfig[string, rune] {
	c := NewAutomatonConfig[string, rune]()
	c.States = NewSet("S0", "S1")
	c.Alphabet = NewSet('0', '1')
	c.Final = NewSet("S1")
	c.Initial = "S0"
	c.HasInitial = true
	c.Transitions.Put("S0", '1', "S1")
	return c
}

func TestNewAutomatonConfig_Empty(t *testing.T) {
	c := NewAutomatonConfig[string, rune]()

	if c.States.Len() != 0 || c.Alphabet.Len() != 0 || c.Final.Len() != 0 {
		t.Error("expected empty sets")
	}
	if c.HasInitial {
		t.Error("expected no initial state")
	}
	if c.Transitions.Len() != 0 {
		t.Error("expected empty transition table")
	}
}

func TestStep_Found(t *testing.T) {
	c := newBinaryConfig()

	next, found := c.Step("S0", true, '1')
	if !found || next != "S1" {
		t.Errorf("expected S1, got %q (found=%v)", next, found)
	}
}

func TestStep_NoRow(t *testing.T) {
	c := newBinaryConfig()

	if _, found := c.Step("S1", true, '1'); found {
		t.Error("expected no transition from a state without a row")
	}
}

func TestStep_NoSymbolInRow(t *testing.T) {
	c := newBinaryConfig()

	if _, found := c.Step("S0", true, '0'); found {
		t.Error("expected no transition for a symbol missing from the row")
	}
}

func TestStep_UndefinedCurrent(t *testing.T) {
	c := newBinaryConfig()
	// the zero value has a row; an undefined current state must still not match it
	c.Transitions.Put("", '1', "S1")

	if _, found := c.Step("", false, '1'); found {
		t.Error("expected no transition from an undefined state")
	}
}

func TestStep_DestinationOutsideKnownStates(t *testing.T) {
	c := newBinaryConfig()
	c.Transitions.Put("S0", '0', "S9")

	if _, found := c.Step("S0", true, '0'); found {
		t.Error("expected transition to an undeclared state to be ignored")
	}
}

func TestIsKnownState(t *testing.T) {
	c := newBinaryConfig()
	c.Final.Add("S2")

	for _, s := range []string{"S0", "S1", "S2"} {
		if !c.IsKnownState(s) {
			t.Errorf("expected %q to be known", s)
		}
	}
	if c.IsKnownState("S3") {
		t.Error("expected S3 to be unknown")
	}
}
