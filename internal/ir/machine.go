package ir

// AutomatonConfig is the internal representation of a DFA five-tuple.
// Collections are held by reference; whoever supplies them keeps sharing them.
type AutomatonConfig[S, A comparable] struct {
	States      Set[S]
	Alphabet    Set[A]
	Initial     S
	HasInitial  bool // Initial is meaningful only when set
	Final       Set[S]
	Transitions TransitionMap[S, A]
}

// NewAutomatonConfig creates an AutomatonConfig with empty collections and no initial state
func NewAutomatonConfig[S, A comparable]() *AutomatonConfig[S, A] {
	return &AutomatonConfig[S, A]{
		States:      NewSet[S](),
		Alphabet:    NewSet[A](),
		HasInitial:  false,
		Final:       NewSet[S](),
		Transitions: NewTransitionMap[S, A](),
	}
}

// IsKnownState reports whether s belongs to the states or the final states
func (c *AutomatonConfig[S, A]) IsKnownState(s S) bool {
	return c.States.Contains(s) || c.Final.Contains(s)
}

// IsFinal reports whether s is a final state
func (c *AutomatonConfig[S, A]) IsFinal(s S) bool {
	return c.Final.Contains(s)
}

// Step resolves the next state for symbol from current.
// found is false when there is no current state, no row for it, no entry
// for the symbol, or the destination is neither a state nor a final state.
func (c *AutomatonConfig[S, A]) Step(current S, defined bool, symbol A) (next S, found bool) {
	if !defined {
		return next, false
	}
	next, ok := c.Transitions.Lookup(current, symbol)
	if !ok || !c.IsKnownState(next) {
		var zero S
		return zero, false
	}
	return next, true
}
