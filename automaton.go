// Package dfakit is a generic deterministic finite automaton engine.
//
// An Automaton holds a set of states, an alphabet, an optional initial
// state, a set of final states and a sparse transition table. Transitions
// added through AddTransition are validated; tables supplied in bulk are
// not, and ProcessInput ignores any transition whose destination is not a
// declared state.
//
// Collections passed to New or to the bulk setters are shared with the
// caller, not copied. Use Clone for an independent automaton.
package dfakit

import "github.com/felixgeelhaar/dfakit/internal/ir"

// Automaton is a DFA over states of type S and symbols of type A.
// It does no locking; synchronize mutation against concurrent runs.
type Automaton[S, A comparable] struct {
	config *ir.AutomatonConfig[S, A]
}

// Option configures an Automaton at construction
type Option[S, A comparable] func(c *ir.AutomatonConfig[S, A])

// WithStates uses states as the automaton's state set (shared, not copied)
func WithStates[S, A comparable](states Set[S]) Option[S, A] {
	return func(c *ir.AutomatonConfig[S, A]) {
		if states != nil {
			c.States = states
		}
	}
}

// WithAlphabet uses alphabet as the automaton's symbol set (shared, not copied)
func WithAlphabet[S, A comparable](alphabet Set[A]) Option[S, A] {
	return func(c *ir.AutomatonConfig[S, A]) {
		if alphabet != nil {
			c.Alphabet = alphabet
		}
	}
}

// WithInitialState sets the state runs begin in
func WithInitialState[S, A comparable](initial S) Option[S, A] {
	return func(c *ir.AutomatonConfig[S, A]) {
		c.Initial = initial
		c.HasInitial = true
	}
}

// WithFinalStates uses final as the automaton's final state set (shared, not copied)
func WithFinalStates[S, A comparable](final Set[S]) Option[S, A] {
	return func(c *ir.AutomatonConfig[S, A]) {
		if final != nil {
			c.Final = final
		}
	}
}

// WithTransitions uses table as the transition table (shared, not copied).
// The table is not validated.
func WithTransitions[S, A comparable](table TransitionMap[S, A]) Option[S, A] {
	return func(c *ir.AutomatonConfig[S, A]) {
		if table != nil {
			c.Transitions = table
		}
	}
}

// New creates an Automaton. Omitted options leave empty collections and
// no initial state. No cross-validation is performed.
func New[S, A comparable](opts ...Option[S, A]) *Automaton[S, A] {
	config := ir.NewAutomatonConfig[S, A]()
	for _, opt := range opts {
		opt(config)
	}
	return &Automaton[S, A]{config: config}
}

// States returns the state set
func (a *Automaton[S, A]) States() Set[S] {
	return a.config.States
}

// SetStates replaces the state set
func (a *Automaton[S, A]) SetStates(states Set[S]) {
	a.config.States = orEmpty(states)
}

// Alphabet returns the symbol set
func (a *Automaton[S, A]) Alphabet() Set[A] {
	return a.config.Alphabet
}

// SetAlphabet replaces the symbol set
func (a *Automaton[S, A]) SetAlphabet(alphabet Set[A]) {
	a.config.Alphabet = orEmpty(alphabet)
}

// InitialState returns the initial state and whether one is set
func (a *Automaton[S, A]) InitialState() (S, bool) {
	return a.config.Initial, a.config.HasInitial
}

// SetInitialState replaces the initial state. The state is not validated.
func (a *Automaton[S, A]) SetInitialState(state S) {
	a.config.Initial = state
	a.config.HasInitial = true
}

// ClearInitialState removes the initial state
func (a *Automaton[S, A]) ClearInitialState() {
	var zero S
	a.config.Initial = zero
	a.config.HasInitial = false
}

// FinalStates returns the final state set
func (a *Automaton[S, A]) FinalStates() Set[S] {
	return a.config.Final
}

// SetFinalStates replaces the final state set
func (a *Automaton[S, A]) SetFinalStates(final Set[S]) {
	a.config.Final = orEmpty(final)
}

// Transitions returns the transition table
func (a *Automaton[S, A]) Transitions() TransitionMap[S, A] {
	return a.config.Transitions
}

// SetTransitions replaces the transition table. The table is not validated.
func (a *Automaton[S, A]) SetTransitions(table TransitionMap[S, A]) {
	if table == nil {
		table = ir.NewTransitionMap[S, A]()
	}
	a.config.Transitions = table
}

// AddState inserts a state
func (a *Automaton[S, A]) AddState(state S) {
	a.config.States.Add(state)
}

// AddSymbol inserts a symbol into the alphabet
func (a *Automaton[S, A]) AddSymbol(symbol A) {
	a.config.Alphabet.Add(symbol)
}

// AddFinalState inserts a final state
func (a *Automaton[S, A]) AddFinalState(state S) {
	a.config.Final.Add(state)
}

// AddTransition stores from --symbol--> to, replacing any previous
// destination for (from, symbol). from must be a state, symbol must be in
// the alphabet and to must be a final state, checked in that order; the
// table is left untouched on failure.
func (a *Automaton[S, A]) AddTransition(from S, symbol A, to S) error {
	if err := ir.CheckTransition(a.config, from, symbol, to); err != nil {
		return err
	}
	a.config.Transitions.Put(from, symbol, to)
	return nil
}

// ProcessInput runs the automaton over input and returns the state it
// ends in. ok is false when no initial state was set and no transition
// fired. Symbols outside the alphabet fail the run; undefined transitions
// leave the current state unchanged.
func (a *Automaton[S, A]) ProcessInput(input []A) (state S, ok bool, err error) {
	state, ok = a.config.Initial, a.config.HasInitial
	for _, symbol := range input {
		if verr := ir.CheckSymbol(a.config, symbol); verr != nil {
			var zero S
			return zero, false, verr
		}
		if next, found := a.config.Step(state, ok, symbol); found {
			state, ok = next, true
		}
	}
	return state, ok, nil
}

// Accepts reports whether a run over input ends in a final state
func (a *Automaton[S, A]) Accepts(input []A) (bool, error) {
	state, ok, err := a.ProcessInput(input)
	if err != nil {
		return false, err
	}
	return ok && a.config.IsFinal(state), nil
}

// Validate reports every inconsistency in the current configuration,
// including transitions supplied in bulk. It returns nil when consistent.
func (a *Automaton[S, A]) Validate() error {
	if err := ir.Validate(a.config); err != nil {
		return err
	}
	return nil
}

// TransitionList returns the transition table as a flat list in no particular order
func (a *Automaton[S, A]) TransitionList() []Transition[S, A] {
	list := make([]Transition[S, A], 0, a.config.Transitions.Len())
	for from, row := range a.config.Transitions {
		for symbol, to := range row {
			list = append(list, Transition[S, A]{From: from, Symbol: symbol, To: to})
		}
	}
	return list
}

// Clone returns an automaton with independent copies of every collection
func (a *Automaton[S, A]) Clone() *Automaton[S, A] {
	return &Automaton[S, A]{config: &ir.AutomatonConfig[S, A]{
		States:      a.config.States.Clone(),
		Alphabet:    a.config.Alphabet.Clone(),
		Initial:     a.config.Initial,
		HasInitial:  a.config.HasInitial,
		Final:       a.config.Final.Clone(),
		Transitions: a.config.Transitions.Clone(),
	}}
}

func orEmpty[T comparable](s Set[T]) Set[T] {
	if s == nil {
		return ir.NewSet[T]()
	}
	return s
}
