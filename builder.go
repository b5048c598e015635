package dfakit

// Builder provides a fluent API for constructing automata.
// Sets are populated first; transitions are applied through
// AddTransition at Build time so they are validated in order.
type Builder[S, A comparable] struct {
	states      []S
	symbols     []A
	final       []S
	initial     S
	hasInitial  bool
	transitions []Transition[S, A]
}

// NewBuilder creates an empty Builder
func NewBuilder[S, A comparable]() *Builder[S, A] {
	return &Builder[S, A]{}
}

// States adds states
func (b *Builder[S, A]) States(states ...S) *Builder[S, A] {
	b.states = append(b.states, states...)
	return b
}

// Symbols adds alphabet symbols
func (b *Builder[S, A]) Symbols(symbols ...A) *Builder[S, A] {
	b.symbols = append(b.symbols, symbols...)
	return b
}

// Initial sets the initial state
func (b *Builder[S, A]) Initial(state S) *Builder[S, A] {
	b.initial = state
	b.hasInitial = true
	return b
}

// Final adds final states
func (b *Builder[S, A]) Final(states ...S) *Builder[S, A] {
	b.final = append(b.final, states...)
	return b
}

// Transition adds from --symbol--> to
func (b *Builder[S, A]) Transition(from S, symbol A, to S) *Builder[S, A] {
	b.transitions = append(b.transitions, Transition[S, A]{From: from, Symbol: symbol, To: to})
	return b
}

// Build constructs the automaton, returning the first transition that
// fails validation
func (b *Builder[S, A]) Build() (*Automaton[S, A], error) {
	a := New[S, A]()
	for _, s := range b.states {
		a.AddState(s)
	}
	for _, sym := range b.symbols {
		a.AddSymbol(sym)
	}
	for _, s := range b.final {
		a.AddFinalState(s)
	}
	if b.hasInitial {
		a.SetInitialState(b.initial)
	}

	for _, t := range b.transitions {
		if err := a.AddTransition(t.From, t.Symbol, t.To); err != nil {
			return nil, err
		}
	}

	return a, nil
}
