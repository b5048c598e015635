package dfakit

import "github.com/felixgeelhaar/dfakit/internal/ir"

// TransitionLogger is called each time a transition fires
type TransitionLogger[S, A comparable] func(from S, symbol A, to S)

// Interpreter runs an automaton one symbol at a time.
// It reads the automaton's collections live, so mutations made between
// steps are observed by the next Send.
type Interpreter[S, A comparable] struct {
	machine *ir.AutomatonConfig[S, A]
	current S
	defined bool
	steps   int
	started bool
	logger  TransitionLogger[S, A]
}

// NewInterpreter creates a new interpreter for the given automaton
func NewInterpreter[S, A comparable](a *Automaton[S, A]) *Interpreter[S, A] {
	return &Interpreter[S, A]{
		machine: a.config,
		started: false,
	}
}

// WithTransitionLogger registers a hook invoked when a transition fires
func (i *Interpreter[S, A]) WithTransitionLogger(logger TransitionLogger[S, A]) *Interpreter[S, A] {
	i.logger = logger
	return i
}

// Start enters the initial state. It does nothing if already started.
func (i *Interpreter[S, A]) Start() {
	if i.started {
		return
	}
	i.started = true
	i.current, i.defined = i.machine.Initial, i.machine.HasInitial
}

// Reset returns to the initial state and clears the step counter
func (i *Interpreter[S, A]) Reset() {
	i.started = false
	i.steps = 0
	i.Start()
}

// State returns the current state and whether it is defined
func (i *Interpreter[S, A]) State() (S, bool) {
	return i.current, i.defined
}

// Steps returns the number of transitions that fired since Start
func (i *Interpreter[S, A]) Steps() int {
	return i.steps
}

// Done returns true if the current state is a final state
func (i *Interpreter[S, A]) Done() bool {
	if !i.started || !i.defined {
		return false
	}
	return i.machine.IsFinal(i.current)
}

// Send consumes one symbol. A symbol outside the alphabet is an error;
// a symbol with no usable transition is consumed without effect.
func (i *Interpreter[S, A]) Send(symbol A) error {
	if !i.started {
		i.Start()
	}
	if err := ir.CheckSymbol(i.machine, symbol); err != nil {
		return err
	}

	next, found := i.machine.Step(i.current, i.defined, symbol)
	if !found {
		return nil
	}

	if i.logger != nil {
		i.logger(i.current, symbol, next)
	}
	i.current, i.defined = next, true
	i.steps++
	return nil
}

// SendAll consumes every symbol in order, stopping at the first error.
// It starts the interpreter even when input is empty.
func (i *Interpreter[S, A]) SendAll(input []A) error {
	if !i.started {
		i.Start()
	}
	for _, symbol := range input {
		if err := i.Send(symbol); err != nil {
			return err
		}
	}
	return nil
}
