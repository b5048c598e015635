package dfakit

import "github.com/felixgeelhaar/dfakit/internal/ir"

// Re-export types from internal/ir for public API
type (
	// Set is an unordered collection of distinct states or symbols
	Set[T comparable] = ir.Set[T]
	// TransitionMap is the sparse state -> symbol -> state table
	TransitionMap[S, A comparable] = ir.TransitionMap[S, A]
	// Transition is a single entry of the transition table
	Transition[S, A comparable] = ir.Transition[S, A]
	// ValidationError reports an unknown state, symbol or final state
	ValidationError = ir.ValidationError
	// ValidationIssue is a single problem inside a ValidationError
	ValidationIssue = ir.ValidationIssue
)

// Re-export constants
const (
	ErrCodeUnknownState      = ir.ErrCodeUnknownState
	ErrCodeUnknownSymbol     = ir.ErrCodeUnknownSymbol
	ErrCodeUnknownFinalState = ir.ErrCodeUnknownFinalState
	ErrCodeMissingInitial    = ir.ErrCodeMissingInitial
)

// Re-export sentinel errors, matched with errors.Is
var (
	ErrUnknownState      = ir.ErrUnknownState
	ErrUnknownSymbol     = ir.ErrUnknownSymbol
	ErrUnknownFinalState = ir.ErrUnknownFinalState
)

// NewSet creates a Set containing the given elements
func NewSet[T comparable](elems ...T) Set[T] {
	return ir.NewSet(elems...)
}

// NewTransitionMap creates an empty transition table
func NewTransitionMap[S, A comparable]() TransitionMap[S, A] {
	return ir.NewTransitionMap[S, A]()
}
