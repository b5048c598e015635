package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ValidationIssue represents a single validation problem.
// Message formats Value with %v: a rune symbol prints as its code point
// ('1' as 49) unless the symbol type implements fmt.Stringer.
type ValidationIssue struct {
	Code    string   // e.g., "UNKNOWN_STATE", "UNKNOWN_SYMBOL"
	Message string   // Human-readable description
	Value   any      // The offending state or symbol
	Set     string   // Name of the collection the value was checked against
	Path    []string // e.g., ["transitions", "S0", "1"]
}

// String returns a human-readable representation of the issue
func (v ValidationIssue) String() string {
	if len(v.Path) > 0 {
		return fmt.Sprintf("[%s] %s (at %s)", v.Code, v.Message, strings.Join(v.Path, "."))
	}
	return fmt.Sprintf("[%s] %s", v.Code, v.Message)
}

// ValidationError contains all validation issues found during validation.
// Errors returned by a single mutation carry exactly one issue.
type ValidationError struct {
	Issues []ValidationIssue
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0].Message
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("validation failed with %d issues:\n", len(e.Issues)))
	for i, issue := range e.Issues {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, issue.String()))
	}
	return b.String()
}

// Is reports whether any issue matches one of the sentinel errors
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrUnknownState:
		return e.HasCode(ErrCodeUnknownState)
	case ErrUnknownSymbol:
		return e.HasCode(ErrCodeUnknownSymbol)
	case ErrUnknownFinalState:
		return e.HasCode(ErrCodeUnknownFinalState)
	}
	return false
}

// AddIssue adds a validation issue to the error
func (e *ValidationError) AddIssue(code, message string, path ...string) {
	e.Issues = append(e.Issues, ValidationIssue{
		Code:    code,
		Message: message,
		Path:    path,
	})
}

// HasIssues returns true if there are any validation issues
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// HasCode returns true if any issue carries the given code
func (e *ValidationError) HasCode(code string) bool {
	for _, issue := range e.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// Value returns the offending value of the first issue
func (e *ValidationError) Value() any {
	if len(e.Issues) == 0 {
		return nil
	}
	return e.Issues[0].Value
}

// Validation error codes
const (
	ErrCodeUnknownState      = "UNKNOWN_STATE"
	ErrCodeUnknownSymbol     = "UNKNOWN_SYMBOL"
	ErrCodeUnknownFinalState = "UNKNOWN_FINAL_STATE"
	ErrCodeMissingInitial    = "MISSING_INITIAL"
)

// Names of the checked collections as they appear in messages
const (
	SetStates      = "states"
	SetAlphabet    = "alphabet"
	SetFinalStates = "final states"
)

// Sentinels matched by ValidationError.Is
var (
	ErrUnknownState      = errors.New("unknown state")
	ErrUnknownSymbol     = errors.New("unknown symbol")
	ErrUnknownFinalState = errors.New("unknown final state")
)

func newMembershipError(code string, value any, set string) *ValidationError {
	return &ValidationError{Issues: []ValidationIssue{{
		Code:    code,
		Message: fmt.Sprintf("there is no '%v' specified in %s", value, set),
		Value:   value,
		Set:     set,
	}}}
}

// UnknownStateError reports a source state missing from the states
func UnknownStateError(value any) *ValidationError {
	return newMembershipError(ErrCodeUnknownState, value, SetStates)
}

// UnknownSymbolError reports a symbol missing from the alphabet
func UnknownSymbolError(value any) *ValidationError {
	return newMembershipError(ErrCodeUnknownSymbol, value, SetAlphabet)
}

// UnknownFinalStateError reports a destination missing from the final states
func UnknownFinalStateError(value any) *ValidationError {
	return newMembershipError(ErrCodeUnknownFinalState, value, SetFinalStates)
}

// CheckTransition validates a transition in fixed order: source state,
// symbol, destination. Only the first failing check is reported.
func CheckTransition[S, A comparable](c *AutomatonConfig[S, A], from S, symbol A, to S) *ValidationError {
	if !c.States.Contains(from) {
		return UnknownStateError(from)
	}
	if !c.Alphabet.Contains(symbol) {
		return UnknownSymbolError(symbol)
	}
	if !c.Final.Contains(to) {
		return UnknownFinalStateError(to)
	}
	return nil
}

// CheckSymbol validates a single input symbol against the alphabet
func CheckSymbol[S, A comparable](c *AutomatonConfig[S, A], symbol A) *ValidationError {
	if !c.Alphabet.Contains(symbol) {
		return UnknownSymbolError(symbol)
	}
	return nil
}

// Validate reports every inconsistency in a configuration, including
// transition tables that were supplied in bulk and never checked.
func Validate[S, A comparable](c *AutomatonConfig[S, A]) *ValidationError {
	errs := &ValidationError{}

	if !c.HasInitial {
		errs.AddIssue(ErrCodeMissingInitial, "initial state is required")
	} else if !c.IsKnownState(c.Initial) {
		errs.Issues = append(errs.Issues, ValidationIssue{
			Code:    ErrCodeUnknownState,
			Message: fmt.Sprintf("initial state '%v' not found in states or final states", c.Initial),
			Value:   c.Initial,
			Set:     SetStates,
			Path:    []string{"initial"},
		})
	}

	for from, row := range c.Transitions {
		for symbol, to := range row {
			path := []string{"transitions", fmt.Sprint(from), fmt.Sprint(symbol)}
			issue := CheckTransition(c, from, symbol, to)
			if issue != nil {
				found := issue.Issues[0]
				found.Path = path
				errs.Issues = append(errs.Issues, found)
			}
		}
	}

	// map iteration order is random; keep reports stable
	slices.SortFunc(errs.Issues, func(a, b ValidationIssue) int {
		return strings.Compare(a.String(), b.String())
	})

	if errs.HasIssues() {
		return errs
	}
	return nil
}
