// Package export converts automata to and from a JSON definition format
// and provides a small CLI for running definitions.
package export

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/felixgeelhaar/dfakit"
)

// Definition is the JSON form of an automaton. Lists are sorted so the
// output is stable.
type Definition[S, A cmp.Ordered] struct {
	ID          string                `json:"id,omitempty"`
	States      []S                   `json:"states"`
	Alphabet    []A                   `json:"alphabet"`
	Initial     *S                    `json:"initial,omitempty"` // nil when no initial state is set
	Final       []S                   `json:"final"`
	Transitions []TransitionDef[S, A] `json:"transitions"`
}

// TransitionDef is a single transition in JSON form
type TransitionDef[S, A cmp.Ordered] struct {
	From   S `json:"from"`
	Symbol A `json:"symbol"`
	To     S `json:"to"`
}

// DefinitionExporter converts an Automaton to a Definition
type DefinitionExporter[S, A cmp.Ordered] struct {
	id        string
	automaton *dfakit.Automaton[S, A]
}

// NewDefinitionExporter creates a new exporter for the given automaton
func NewDefinitionExporter[S, A cmp.Ordered](id string, a *dfakit.Automaton[S, A]) *DefinitionExporter[S, A] {
	return &DefinitionExporter[S, A]{id: id, automaton: a}
}

// Export converts the automaton to a Definition
func (e *DefinitionExporter[S, A]) Export() (*Definition[S, A], error) {
	if e.automaton == nil {
		return nil, errors.AssertionFailedf("exporter %q has no automaton", e.id)
	}

	def := &Definition[S, A]{
		ID:          e.id,
		States:      sortedElements(e.automaton.States()),
		Alphabet:    sortedElements(e.automaton.Alphabet()),
		Final:       sortedElements(e.automaton.FinalStates()),
		Transitions: make([]TransitionDef[S, A], 0, e.automaton.Transitions().Len()),
	}
	if initial, ok := e.automaton.InitialState(); ok {
		def.Initial = &initial
	}

	for _, t := range e.automaton.TransitionList() {
		def.Transitions = append(def.Transitions, TransitionDef[S, A]{From: t.From, Symbol: t.Symbol, To: t.To})
	}
	slices.SortFunc(def.Transitions, func(a, b TransitionDef[S, A]) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})

	return def, nil
}

// ExportDefinition implements MachineExporter
func (e *DefinitionExporter[S, A]) ExportDefinition() (any, error) {
	return e.Export()
}

// ExportJSON returns the definition as a JSON string
func (e *DefinitionExporter[S, A]) ExportJSON() (string, error) {
	def, err := e.Export()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(def)
	if err != nil {
		return "", errors.Wrap(err, "marshal definition")
	}

	return string(data), nil
}

// ExportJSONIndent returns the definition as a formatted JSON string
func (e *DefinitionExporter[S, A]) ExportJSONIndent(prefix, indent string) (string, error) {
	def, err := e.Export()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(def, prefix, indent)
	if err != nil {
		return "", errors.Wrap(err, "marshal definition")
	}

	return string(data), nil
}

// Decode reads a JSON definition
func Decode[S, A cmp.Ordered](r io.Reader) (*Definition[S, A], error) {
	var def Definition[S, A]
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, errors.Wrap(err, "decode definition")
	}
	return &def, nil
}

// Load builds an automaton from a definition. Transitions are validated
// the same way AddTransition validates them.
func Load[S, A cmp.Ordered](def *Definition[S, A]) (*dfakit.Automaton[S, A], error) {
	b := dfakit.NewBuilder[S, A]().
		States(def.States...).
		Symbols(def.Alphabet...).
		Final(def.Final...)
	if def.Initial != nil {
		b.Initial(*def.Initial)
	}
	for _, t := range def.Transitions {
		b.Transition(t.From, t.Symbol, t.To)
	}

	a, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "load definition %q", def.ID)
	}
	return a, nil
}

func sortedElements[T cmp.Ordered](s dfakit.Set[T]) []T {
	elems := s.Elements()
	slices.Sort(elems)
	return elems
}
