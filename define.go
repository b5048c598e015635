package dfakit

import (
	"github.com/cockroachdb/errors"

	"github.com/felixgeelhaar/dfakit/internal/parser"
)

// Define builds a string-typed automaton from the text definition format.
// Sets are populated before transitions, which go through AddTransition.
//
// Example:
//
//	a, err := dfakit.Define(`
//	    states: S0 S1
//	    alphabet: 0 1
//	    initial: S0
//	    final: S0 S1
//	    S0:1->S1, S1:1->S0
//	`)
func Define(text string) (*Automaton[string, string], error) {
	schema, err := parser.ParseDefinition(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse definition")
	}
	return fromSchema(schema)
}

// fromSchema builds an automaton from a parsed definition
func fromSchema(schema *parser.DefinitionSchema) (*Automaton[string, string], error) {
	b := NewBuilder[string, string]().
		States(schema.States...).
		Symbols(schema.Alphabet...).
		Final(schema.Final...)
	if schema.HasInitial {
		b.Initial(schema.Initial)
	}
	for _, t := range schema.Transitions {
		b.Transition(t.From, t.Symbol, t.To)
	}

	a, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build definition")
	}
	return a, nil
}

// SplitRunes turns a string into one symbol per rune, for string-typed automata
func SplitRunes(input string) []string {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return symbols
}
