// Package parser reads the line-oriented text format for automaton definitions.
//
// Example:
//
//	# value modulo three over binary strings
//	states: S0 S1 S2
//	alphabet: 0 1
//	initial: S0
//	final: S0 S1 S2
//	S0:0->S0, S0:1->S1
//	S1:0->S2
//
// Lists are separated by whitespace or commas. Transition lines use
// FROM:SYMBOL->TO and may hold several comma-separated transitions.
package parser

import (
	"bufio"
	"strings"

	"github.com/cockroachdb/errors"
)

// TransitionSchema represents a parsed transition definition.
type TransitionSchema struct {
	From   string
	Symbol string
	To     string
}

// DefinitionSchema represents a complete parsed automaton definition.
type DefinitionSchema struct {
	States      []string
	Alphabet    []string
	Initial     string
	HasInitial  bool
	Final       []string
	Transitions []TransitionSchema
}

// Section keywords.
const (
	KeywordStates   = "states"
	KeywordAlphabet = "alphabet"
	KeywordInitial  = "initial"
	KeywordFinal    = "final"
)

// ParseDefinition parses a whole definition.
func ParseDefinition(text string) (*DefinitionSchema, error) {
	schema := &DefinitionSchema{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		if err := parseLine(line, schema); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read definition")
	}

	return schema, nil
}

// parseLine parses a section line or a transition line.
func parseLine(line string, schema *DefinitionSchema) error {
	if !strings.Contains(line, "->") {
		keyword, rest, ok := strings.Cut(line, ":")
		if !ok {
			return errors.Newf("expected 'keyword:' or a transition, got %q", line)
		}
		values := splitList(rest)

		switch strings.ToLower(strings.TrimSpace(keyword)) {
		case KeywordStates:
			schema.States = append(schema.States, values...)
		case KeywordAlphabet:
			schema.Alphabet = append(schema.Alphabet, values...)
		case KeywordFinal:
			schema.Final = append(schema.Final, values...)
		case KeywordInitial:
			if len(values) != 1 {
				return errors.Newf("initial expects exactly one state, got %d", len(values))
			}
			schema.Initial = values[0]
			schema.HasInitial = true
		default:
			return errors.Newf("unknown keyword %q", strings.TrimSpace(keyword))
		}
		return nil
	}

	transitions, err := ParseTransitions(line)
	if err != nil {
		return err
	}
	schema.Transitions = append(schema.Transitions, transitions...)
	return nil
}

// ParseTransitions parses a comma-separated list of transitions.
// Format: "S0:0->S0, S0:1->S1"
func ParseTransitions(s string) ([]TransitionSchema, error) {
	var transitions []TransitionSchema

	parts := splitTrim(s, ",")
	for i, part := range parts {
		trans, err := ParseTransition(part)
		if err != nil {
			return nil, errors.Wrapf(err, "transition %d", i+1)
		}
		transitions = append(transitions, trans)
	}

	return transitions, nil
}

// ParseTransition parses a single transition.
// Format: "FROM:SYMBOL->TO"
func ParseTransition(s string) (TransitionSchema, error) {
	trans := TransitionSchema{}

	arrowIdx := strings.LastIndex(s, "->")
	if arrowIdx == -1 {
		return trans, errors.Newf("missing '->' in transition: %s", s)
	}

	source := s[:arrowIdx]
	trans.To = strings.TrimSpace(s[arrowIdx+2:])

	from, symbol, ok := strings.Cut(source, ":")
	if !ok {
		return trans, errors.Newf("missing ':' between state and symbol in transition: %s", s)
	}
	trans.From = strings.TrimSpace(from)
	trans.Symbol = strings.TrimSpace(symbol)

	if trans.From == "" {
		return trans, errors.Newf("empty source state in transition: %s", s)
	}
	if trans.Symbol == "" {
		return trans, errors.Newf("empty symbol in transition: %s", s)
	}
	if trans.To == "" {
		return trans, errors.Newf("empty target in transition: %s", s)
	}

	return trans, nil
}

// stripComment removes a trailing '#' comment and surrounding whitespace.
func stripComment(line string) string {
	if idx := strings.Index(line, "#"); idx != -1 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// splitList splits on commas and whitespace.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// splitTrim splits a string and trims whitespace from each part.
func splitTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
