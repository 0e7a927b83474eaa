package simparser

import "strings"

// Registry maps simulator identifiers to their parsers. New output formats
// can be supported by registering a parser without touching the runner.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a new parser registry with all built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	xsimParser := &XsimParser{}
	r.parsers["xsim"] = xsimParser
	r.parsers["vivado"] = xsimParser

	return r
}

// GetParser returns a parser for the given simulator identifier.
// Returns nil if no parser is found.
func (r *Registry) GetParser(simulator string) Parser {
	return r.parsers[strings.ToLower(simulator)]
}

// Default returns the parser used when no simulator is named explicitly.
func (r *Registry) Default() Parser {
	return r.parsers["xsim"]
}

// RegisterParser adds a custom parser for a simulator.
func (r *Registry) RegisterParser(simulator string, parser Parser) {
	r.parsers[strings.ToLower(simulator)] = parser
}
