// Package matcher adapts regex engines to the capability the harness times:
// compile once, then test, find the leftmost match, or enumerate all
// non-overlapping leftmost matches.
package matcher

import (
	"fmt"
	"sort"
)

// Span is a half-open match range.
type Span struct {
	Start int
	End   int
}

// Matcher is a compiled pattern. Implementations must be safe to call
// repeatedly with the same input and must not retain state between calls.
type Matcher interface {
	IsMatch(text string) (bool, error)
	// Find returns the leftmost match; ok is false when there is none.
	Find(text string) (span Span, ok bool, err error)
	// FindAll returns every non-overlapping leftmost match in order.
	FindAll(text string) ([]Span, error)
}

// Engine compiles patterns into Matchers.
type Engine interface {
	// Name identifies the engine in exported results.
	Name() string
	Compile(pattern string) (Matcher, error)
}

// CompileError reports a pattern the engine rejected.
type CompileError struct {
	Engine  string
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: invalid pattern %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

var engines = map[string]Engine{
	"go":      stdEngine{},
	"regexp2": regexp2Engine{},
}

// Lookup returns the named engine.
func Lookup(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (available: %v)", name, Names())
	}
	return e, nil
}

// Names lists the registered engines.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
