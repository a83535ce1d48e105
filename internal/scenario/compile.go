package scenario

import (
	"fmt"

	"regexbench/internal/corpus"
	rerrors "regexbench/internal/errors"
	"regexbench/internal/matcher"
)

// Compiled is a scenario ready to be timed: its pattern compiled and its
// corpus resolved.
type Compiled struct {
	Definition
	Matcher matcher.Matcher
	Text    string
}

// Compile validates defs and compiles every pattern with engine. Patterns
// shared between scenarios are compiled once. Nothing is measured here, so a
// failure leaves no partial results behind.
func Compile(engine matcher.Engine, defs []Definition, catalog corpus.Catalog) ([]Compiled, error) {
	if err := Validate(defs, catalog); err != nil {
		return nil, rerrors.Wrap(rerrors.StageCompile, fmt.Errorf("invalid scenario table: %w", err))
	}

	cache := make(map[string]matcher.Matcher)
	out := make([]Compiled, 0, len(defs))
	for _, d := range defs {
		m, ok := cache[d.Pattern]
		if !ok {
			var err error
			m, err = engine.Compile(d.Pattern)
			if err != nil {
				return nil, rerrors.Wrap(rerrors.StageCompile, fmt.Errorf("scenario %s: %w", d.Name, err))
			}
			cache[d.Pattern] = m
		}
		text, _ := catalog.Get(d.Corpus)
		out = append(out, Compiled{Definition: d, Matcher: m, Text: text})
	}
	return out, nil
}
