package scenario

import (
	"errors"
	"fmt"

	"regexbench/internal/corpus"
)

// Definition is one row of a scenario table.
type Definition struct {
	Name    string
	Kind    Kind
	Pattern string
	Corpus  string
	// Inner is how many matcher calls one timed pass performs.
	Inner uint64
}

const (
	patternAlnum = "[a-zA-Z0-9]+"
	patternLower = "[a-z]+"
)

// DefaultSuite returns the standard scenario table. Names, patterns, corpora
// and inner counts are shared with the other ports of the benchmark so their
// result files can be compared line by line.
func DefaultSuite() []Definition {
	return []Definition{
		// Literals.
		{Name: "literal_match_short", Kind: Search, Pattern: "hello", Corpus: corpus.LiteralShort, Inner: 100},
		{Name: "literal_match_long", Kind: Search, Pattern: "hello", Corpus: corpus.LiteralLong, Inner: 100},

		// Wildcards and quantifiers.
		{Name: "wildcard_match_any", Kind: IsMatch, Pattern: ".*", Corpus: corpus.Alpha1000, Inner: 50},
		{Name: "quantifier_zero_or_more", Kind: IsMatch, Pattern: "a*", Corpus: corpus.Alpha1000, Inner: 50},
		{Name: "quantifier_one_or_more", Kind: IsMatch, Pattern: "a+", Corpus: corpus.Alpha1000, Inner: 50},
		{Name: "quantifier_zero_or_one", Kind: IsMatch, Pattern: "a?", Corpus: corpus.Alpha1000, Inner: 50},

		// Character ranges.
		{Name: "range_lowercase", Kind: IsMatch, Pattern: patternLower, Corpus: corpus.Range1000, Inner: 50},
		{Name: "range_digits", Kind: IsMatch, Pattern: "[0-9]+", Corpus: corpus.Range1000, Inner: 50},
		{Name: "range_alphanumeric", Kind: IsMatch, Pattern: patternAlnum, Corpus: corpus.Range1000, Inner: 50},

		// Anchors.
		{Name: "anchor_start", Kind: IsMatch, Pattern: "^abc", Corpus: corpus.Alpha1000, Inner: 100},
		{Name: "anchor_end", Kind: IsMatch, Pattern: "xyz$", Corpus: corpus.Alpha1000, Inner: 100},

		// Alternation.
		{Name: "alternation_simple", Kind: Search, Pattern: "a|b|c", Corpus: corpus.Alpha1000, Inner: 50},
		{Name: "alternation_words", Kind: Search, Pattern: "abc|def|ghi", Corpus: corpus.Alpha1000, Inner: 50},

		// Groups.
		{Name: "group_quantified", Kind: Search, Pattern: "(abc)+", Corpus: corpus.Group1000, Inner: 50},
		{Name: "group_alternation", Kind: Search, Pattern: "(a|b)*", Corpus: corpus.Group1000, Inner: 50},

		// Global matching.
		{Name: "match_all_simple", Kind: FindAll, Pattern: "a", Corpus: corpus.Alpha1000, Inner: 10},
		{Name: "match_all_pattern", Kind: FindAll, Pattern: patternLower, Corpus: corpus.Alpha1000, Inner: 10},

		// Real-world extraction.
		{Name: "complex_email_extraction", Kind: FindAll, Pattern: `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`, Corpus: corpus.Emails, Inner: 2},
		{Name: "complex_number_extraction", Kind: FindAll, Pattern: `\d+\.?\d*`, Corpus: corpus.Numbers, Inner: 25},

		// Character classes over large mixed content.
		{Name: "simd_alphanumeric_large", Kind: IsMatch, Pattern: patternAlnum, Corpus: corpus.Mixed10000, Inner: 10},
		{Name: "simd_alphanumeric_xlarge", Kind: IsMatch, Pattern: patternAlnum, Corpus: corpus.Mixed50000, Inner: 10},
		{Name: "simd_negated_alphanumeric", Kind: IsMatch, Pattern: "[^a-zA-Z0-9]+", Corpus: corpus.Mixed10000, Inner: 10},
		{Name: "simd_multi_char_class", Kind: IsMatch, Pattern: "[a-z]+[0-9]+", Corpus: corpus.Mixed10000, Inner: 10},

		// Literal prefix and required literal optimisations.
		{Name: "literal_prefix_short", Kind: FindAll, Pattern: "hello.*world", Corpus: corpus.Short, Inner: 1},
		{Name: "literal_prefix_medium", Kind: FindAll, Pattern: "hello.*", Corpus: corpus.Medium, Inner: 1},
		{Name: "literal_prefix_long", Kind: FindAll, Pattern: "hello.*", Corpus: corpus.Long, Inner: 1},
		{Name: "required_literal_short", Kind: FindAll, Pattern: `.*@example\.com`, Corpus: corpus.EmailList, Inner: 1},
		{Name: "required_literal_long", Kind: FindAll, Pattern: `.*@example\.com`, Corpus: corpus.EmailListX5, Inner: 1},
		{Name: "no_literal_baseline", Kind: FindAll, Pattern: patternLower, Corpus: corpus.Medium, Inner: 1},
		{Name: "alternation_common_prefix", Kind: FindAll, Pattern: "(hello|help|helicopter)", Corpus: corpus.Medium, Inner: 1},
	}
}

// Validate checks a scenario table against a catalog. Every problem is
// reported, not just the first.
func Validate(defs []Definition, catalog corpus.Catalog) error {
	var errs []error
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("scenario %d: empty name", i))
		} else if seen[d.Name] {
			errs = append(errs, fmt.Errorf("scenario %q: duplicate name", d.Name))
		}
		seen[d.Name] = true

		if d.Inner < 1 {
			errs = append(errs, fmt.Errorf("scenario %q: inner iterations must be at least 1", d.Name))
		}
		if d.Kind < IsMatch || d.Kind > FindAll {
			errs = append(errs, fmt.Errorf("scenario %q: unknown kind %v", d.Name, d.Kind))
		}
		if _, err := catalog.Get(d.Corpus); err != nil {
			errs = append(errs, fmt.Errorf("scenario %q: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}
