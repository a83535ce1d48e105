package matcher

import "regexp"

// stdEngine is Go's RE2-based regexp package.
type stdEngine struct{}

func (stdEngine) Name() string { return "go" }

func (e stdEngine) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Engine: e.Name(), Pattern: pattern, Err: err}
	}
	return stdMatcher{re: re}, nil
}

type stdMatcher struct {
	re *regexp.Regexp
}

func (m stdMatcher) IsMatch(text string) (bool, error) {
	return m.re.MatchString(text), nil
}

func (m stdMatcher) Find(text string) (Span, bool, error) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return Span{}, false, nil
	}
	return Span{Start: loc[0], End: loc[1]}, true, nil
}

func (m stdMatcher) FindAll(text string) ([]Span, error) {
	locs := m.re.FindAllStringIndex(text, -1)
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans, nil
}
