package matcher

import "github.com/dlclark/regexp2"

// regexp2Engine is the backtracking engine from dlclark/regexp2, compiled
// with RE2-compatible syntax so the same pattern catalogue applies.
//
// regexp2 reports offsets in runes. Every corpus in the suite is ASCII, so
// rune and byte offsets coincide.
type regexp2Engine struct{}

func (regexp2Engine) Name() string { return "regexp2" }

func (e regexp2Engine) Compile(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, &CompileError{Engine: e.Name(), Pattern: pattern, Err: err}
	}
	return regexp2Matcher{re: re}, nil
}

type regexp2Matcher struct {
	re *regexp2.Regexp
}

func (m regexp2Matcher) IsMatch(text string) (bool, error) {
	return m.re.MatchString(text)
}

func (m regexp2Matcher) Find(text string) (Span, bool, error) {
	match, err := m.re.FindStringMatch(text)
	if err != nil || match == nil {
		return Span{}, false, err
	}
	return Span{Start: match.Index, End: match.Index + match.Length}, true, nil
}

func (m regexp2Matcher) FindAll(text string) ([]Span, error) {
	var spans []Span
	match, err := m.re.FindStringMatch(text)
	for match != nil && err == nil {
		spans = append(spans, Span{Start: match.Index, End: match.Index + match.Length})
		match, err = m.re.FindNextMatch(match)
	}
	if err != nil {
		return nil, err
	}
	return spans, nil
}
