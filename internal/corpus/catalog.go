package corpus

import (
	"fmt"
	"sort"
	"strings"
)

// Corpus names used by the default suite.
const (
	Alpha1000    = "alpha_1000"
	Alpha10000   = "alpha_10000"
	Range1000    = "range_1000"
	Group1000    = "group_1000"
	LiteralShort = "literal_short"
	LiteralLong  = "literal_long"
	Emails       = "emails"
	Numbers      = "numbers"
	Mixed10000   = "mixed_10000"
	Mixed50000   = "mixed_50000"
	Short        = "short"
	Medium       = "medium"
	Long         = "long"
	EmailList    = "email_list"
	EmailListX5  = "email_list_x5"
)

// Catalog maps corpus names to their generated text. A catalog is built once
// per run and only read afterwards.
type Catalog map[string]string

// Get returns the named corpus.
func (c Catalog) Get(name string) (string, error) {
	text, ok := c[name]
	if !ok {
		return "", fmt.Errorf("unknown corpus %q", name)
	}
	return text, nil
}

// Names returns the corpus names in lexicographic order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultCatalog generates every corpus the default suite references.
func DefaultCatalog() Catalog {
	text1000 := BuildRepeated(1000, Alphabet)
	text10000 := BuildRepeated(10000, Alphabet)

	base := BuildRepeated(100, Alphabet)
	emails := strings.Join([]string{base, emailSnippet, base, emailSnippet, base}, " ")

	numberBase := BuildRepeated(500, numberMotif)
	numbers := numberBase + " 123 price $456.78 quantity 789 " + numberBase

	return Catalog{
		Alpha1000:    text1000,
		Alpha10000:   text10000,
		Range1000:    BuildRepeated(1000, "abc123XYZ"),
		Group1000:    BuildRepeated(1000, "abcabcabc"),
		LiteralShort: text1000 + " hello world " + text1000,
		LiteralLong:  text10000 + " hello world " + text1000,
		Emails:       emails,
		Numbers:      numbers,
		Mixed10000:   BuildMixedContent(10000),
		Mixed50000:   BuildMixedContent(50000),
		Short:        ShortText,
		Medium:       strings.Repeat(ShortText, 10),
		Long:         strings.Repeat(ShortText, 100),
		EmailList:    EmailText,
		EmailListX5:  strings.Repeat(EmailText, 5),
	}
}
