// Package corpus builds the deterministic text corpora scenarios match against.
//
// Every builder is a pure function of its arguments: the same inputs always
// produce byte-identical output, so corpora can be diffed across
// implementations of the harness.
package corpus

import "strings"

// Alphabet is the default motif for plain-text corpora.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// MixedMotif mixes letters, digits, punctuation and an email-like token.
const MixedMotif = "User123 sent email to user456@domain.com with ID abc789! Status: ACTIVE_2024 (priority=HIGH). "

const (
	// ShortText carries three occurrences of "hello" for literal-prefix scenarios.
	ShortText = "hello world this is a test with hello again and hello there"
	// EmailText is a space separated list of addresses.
	EmailText = "test@example.com user@test.org admin@example.com support@example.com no-reply@example.com"

	emailSnippet = " user@example.com more text john@test.org "
	numberMotif  = "abc def ghi "
)

// BuildRepeated returns a string of exactly length bytes made of whole copies
// of motif followed by a prefix of motif. It returns "" when length is not
// positive or motif is empty.
//
// Length counts bytes, not runes; all motifs used by the suite are ASCII.
func BuildRepeated(length int, motif string) string {
	if length <= 0 || motif == "" {
		return ""
	}

	full := length / len(motif)
	rem := length % len(motif)

	var b strings.Builder
	b.Grow(length)
	for range full {
		b.WriteString(motif)
	}
	b.WriteString(motif[:rem])
	return b.String()
}

// BuildMixedContent repeats MixedMotif to exactly length bytes.
func BuildMixedContent(length int) string {
	return BuildRepeated(length, MixedMotif)
}
