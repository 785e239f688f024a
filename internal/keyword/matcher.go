// Package keyword finds which of a fixed set of keywords occur in free text.
//
// A Matcher answers the same question as calling strings.Contains on the
// lower-cased text once per keyword, but scans the text a single time with
// an Aho-Corasick automaton.
package keyword

import (
	"fmt"
	"sort"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// separatorCandidates are tried in order until one is found outside the
// keyword alphabet.
var separatorCandidates = []rune{'\x1f', '\x1e', '\x1d', '\x1c'}

// Hits is the set of keywords found in a text
type Hits map[string]struct{}

// Has reports whether the keyword was found
func (h Hits) Has(keyword string) bool {
	_, ok := h[Normalize(keyword)]
	return ok
}

// Any reports whether at least one of the keywords was found
func (h Hits) Any(keywords ...string) bool {
	for _, k := range keywords {
		if h.Has(k) {
			return true
		}
	}
	return false
}

// Matcher is safe for concurrent use once built.
type Matcher struct {
	machine   *goahocorasick.Machine
	keywords  []string
	alphabet  map[rune]struct{}
	separator rune
}

// NewMatcher builds the automaton over the lower-cased, de-duplicated keywords.
// Empty keywords are ignored.
func NewMatcher(keywords []string) (*Matcher, error) {
	words := lo.Uniq(lo.FilterMap(keywords, func(k string, _ int) (string, bool) {
		n := Normalize(k)
		return n, n != ""
	}))
	sort.Strings(words)

	m := &Matcher{
		keywords: words,
		alphabet: make(map[rune]struct{}),
	}
	if len(words) == 0 {
		return m, nil
	}

	patterns := make([][]rune, len(words))
	for i, w := range words {
		patterns[i] = []rune(w)
		for _, r := range patterns[i] {
			m.alphabet[r] = struct{}{}
		}
	}

	sep, ok := lo.Find(separatorCandidates, func(r rune) bool {
		_, used := m.alphabet[r]
		return !used
	})
	if !ok {
		return nil, fmt.Errorf("keywords use every separator candidate")
	}
	m.separator = sep

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, fmt.Errorf("failed to build keyword automaton: %w", err)
	}
	m.machine = machine

	return m, nil
}

// Keywords returns the normalized keywords the matcher looks for
func (m *Matcher) Keywords() []string {
	return append([]string(nil), m.keywords...)
}

// Hits returns every keyword that occurs in text, ignoring case
func (m *Matcher) Hits(text string) Hits {
	hits := make(Hits)
	if m.machine == nil || text == "" {
		return hits
	}

	for _, term := range m.machine.MultiPatternSearch(m.fold(Normalize(text)), false) {
		hits[string(term.Word)] = struct{}{}
	}
	return hits
}

// fold replaces runes that no keyword contains. Such a rune can never be part
// of a match, so collapsing them keeps the automaton on its own alphabet.
func (m *Matcher) fold(text string) []rune {
	runes := []rune(text)
	for i, r := range runes {
		if _, ok := m.alphabet[r]; !ok {
			runes[i] = m.separator
		}
	}
	return runes
}

// Normalize lower-cases text the way both the keywords and inputs are compared
func Normalize(text string) string {
	return cases.Lower(language.Und).String(text)
}
