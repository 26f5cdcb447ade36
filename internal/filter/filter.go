package filter

import (
	"regexp"
	"strings"
)

var (
	repeatedCommas = regexp.MustCompile(`,(\s*,)+`)
	repeatedSpace  = regexp.MustCompile(`\s+`)
)

// Filter removes banned terms from assembled prompt text. It is stateless
// given its term list; terms are normalized to lowercase when set.
type Filter struct {
	terms    []string
	patterns []*regexp.Regexp
}

// New creates a filter for the given banned terms.
func New(terms []string) *Filter {
	f := &Filter{}
	f.SetTerms(terms)
	return f
}

// SetTerms replaces the banned term list. Terms are lowercased and compiled
// into case-insensitive whole-word patterns; empty terms are dropped.
func (f *Filter) SetTerms(terms []string) {
	f.terms = nil
	f.patterns = nil
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		f.terms = append(f.terms, term)
		f.patterns = append(f.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
}

// Terms returns a copy of the normalized banned term list.
func (f *Filter) Terms() []string {
	out := make([]string, len(f.terms))
	copy(out, f.terms)
	return out
}

// Apply removes every banned term present in text as a case-insensitive
// whole word and returns the filtered text plus the terms that actually
// matched, each named once. The text is re-cleaned after removal since
// dropping a word can leave a dangling comma or double space.
func (f *Filter) Apply(text string) (string, []string) {
	if text == "" || len(f.patterns) == 0 {
		return text, nil
	}

	var removed []string
	for i, re := range f.patterns {
		if !re.MatchString(text) {
			continue
		}
		text = re.ReplaceAllString(text, "")
		removed = append(removed, f.terms[i])
	}

	if len(removed) == 0 {
		return text, nil
	}
	return Clean(text), removed
}

// Clean normalizes assembled prompt text: repeated commas collapse to one,
// runs of whitespace collapse to a single space, and leading or trailing
// commas are stripped. Clean is idempotent.
func Clean(s string) string {
	s = repeatedCommas.ReplaceAllString(s, ",")
	s = repeatedSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ",")
	s = strings.TrimSuffix(s, ",")
	return strings.TrimSpace(s)
}
