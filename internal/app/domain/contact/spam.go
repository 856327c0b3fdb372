package contact

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// DefaultSpamTerms are phrases no genuine trial request contains.
var DefaultSpamTerms = []string{
	"viagra", "casino", "bitcoin", "crypto investment", "forex",
	"seo services", "backlinks", "payday loan", "click here", "porn",
}

// maxLinks is the number of URLs a message may carry before it is treated
// as spam.
const maxLinks = 2

// SpamFilter screens free-text fields against a fixed term list.
type SpamFilter struct {
	matcher ahocorasick.AhoCorasick
	terms   []string
}

func NewSpamFilter(terms []string) *SpamFilter {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			lowered = append(lowered, t)
		}
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	return &SpamFilter{matcher: builder.Build(lowered), terms: lowered}
}

// Match returns the first spam term found in text, if any.
func (f *SpamFilter) Match(text string) (string, bool) {
	if len(f.terms) > 0 {
		haystack := strings.ToLower(text)
		if matches := f.matcher.FindAll(haystack); len(matches) > 0 {
			m := matches[0]
			return haystack[m.Start():m.End()], true
		}
	}
	lower := strings.ToLower(text)
	if strings.Count(lower, "http://")+strings.Count(lower, "https://") > maxLinks {
		return "links", true
	}
	return "", false
}
