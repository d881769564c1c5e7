package episode

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	edgeSepRe    = regexp.MustCompile(`^[-_\s]+|[-_\s]+$`)
	underscoreRe = regexp.MustCompile(`_+`)

	// possessiveRe rejoins a possessive or contraction that filename
	// cleaning split apart, e.g. "don t" back to "don't". It can misfire
	// on genuine two-word sequences ending in one of these letters; that
	// is an accepted limitation of the heuristic.
	possessiveRe = regexp.MustCompile(`(?i)([a-z])\s+([smldt])\b`)

	andRe = regexp.MustCompile(`(?i)\band\b`)
	theRe = regexp.MustCompile(`(?i)\bthe\b`)
)

// smallWords stay lowercase in title case unless they lead the title.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "if": true, "in": true,
	"of": true, "on": true, "or": true, "the": true, "to": true, "up": true,
}

// cleanTitle normalizes a captured title candidate: separator trimming,
// whitespace collapse, contraction repair, accent stripping, proper-noun
// canonicalization and title casing.
func (p *Parser) cleanTitle(candidate string) string {
	s := edgeSepRe.ReplaceAllString(candidate, "")
	s = underscoreRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	s = possessiveRe.ReplaceAllString(s, "${1}'${2}")
	s = removeAccents(s)
	if p.properRe != nil {
		s = p.properRe.ReplaceAllString(s, p.series.ProperNoun)
	}
	s = andRe.ReplaceAllString(s, "and")
	s = theRe.ReplaceAllString(s, "the")

	return titleCase(s)
}

// titleCase capitalizes every word except known small words; the first word
// is always capitalized.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && smallWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
