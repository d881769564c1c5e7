package episode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Series describes the show whose screenshots are being classified. Alias
// prefixes are stripped from filenames that carry the show name instead of a
// season/episode marker; ProperNoun is the canonical capitalization restored
// during title cleanup.
type Series struct {
	ProperNoun string
	Aliases    []string
}

// DefaultSeries matches "The Adventures of Pete & Pete" filename prefixes.
func DefaultSeries() Series {
	return Series{
		ProperNoun: "Pete",
		Aliases: []string{
			"The Adventures of Pete & Pete",
			"Pete & Pete",
		},
	}
}

var (
	imageExtRe  = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|bmp)$`)
	separatorRe = regexp.MustCompile(`[_\-]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Season/episode patterns tried in order against the normalized name; the
// first one that matches anywhere wins. Group 1 is the season, group 2 the
// episode.
var seasonEpisodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:season\s*)?(\d+)x(\d+)`),       // 1x05, Season 1x05
	regexp.MustCompile(`(?i)s(\d+)e(\d+)`),                    // S01E08, S1E8
	regexp.MustCompile(`(?i)season\s*(\d+)\s*episode\s*(\d+)`), // Season 1 Episode 5
	regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d+)`),               // 3 x 12
}

// titleTail captures everything after a recognized prefix as the candidate
// title, excluding a trailing bare number such as a stray sequence index.
const titleTail = `\s*[-_]?\s*(.+?)(?:\s*-?\s*\d+)?$`

// Parser converts filenames into episode identities. It is stateless and
// safe for concurrent use.
type Parser struct {
	series     Series
	aliasRes   []*regexp.Regexp
	fallbackRe *regexp.Regexp
	properRe   *regexp.Regexp
}

// NewParser builds a parser for the given series. A zero-value Series
// disables alias stripping and proper-noun canonicalization.
func NewParser(series Series) *Parser {
	p := &Parser{
		series:     series,
		fallbackRe: regexp.MustCompile(`^(.+?)(?:\s*-?\s*\d+)?$`),
	}
	for _, alias := range series.Aliases {
		p.aliasRes = append(p.aliasRes, regexp.MustCompile(aliasPattern(alias)+titleTail))
	}
	if series.ProperNoun != "" {
		p.properRe = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(series.ProperNoun) + `\b`)
	}
	return p
}

// aliasPattern converts a series alias like "Pete & Pete" into a pattern
// that tolerates flexible whitespace and an optional "&" or "and" between
// the surrounding words.
func aliasPattern(alias string) string {
	var b strings.Builder
	b.WriteString(`(?i)`)
	needSep := false
	for _, tok := range strings.Fields(alias) {
		if tok == "&" {
			b.WriteString(`\s*(?:&|and)?\s*`)
			needSep = false
			continue
		}
		if needSep {
			b.WriteString(`\s+`)
		}
		b.WriteString(regexp.QuoteMeta(tok))
		needSep = true
	}
	return b.String()
}

// Parse extracts the episode identity from a filename. It never fails:
// names that yield neither a season/episode marker nor a title come back
// with Identity.Unresolved() true.
func (p *Parser) Parse(filename string) Identity {
	name := normalizeName(filename)

	var id Identity
	for _, re := range seasonEpisodePatterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		season, serr := strconv.Atoi(m[1])
		num, eerr := strconv.Atoi(m[2])
		if serr != nil || eerr != nil {
			continue
		}
		id.Season, id.Episode, id.Numbered = season, num, true
		break
	}

	var candidate string
	if id.Numbered {
		candidate = p.titleAfterMarker(name, id.Season, id.Episode)
	} else {
		candidate = p.titleFromAlias(name)
	}
	if candidate != "" {
		id.Title = p.cleanTitle(candidate)
	}
	return id
}

// normalizeName strips a recognized image extension and collapses
// separator and whitespace runs to single spaces.
func normalizeName(filename string) string {
	name := imageExtRe.ReplaceAllString(filename, "")
	name = separatorRe.ReplaceAllString(name, " ")
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// titleAfterMarker captures the text following the season/episode token in
// whichever textual form it appeared.
func (p *Parser) titleAfterMarker(name string, season, num int) string {
	patterns := []string{
		fmt.Sprintf(`(?i)(?:season\s*)?%d\s*x\s*%d%s`, season, num, titleTail),
		fmt.Sprintf(`(?i)s%02de%02d%s`, season, num, titleTail),
		fmt.Sprintf(`(?i)%d\s*x\s*%d%s`, season, num, titleTail),
	}
	for _, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
			return m[1]
		}
	}
	return ""
}

// titleFromAlias strips a known series prefix, falling back to the whole
// name minus any trailing bare number. The fallback always captures
// something for a non-empty name, so unresolved identities arise only from
// names that are empty after normalization.
func (p *Parser) titleFromAlias(name string) string {
	for _, re := range p.aliasRes {
		if m := re.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
			return m[1]
		}
	}
	if m := p.fallbackRe.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
		return m[1]
	}
	return ""
}
