package episode

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
)

// MatchConfidence represents the confidence level of a guide match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the result of matching an extracted title against the guide.
type Match struct {
	Entry      GuideEntry
	Score      float64
	Confidence MatchConfidence
}

// Match finds the guide entry whose title best matches the extracted title.
// Uses Jaro-Winkler similarity, which favors prefix matches and suits short
// episode titles. An empty guide or a score below the low threshold yields
// ConfidenceNone.
func (g Guide) Match(title string) Match {
	best := Match{Confidence: ConfidenceNone}
	if len(g) == 0 || title == "" {
		return best
	}

	key := matchKey(title)
	for _, entry := range g {
		score := float64(edlib.JaroWinklerSimilarity(key, matchKey(entry.Title)))
		if score > best.Score {
			best.Entry = entry
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best = Match{Confidence: ConfidenceNone}
	}
	return best
}

// matchKey normalizes a title for comparison: lowercase, accents stripped,
// "&" spelled out, punctuation removed, leading article dropped.
func matchKey(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "'", "")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")

	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
