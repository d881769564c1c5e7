package episode

import "fmt"

// GuideEntry is one known episode in the series guide.
type GuideEntry struct {
	Season  int
	Episode int
	Title   string
}

// CanonicalID returns the entry's "S{season}E{episode}" key.
func (e GuideEntry) CanonicalID() string {
	return fmt.Sprintf("S%dE%d", e.Season, e.Episode)
}

// Guide is an optional list of known episodes used to suggest a canonical
// identity for buckets that were keyed by title alone.
type Guide []GuideEntry
