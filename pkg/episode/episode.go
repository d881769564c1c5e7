// Package episode extracts episode identity from screenshot filenames.
package episode

import "fmt"

// Identity is the parsed identity of a single screenshot filename.
// Season and Episode are meaningful only when Numbered is true; a
// season-zero identity is a special, not an absent season.
type Identity struct {
	Season   int
	Episode  int
	Numbered bool   // a season/episode pattern matched
	Title    string // cleaned and title-cased, empty when none was found
}

// CanonicalID returns the "S{season}E{episode}" grouping key, or the empty
// string when no season/episode pattern matched.
func (id Identity) CanonicalID() string {
	if !id.Numbered {
		return ""
	}
	return fmt.Sprintf("S%dE%d", id.Season, id.Episode)
}

// IsSpecial reports whether the identity is a season-zero special.
func (id Identity) IsSpecial() bool {
	return id.Numbered && id.Season == 0
}

// Unresolved reports whether neither a canonical id nor a title was found.
// Unresolved files are collected separately instead of being bucketed.
func (id Identity) Unresolved() bool {
	return !id.Numbered && id.Title == ""
}

// DisplayLabel returns the human-readable label used in report listings.
func (id Identity) DisplayLabel() string {
	if id.Numbered {
		if id.IsSpecial() {
			title := id.Title
			if title == "" {
				title = "Unknown Title"
			}
			return "Special: " + title
		}
		if id.Title != "" {
			return id.CanonicalID() + ": " + id.Title
		}
		return id.CanonicalID()
	}
	if id.Title != "" {
		return id.Title
	}
	return "Unknown"
}
