package main

import (
	"encoding/json"
	"io"

	"github.com/yoclaire/petesky-image-bot/internal/report"
	"github.com/yoclaire/petesky-image-bot/pkg/episode"
)

// identityJSON is the JSON-friendly representation of an episode identity.
type identityJSON struct {
	Season      *int   `json:"season,omitempty"`
	Episode     *int   `json:"episode,omitempty"`
	CanonicalID string `json:"canonical_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Special     bool   `json:"special,omitempty"`
	Unresolved  bool   `json:"unresolved,omitempty"`
	Label       string `json:"label"`
}

func identityToJSON(id episode.Identity) identityJSON {
	out := identityJSON{
		CanonicalID: id.CanonicalID(),
		Title:       id.Title,
		Special:     id.IsSpecial(),
		Unresolved:  id.Unresolved(),
		Label:       id.DisplayLabel(),
	}
	// Pointers keep season zero (specials) distinguishable from absent.
	if id.Numbered {
		season, number := id.Season, id.Episode
		out.Season, out.Episode = &season, &number
	}
	return out
}

type bucketJSON struct {
	Key        string   `json:"key"`
	Count      int      `json:"count"`
	Percent    float64  `json:"percent"`
	Label      string   `json:"label"`
	Files      []string `json:"files"`
	GuideMatch string   `json:"guide_match,omitempty"`
}

type shortfallJSON struct {
	Key    string `json:"key"`
	Count  int    `json:"count"`
	Needed int    `json:"needed"`
}

type analysisJSON struct {
	Found            int             `json:"found"`
	TotalEpisodes    int             `json:"total_episodes"`
	TotalImages      int             `json:"total_images"`
	AveragePerEp     float64         `json:"average_per_episode"`
	MinCount         int             `json:"min_count"`
	MaxCount         int             `json:"max_count"`
	Threshold        int             `json:"underrepresented_threshold"`
	Episodes         []bucketJSON    `json:"episodes"`
	Underrepresented []shortfallJSON `json:"underrepresented,omitempty"`
	Unidentified     []string        `json:"unidentified,omitempty"`
	Top              []string        `json:"top"`
	Bottom           []string        `json:"bottom"`
}

func writeAnalysisJSON(w io.Writer, a *report.Analysis, found int) error {
	out := analysisJSON{
		Found:         found,
		TotalEpisodes: len(a.Buckets),
		TotalImages:   a.TotalImages,
		AveragePerEp:  a.Average,
		MinCount:      a.MinCount,
		MaxCount:      a.MaxCount,
		Threshold:     a.Threshold,
		Unidentified:  a.Unidentified,
		Top:           bucketKeys(a.Top),
		Bottom:        bucketKeys(a.Bottom),
	}
	for _, b := range a.Buckets {
		bj := bucketJSON{
			Key:   b.Key,
			Count: b.Count(),
			Label: b.Identity().DisplayLabel(),
			Files: bucketFiles(b),
		}
		if a.TotalImages > 0 {
			bj.Percent = float64(b.Count()) / float64(a.TotalImages) * 100
		}
		if m, ok := a.Suggestions[b.Key]; ok {
			bj.GuideMatch = m.Entry.CanonicalID()
		}
		out.Episodes = append(out.Episodes, bj)
	}
	for _, s := range a.Under {
		out.Underrepresented = append(out.Underrepresented, shortfallJSON{
			Key:    s.Bucket.Key,
			Count:  s.Bucket.Count(),
			Needed: s.Needed,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func bucketKeys(buckets []*report.Bucket) []string {
	keys := make([]string, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	return keys
}

func bucketFiles(b *report.Bucket) []string {
	files := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		files[i] = e.Filename
	}
	return files
}
