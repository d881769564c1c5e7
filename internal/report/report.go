// Package report aggregates classified screenshots into episode buckets and
// renders the distribution report.
package report

import (
	"sort"

	"github.com/yoclaire/petesky-image-bot/pkg/episode"
)

// Entry pairs a filename with its extracted identity.
type Entry struct {
	Filename string
	Identity episode.Identity
}

// Bucket groups the entries assigned to one episode identity. Buckets are
// created lazily during the single aggregation pass and never merged or
// split afterwards.
type Bucket struct {
	Key     string
	Entries []Entry
}

// Identity returns the identity shared by the bucket, taken from its first
// entry.
func (b *Bucket) Identity() episode.Identity {
	return b.Entries[0].Identity
}

// Count returns the number of screenshots in the bucket.
func (b *Bucket) Count() int {
	return len(b.Entries)
}

// Shortfall flags a bucket sitting below the underrepresented threshold.
type Shortfall struct {
	Bucket *Bucket
	Needed int // images required to reach the threshold
}

// Options tunes aggregation.
type Options struct {
	UnderRatio float64       // fraction of the average marking underrepresentation
	RankCount  int           // entries in the top/bottom rankings
	Guide      episode.Guide // optional, enables suggestions for title buckets
}

// Analysis is the immutable outcome of one aggregation pass.
type Analysis struct {
	Buckets      []*Bucket // display order: numbered asc, specials, title-only
	Unidentified []string  // files yielding neither id nor title
	TotalImages  int       // classified images, excludes unidentified
	Average      float64   // images per episode, 0 when no buckets
	MinCount     int
	MaxCount     int
	Threshold    int // floor(Average * UnderRatio)
	Under        []Shortfall
	Top          []*Bucket // most screenshots first
	Bottom       []*Bucket // tail of the count-descending ranking

	// Suggestions maps title-only bucket keys to medium-or-better guide
	// matches.
	Suggestions map[string]episode.Match
}

// Build groups entries by canonical episode identity and computes the
// distribution statistics. Input order determines bucket insertion order,
// which in turn fixes every tie-break, so callers should pass entries in a
// stable order.
func Build(entries []Entry, opts Options) *Analysis {
	a := &Analysis{Suggestions: make(map[string]episode.Match)}

	byKey := make(map[string]*Bucket)
	for _, e := range entries {
		if e.Identity.Unresolved() {
			a.Unidentified = append(a.Unidentified, e.Filename)
			continue
		}
		key := bucketKey(e.Identity)
		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key}
			byKey[key] = b
			a.Buckets = append(a.Buckets, b)
		}
		b.Entries = append(b.Entries, e)
		a.TotalImages++
	}

	if len(a.Buckets) > 0 {
		a.Average = float64(a.TotalImages) / float64(len(a.Buckets))
		a.MinCount, a.MaxCount = a.Buckets[0].Count(), a.Buckets[0].Count()
		for _, b := range a.Buckets[1:] {
			if c := b.Count(); c < a.MinCount {
				a.MinCount = c
			} else if c > a.MaxCount {
				a.MaxCount = c
			}
		}
	}
	a.Threshold = int(a.Average * opts.UnderRatio)

	sortForDisplay(a.Buckets)

	for _, b := range a.Buckets {
		if b.Count() < a.Threshold {
			a.Under = append(a.Under, Shortfall{Bucket: b, Needed: a.Threshold - b.Count()})
		}
	}

	byCount := make([]*Bucket, len(a.Buckets))
	copy(byCount, a.Buckets)
	sort.SliceStable(byCount, func(i, j int) bool {
		return byCount[i].Count() > byCount[j].Count()
	})
	n := opts.RankCount
	if n > len(byCount) {
		n = len(byCount)
	}
	a.Top = byCount[:n]
	a.Bottom = byCount[len(byCount)-n:]

	if len(opts.Guide) > 0 {
		for _, b := range a.Buckets {
			id := b.Identity()
			if id.Numbered {
				continue
			}
			if m := opts.Guide.Match(id.Title); m.Confidence >= episode.ConfidenceMedium {
				a.Suggestions[b.Key] = m
			}
		}
	}

	return a
}

// bucketKey derives the grouping key: the canonical id when known,
// otherwise a synthetic key from the title.
func bucketKey(id episode.Identity) string {
	if key := id.CanonicalID(); key != "" {
		return key
	}
	title := id.Title
	if title == "" {
		title = "Untitled"
	}
	return "Unknown-" + title
}

// sortForDisplay orders numbered episodes by season/episode ascending,
// specials after them, title-only buckets last, with the bucket key
// breaking ties.
func sortForDisplay(buckets []*Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		ri, rj := displayRank(buckets[i]), displayRank(buckets[j])
		if ri.class != rj.class {
			return ri.class < rj.class
		}
		if ri.season != rj.season {
			return ri.season < rj.season
		}
		if ri.episode != rj.episode {
			return ri.episode < rj.episode
		}
		return buckets[i].Key < buckets[j].Key
	})
}

type rank struct {
	class   int // 0 numbered, 1 special, 2 title-only
	season  int
	episode int
}

func displayRank(b *Bucket) rank {
	id := b.Identity()
	switch {
	case id.IsSpecial():
		return rank{class: 1}
	case !id.Numbered:
		return rank{class: 2}
	default:
		return rank{class: 0, season: id.Season, episode: id.Episode}
	}
}
