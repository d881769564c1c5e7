package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoclaire/petesky-image-bot/pkg/episode"
)

func renderToString(t *testing.T, a *Analysis, found int) string {
	t.Helper()
	var sb strings.Builder
	r := Renderer{SeriesName: "Pete & Pete", PreviewLimit: 10}
	r.Render(&sb, a, found)
	return sb.String()
}

func TestRender_Sections(t *testing.T) {
	entries := []Entry{
		{Filename: "a.jpg", Identity: numbered(1, 1, "Inflatable Face")},
		{Filename: "b.jpg", Identity: numbered(1, 1, "Inflatable Face")},
		{Filename: "c.jpg", Identity: numbered(1, 2, "Sleep")},
		{Filename: "d.jpg", Identity: episode.Identity{}},
	}
	a := Build(entries, defaultOptions())

	out := renderToString(t, a, len(entries))

	assert.Contains(t, out, "Pete & Pete Screenshot Distribution Analyzer")
	assert.Contains(t, out, "Found 4 image files")
	assert.Contains(t, out, "Total episodes:      2")
	assert.Contains(t, out, "Total images:        3")
	assert.Contains(t, out, "Average per episode: 1.5")
	assert.Contains(t, out, "EPISODE BREAKDOWN")
	assert.Contains(t, out, "S1E1: Inflatable Face")
	assert.Contains(t, out, "S1E2: Sleep")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "UNIDENTIFIED FILES")
	assert.Contains(t, out, "d.jpg")
	assert.Contains(t, out, "TOP 2 EPISODES")
	assert.Contains(t, out, "BOTTOM 2 EPISODES")

	// Average is above every count times 0.75 only when a bucket lags;
	// here threshold is 1 and no bucket sits below it.
	assert.NotContains(t, out, "UNDERREPRESENTED")
}

func TestRender_Underrepresented(t *testing.T) {
	var entries []Entry
	id1, id2 := numbered(1, 1, ""), numbered(1, 2, "")
	for i := 0; i < 9; i++ {
		entries = append(entries, Entry{Filename: string(rune('a'+i)) + ".jpg", Identity: id1})
	}
	entries = append(entries, Entry{Filename: "z.jpg", Identity: id2})

	a := Build(entries, defaultOptions())
	require.Equal(t, 3, a.Threshold) // floor(5.0 * 0.75)

	out := renderToString(t, a, len(entries))
	assert.Contains(t, out, "UNDERREPRESENTED EPISODES (fewer than 3 images)")
	assert.Contains(t, out, "2 more")
}

func TestRender_UnidentifiedPreviewCap(t *testing.T) {
	entries := []Entry{
		{Filename: "keep.jpg", Identity: numbered(1, 1, "")},
	}
	for i := 0; i < 14; i++ {
		entries = append(entries, Entry{
			Filename: strings.Repeat("_", i+1) + ".jpg",
			Identity: episode.Identity{},
		})
	}

	a := Build(entries, defaultOptions())
	out := renderToString(t, a, len(entries))

	assert.Contains(t, out, "14 files could not be parsed")
	assert.Contains(t, out, "... and 4 more")
}
