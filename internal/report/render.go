package report

import (
	"fmt"
	"io"
)

// Renderer writes the human-readable distribution report.
type Renderer struct {
	SeriesName   string
	PreviewLimit int // unidentified filenames shown before truncating
}

// Render writes every report section in order. found is the raw number of
// image files scanned, including ones that ended up unidentified.
func (r Renderer) Render(w io.Writer, a *Analysis, found int) {
	fmt.Fprintf(w, "%s Screenshot Distribution Analyzer\n\n", r.SeriesName)
	fmt.Fprintf(w, "Found %d image files\n\n", found)

	fmt.Fprintln(w, "EPISODE DISTRIBUTION")
	fmt.Fprintf(w, "  Total episodes:      %d\n", len(a.Buckets))
	fmt.Fprintf(w, "  Total images:        %d\n", a.TotalImages)
	fmt.Fprintf(w, "  Average per episode: %.1f\n", a.Average)
	fmt.Fprintf(w, "  Range:               %d - %d images per episode\n\n", a.MinCount, a.MaxCount)

	fmt.Fprintln(w, "EPISODE BREAKDOWN")
	rows := make([][]string, 0, len(a.Buckets))
	for _, b := range a.Buckets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.Count()),
			fmt.Sprintf("%.1f%%", r.percent(b, a)),
			r.label(b, a),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"Count", "Share", "Episode"}, rows))

	if len(a.Under) > 0 {
		fmt.Fprintf(w, "\nUNDERREPRESENTED EPISODES (fewer than %d images)\n", a.Threshold)
		rows = rows[:0]
		for _, s := range a.Under {
			rows = append(rows, []string{
				fmt.Sprintf("%d", s.Bucket.Count()),
				fmt.Sprintf("%d more", s.Needed),
				r.label(s.Bucket, a),
			})
		}
		fmt.Fprintln(w, renderTable([]string{"Count", "Needed", "Episode"}, rows))
	}

	if len(a.Unidentified) > 0 {
		fmt.Fprintf(w, "\nUNIDENTIFIED FILES\n")
		fmt.Fprintf(w, "%d files could not be parsed for episode info:\n", len(a.Unidentified))
		preview := a.Unidentified
		if r.PreviewLimit >= 0 && len(preview) > r.PreviewLimit {
			preview = preview[:r.PreviewLimit]
		}
		for _, name := range preview {
			fmt.Fprintf(w, "  - %s\n", name)
		}
		if rest := len(a.Unidentified) - len(preview); rest > 0 {
			fmt.Fprintf(w, "  ... and %d more\n", rest)
		}
	}

	r.renderRanking(w, a, fmt.Sprintf("TOP %d EPISODES (most screenshots)", len(a.Top)), a.Top)
	r.renderRanking(w, a, fmt.Sprintf("BOTTOM %d EPISODES (fewest screenshots)", len(a.Bottom)), a.Bottom)

	fmt.Fprintln(w, "\nAnalysis complete. Use this data to balance the screenshot collection.")
}

func (r Renderer) renderRanking(w io.Writer, a *Analysis, title string, buckets []*Bucket) {
	fmt.Fprintf(w, "\n%s\n", title)
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.Count()),
			r.label(b, a),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"Count", "Episode"}, rows))
}

func (r Renderer) percent(b *Bucket, a *Analysis) float64 {
	if a.TotalImages == 0 {
		return 0
	}
	return float64(b.Count()) / float64(a.TotalImages) * 100
}

// label annotates title-only buckets with their guide suggestion when one
// cleared the confidence bar.
func (r Renderer) label(b *Bucket, a *Analysis) string {
	label := b.Identity().DisplayLabel()
	if m, ok := a.Suggestions[b.Key]; ok {
		label += fmt.Sprintf(" (guide match: %s %q)", m.Entry.CanonicalID(), m.Entry.Title)
	}
	return label
}
