package episode

import (
	"regexp"
	"testing"
)

func TestCleanTitle(t *testing.T) {
	p := NewParser(DefaultSeries())

	tests := []struct {
		input string
		want  string
	}{
		{"inflatable face", "Inflatable Face"},
		{"_-_king of the road_-_", "King of the Road"},
		{"hard   day s pete", "Hard Day's Pete"},
		{"don t tread on pete", "Don't Tread on Pete"},
		{"the good the bad and the lucky", "The Good the Bad and the Lucky"},
		{"PETE and PETE", "Pete and Pete"},
		{"x s marks the spot", "X's Marks the Spot"},
		{"crème brûlée", "Creme Brulee"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := p.cleanTitle(tt.input)
			if got != tt.want {
				t.Errorf("cleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"day of the dot", "Day of the Dot"},
		{"the big quiet", "The Big Quiet"},
		{"a hard day", "A Hard Day"},
		{"splashdown", "Splashdown"},
		{"crisis in the love zone", "Crisis in the Love Zone"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := titleCase(tt.input); got != tt.want {
				t.Errorf("titleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Cleaned titles must be stable under re-normalization: running the
// whitespace/underscore collapse again yields the same string.
func TestCleanTitle_Idempotent(t *testing.T) {
	p := NewParser(DefaultSeries())

	underscores := regexp.MustCompile(`_+`)
	spaces := regexp.MustCompile(`\s+`)

	inputs := []string{
		"hard   day s pete",
		"__yellow_fever__",
		" - time tunnel - ",
		"das bus",
	}
	for _, input := range inputs {
		cleaned := p.cleanTitle(input)
		again := spaces.ReplaceAllString(underscores.ReplaceAllString(cleaned, " "), " ")
		if again != cleaned {
			t.Errorf("cleanTitle(%q) = %q not stable, re-normalized to %q", input, cleaned, again)
		}
	}
}
