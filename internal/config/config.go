// Package config handles TOML configuration loading for the analyzer.
// Configuration is optional: built-in defaults describe The Adventures of
// Pete & Pete and the standard report shape.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/yoclaire/petesky-image-bot/pkg/episode"
)

// Config is the root configuration structure.
type Config struct {
	Series  SeriesConfig  `toml:"series"`
	Analyze AnalyzeConfig `toml:"analyze"`
	Guide   GuideConfig   `toml:"guide"`
}

// SeriesConfig names the show and the filename prefixes that identify it.
type SeriesConfig struct {
	Name       string   `toml:"name"`
	ProperNoun string   `toml:"proper_noun"`
	Aliases    []string `toml:"aliases"`
}

// AnalyzeConfig tunes scanning and report thresholds.
type AnalyzeConfig struct {
	Extensions            []string `toml:"extensions"`
	UnderrepresentedRatio float64  `toml:"underrepresented_ratio"`
	RankCount             int      `toml:"rank_count"`
	UnidentifiedPreview   int      `toml:"unidentified_preview"`
}

// GuideConfig lists known episodes for fuzzy suggestion of title-only buckets.
type GuideConfig struct {
	Episodes []GuideEpisode `toml:"episodes"`
}

type GuideEpisode struct {
	Season  int    `toml:"season"`
	Episode int    `toml:"episode"`
	Title   string `toml:"title"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Series: SeriesConfig{
			Name:       "Pete & Pete",
			ProperNoun: "Pete",
			Aliases: []string{
				"The Adventures of Pete & Pete",
				"Pete & Pete",
			},
		},
		Analyze: AnalyzeConfig{
			Extensions:            []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"},
			UnderrepresentedRatio: 0.75,
			RankCount:             5,
			UnidentifiedPreview:   10,
		},
	}
}

// Load reads and parses a configuration file, filling in defaults for any
// section left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values and aggregates every problem found.
func (c *Config) Validate(path string) error {
	cerr := &Error{Path: path}

	if c.Series.ProperNoun == "" {
		cerr.add("series.proper_noun must not be empty")
	}
	if len(c.Analyze.Extensions) == 0 {
		cerr.add("analyze.extensions must list at least one extension")
	}
	for _, ext := range c.Analyze.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			cerr.add(fmt.Sprintf("analyze.extensions entry %q must start with a dot", ext))
		}
	}
	if c.Analyze.UnderrepresentedRatio <= 0 || c.Analyze.UnderrepresentedRatio > 1 {
		cerr.add("analyze.underrepresented_ratio must be in (0, 1]")
	}
	if c.Analyze.RankCount < 1 {
		cerr.add("analyze.rank_count must be at least 1")
	}
	if c.Analyze.UnidentifiedPreview < 0 {
		cerr.add("analyze.unidentified_preview must not be negative")
	}
	for _, ep := range c.Guide.Episodes {
		if ep.Season < 0 || ep.Episode < 0 || ep.Title == "" {
			cerr.add(fmt.Sprintf("guide episode %+v needs non-negative numbers and a title", ep))
		}
	}

	if cerr.HasErrors() {
		return cerr
	}
	return nil
}

// SeriesInfo converts the configured series into the parser's form.
func (c *Config) SeriesInfo() episode.Series {
	return episode.Series{
		ProperNoun: c.Series.ProperNoun,
		Aliases:    c.Series.Aliases,
	}
}

// GuideEntries converts the configured guide into the matcher's form.
func (c *Config) GuideEntries() episode.Guide {
	if len(c.Guide.Episodes) == 0 {
		return nil
	}
	guide := make(episode.Guide, 0, len(c.Guide.Episodes))
	for _, ep := range c.Guide.Episodes {
		guide = append(guide, episode.GuideEntry{
			Season:  ep.Season,
			Episode: ep.Episode,
			Title:   ep.Title,
		})
	}
	return guide
}
