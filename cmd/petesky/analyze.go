package main

import (
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yoclaire/petesky-image-bot/internal/report"
	"github.com/yoclaire/petesky-image-bot/internal/scan"
	"github.com/yoclaire/petesky-image-bot/pkg/episode"
)

const defaultQueueDir = "imagequeue"

func runAnalyze(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := defaultQueueDir
	if len(args) > 0 {
		dir = args[0]
	}

	scanner := scan.New(cfg.Analyze.Extensions, slog.Default())
	files, err := scanner.List(dir)
	if err != nil {
		return err
	}

	parser := episode.NewParser(cfg.SeriesInfo())
	identities := classify(parser, files)

	entries := make([]report.Entry, len(files))
	for i, name := range files {
		entries[i] = report.Entry{Filename: name, Identity: identities[i]}
	}

	analysis := report.Build(entries, report.Options{
		UnderRatio: cfg.Analyze.UnderrepresentedRatio,
		RankCount:  cfg.Analyze.RankCount,
		Guide:      cfg.GuideEntries(),
	})

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeAnalysisJSON(out, analysis, len(files))
	}
	renderer := report.Renderer{
		SeriesName:   cfg.Series.Name,
		PreviewLimit: cfg.Analyze.UnidentifiedPreview,
	}
	renderer.Render(out, analysis, len(files))
	return nil
}

// classify parses every filename, fanning out across CPUs. Results land in
// a slice indexed by the scanner's sorted order, so the aggregation that
// follows remains a deterministic sequential reduction.
func classify(p *episode.Parser, files []string) []episode.Identity {
	identities := make([]episode.Identity, len(files))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			identities[i] = p.Parse(name)
			slog.Debug("classified", "file", name, "episode", identities[i].DisplayLabel())
			return nil
		})
	}
	_ = g.Wait() // classification itself never errors
	return identities
}
