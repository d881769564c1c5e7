package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yoclaire/petesky-image-bot/pkg/episode"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>",
	Short: "Parse a screenshot filename (no directory scan)",
	Long: `Parse a single screenshot filename and show the extracted episode
identity.

Examples:
  petesky parse "1x01 - Inflatable Face.jpg"
  petesky parse --file names.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read filenames from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	var names []string
	if inputFile != "" {
		read, err := readNamesFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = read
	} else if len(args) > 0 {
		names = []string{args[0]}
	} else {
		return fmt.Errorf("usage: petesky parse <filename> or petesky parse --file <list>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parser := episode.NewParser(cfg.SeriesInfo())

	identities := make([]episode.Identity, len(names))
	for i, name := range names {
		identities[i] = parser.Parse(name)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		results := make([]identityJSON, len(identities))
		for i, id := range identities {
			results[i] = identityToJSON(id)
		}
		var payload any = results
		if len(results) == 1 {
			payload = results[0]
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	for i, id := range identities {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printIdentity(out, names[i], id)
	}
	return nil
}

func printIdentity(w io.Writer, name string, id episode.Identity) {
	fmt.Fprintf(w, "Filename:   %s\n", name)
	if id.Numbered {
		fmt.Fprintf(w, "Season:     %d\n", id.Season)
		fmt.Fprintf(w, "Episode:    %d\n", id.Episode)
		fmt.Fprintf(w, "Canonical:  %s\n", id.CanonicalID())
		fmt.Fprintf(w, "Special:    %s\n", yesNo(id.IsSpecial()))
	}
	fmt.Fprintf(w, "Title:      %s\n", valueOrNone(id.Title))
	fmt.Fprintf(w, "Resolved:   %s\n", yesNo(!id.Unresolved()))
}

// readNamesFile reads filenames from a file, one per line; blank lines and
// # comments are skipped.
func readNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
