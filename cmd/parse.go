package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/wire"
)

var parseJSON bool

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the playlist as JSON instead of a summary")
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.irealb>",
	Short: "Parses a playlist file",
	Long:  `Parses a playlist file and prints a per-song summary, or the full structured playlist with --json. Exits nonzero with the failure position when the file does not parse.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args[0])
	},
}

func runParse(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pl, err := wire.DecodePlaylist(playlistName(path), strings.TrimSpace(string(data)), wire.Identity{})
	if err != nil {
		return err
	}
	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pl)
	}
	fmt.Printf("%v: %v songs\n", pl.Name, len(pl.Songs))
	for _, s := range pl.Songs {
		fmt.Printf("  %v - %v [%v, %v, %v bpm] %v cells\n",
			s.Title, s.Composer, s.Style, wire.KeyString(s.Key), s.BPM, len(s.Cells))
	}
	return nil
}
