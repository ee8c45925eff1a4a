package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/fetch"
	"github.com/chordwire/chordwire/midi"
	"github.com/chordwire/chordwire/wire"
)

var exportDir string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory for the .mid files")
}

var exportCmd = &cobra.Command{
	Use:   "export <file.irealb>",
	Short: "Exports each song of a playlist as a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

func runExport(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pl, err := wire.DecodePlaylist(playlistName(path), strings.TrimSpace(string(data)), wire.Identity{})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return err
	}
	for _, song := range pl.Songs {
		out := filepath.Join(exportDir, fetch.SafeName(song.Title)+".mid")
		if err := midi.WriteFile(song, out); err != nil {
			return fmt.Errorf("could not export %v: %w", song.Title, err)
		}
		fmt.Printf("wrote %v\n", out)
	}
	return nil
}
