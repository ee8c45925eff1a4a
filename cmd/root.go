package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/constants"
)

var rootCmd = &cobra.Command{
	Use:          "chordwire",
	Short:        "Codec and tooling for the iReal Pro irealb:// wire format",
	Long:         `chordwire converts between irealb:// playlist strings and structured lead sheets, and ships small tools around the codec: validation, MIDI export, playlist fetching and a JSON HTTP API.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// playlistName derives a playlist name from a file path, the way the
// original files are named: basename minus the .irealb extension.
func playlistName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, constants.PlaylistExt)
}
