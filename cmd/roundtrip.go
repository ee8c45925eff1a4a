package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/wire"
)

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <file.irealb>",
	Short: "Checks that a playlist file survives decode+encode byte-exactly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoundtrip(args[0])
	},
}

func runRoundtrip(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	original := strings.TrimSpace(string(data))
	pl, err := wire.DecodePlaylist(playlistName(path), original, wire.Identity{})
	if err != nil {
		return err
	}
	encoded, err := wire.EncodePlaylist(pl, wire.Identity{})
	if err != nil {
		return err
	}
	if !strings.HasPrefix(original, wire.Prefix) {
		encoded = strings.TrimPrefix(encoded, wire.Prefix)
	}
	if encoded == original {
		fmt.Printf("%v: byte-exact (%v songs, %v bytes)\n", path, len(pl.Songs), len(encoded))
		return nil
	}
	pos := firstDiff(original, encoded)
	return fmt.Errorf("%v: re-encoded output diverges at byte %d: %q vs %q",
		path, pos, excerptAt(original, pos), excerptAt(encoded, pos))
}

func firstDiff(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func excerptAt(s string, pos int) string {
	end := pos + 12
	if end > len(s) {
		end = len(s)
	}
	if pos > len(s) {
		pos = len(s)
	}
	return s[pos:end]
}
