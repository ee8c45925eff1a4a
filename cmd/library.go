package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/store"
	"github.com/chordwire/chordwire/wire"
)

var pullOut string

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(pushCmd)
	libraryCmd.AddCommand(pullCmd)
	pullCmd.Flags().StringVar(&pullOut, "out", "", "write the playlist to this file instead of stdout")
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Pushes playlists to and pulls them from the shared store",
}

var pushCmd = &cobra.Command{
	Use:   "push <file.irealb>",
	Short: "Validates a playlist file and uploads it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPush(args[0])
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull <name>",
	Short: "Downloads a playlist by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPull(args[0])
	},
}

func runPush(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	raw := strings.TrimSpace(string(data))
	name := playlistName(path)

	// Refuse to upload anything that does not decode.
	if _, err := wire.DecodePlaylist(name, raw, wire.Identity{}); err != nil {
		return fmt.Errorf("refusing to push invalid playlist: %w", err)
	}
	st, err := store.New()
	if err != nil {
		return err
	}
	if err := st.PutPlaylist(name, raw); err != nil {
		return err
	}
	fmt.Printf("pushed %v\n", name)
	return nil
}

func runPull(name string) error {
	st, err := store.New()
	if err != nil {
		return err
	}
	raw, ok, err := st.GetPlaylist(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no playlist named %q", name)
	}
	if pullOut == "" {
		fmt.Println(raw)
		return nil
	}
	if err := os.WriteFile(pullOut, []byte(raw), 0o644); err != nil {
		return err
	}
	fmt.Printf("pulled %v to %v\n", name, pullOut)
	return nil
}
