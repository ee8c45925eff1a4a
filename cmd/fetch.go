package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/constants"
	"github.com/chordwire/chordwire/fetch"
)

var (
	fetchURL string
	fetchOut string
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "URL of the playlists page")
	fetchCmd.Flags().StringVar(&fetchOut, "output", constants.GetLibraryDir(), "directory to save the downloaded playlists")
	fetchCmd.MarkFlagRequired("url")
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Downloads every irealb:// playlist linked from a web page",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch()
	},
}

func runFetch() error {
	fmt.Printf("Downloading playlists from: %v\n", fetchURL)
	found, err := fetch.Page(fetchURL)
	if err != nil {
		return err
	}
	if err := fetch.SaveAll(fetchOut, found); err != nil {
		return err
	}
	for _, f := range found {
		fmt.Printf("Saved playlist: %v\n", f.Name)
	}
	return nil
}
