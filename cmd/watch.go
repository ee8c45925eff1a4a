package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/chordwire/chordwire/constants"
	"github.com/chordwire/chordwire/wire"
)

var watchDir string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchDir, "dir", constants.GetLibraryDir(), "directory of .irealb files to watch")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watches a library directory and revalidates playlists on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch()
	},
}

func runWatch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("could not watch %v: %w", watchDir, err)
	}

	// Editors fire bursts of write events per save; debounce so each save
	// triggers one validation.
	debounced := debounce.New(500 * time.Millisecond)
	var mu sync.Mutex
	pending := map[string]bool{}

	validateAll(watchDir)
	fmt.Printf("watching %v\n", watchDir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, constants.PlaylistExt) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			mu.Lock()
			pending[event.Name] = true
			mu.Unlock()
			debounced(func() {
				mu.Lock()
				paths := make([]string, 0, len(pending))
				for p := range pending {
					paths = append(paths, p)
				}
				pending = map[string]bool{}
				mu.Unlock()
				for _, p := range paths {
					validateFile(p)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func validateAll(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read %v: %v\n", dir, err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), constants.PlaylistExt) {
			continue
		}
		validateFile(filepath.Join(dir, e.Name()))
	}
}

func validateFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%v: %v\n", path, err)
		return
	}
	pl, err := wire.DecodePlaylist(playlistName(path), strings.TrimSpace(string(data)), wire.Identity{})
	if err != nil {
		fmt.Printf("%v: INVALID: %v\n", path, err)
		return
	}
	fmt.Printf("%v: ok (%v songs)\n", path, len(pl.Songs))
}
