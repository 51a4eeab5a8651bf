package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/midi"
)

var (
	watchOut   string
	watchDelay time.Duration
)

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "out.mid", "output file")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 500*time.Millisecond, "quiet time before recompiling")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>...",
	Short: "Recompiles notation to MIDI whenever it changes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		rebuild := func() {
			if err := rebuildSong(args, watchOut); err != nil {
				log.Printf("%v", err)
				return
			}
			fmt.Printf("Rebuilt %v at %v\n", watchOut, time.Now().Format(time.Kitchen))
		}
		rebuild()

		w, paths, err := newWatcher(args)
		if err != nil {
			return err
		}
		defer w.Close()

		debounced := debounce.New(watchDelay)
		watchEvents(ctx, w, paths, func() { debounced(rebuild) })
		return nil
	},
}

func rebuildSong(paths []string, out string) error {
	var sources []string
	for _, path := range paths {
		src, err := file.ReadSource(path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}
	song, _, err := compileSong(sources, "", constants.DefaultTempo)
	if err != nil {
		return err
	}
	return midi.WriteFile(out, song)
}

// newWatcher watches the directories holding paths. Editors often replace
// a file instead of writing it in place, so the file itself is not enough.
func newWatcher(paths []string) (*fsnotify.Watcher, []string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not create file watcher")
	}
	var watched []string
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, nil, errors.Wrapf(err, "could not resolve %v", p)
		}
		watched = append(watched, abs)
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, nil, errors.Wrapf(err, "could not watch %v", dir)
		}
	}
	return w, watched, nil
}

// watchEvents calls onChange for every write or creation of one of paths
// until ctx is done.
func watchEvents(ctx context.Context, w *fsnotify.Watcher, paths []string, onChange func()) {
	wanted := make(map[string]bool)
	for _, p := range paths {
		wanted[p] = true
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if wanted[filepath.Clean(ev.Name)] && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}
