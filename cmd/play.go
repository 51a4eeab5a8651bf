package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/player"
)

var (
	playPort  string
	playTempo int
)

func init() {
	playCmd.Flags().StringVar(&playPort, "port", "", "MIDI out port name (defaults to MOTIF_MIDI_PORT)")
	playCmd.Flags().IntVar(&playTempo, "tempo", constants.DefaultTempo, "quarter notes per minute for notation files")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <file>...",
	Short: "Plays notation or a MIDI file",
	Long: `Plays a MIDI file, or notation files as one track each. Playback goes to
a MIDI out port when one is selected and to an external player otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		song, err := loadSong(args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		defer gomidi.CloseDriver()

		if playPort != "" {
			return player.PlayPort(ctx, song, playPort)
		}
		return player.Play(ctx, song)
	},
}

func loadSong(args []string) (midi.Song, error) {
	if len(args) == 1 {
		ext := strings.ToLower(filepath.Ext(args[0]))
		if ext == ".mid" || ext == ".midi" {
			song, err := midi.ReadFile(args[0])
			if err != nil {
				return midi.Song{}, err
			}
			return *song, nil
		}
	}

	var sources []string
	for _, path := range args {
		src, err := file.ReadSource(path)
		if err != nil {
			return midi.Song{}, err
		}
		sources = append(sources, src)
	}
	song, _, err := compileSong(sources, filepath.Base(args[0]), playTempo)
	return song, err
}
