package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/transform"
)

var (
	midiOut      string
	midiTitle    string
	midiTempo    int
	midiDynamics []string
)

func init() {
	midiCmd.Flags().StringVarP(&midiOut, "out", "o", "out.mid", "output file")
	midiCmd.Flags().StringVar(&midiTitle, "title", "", "sequence name stored in the file")
	midiCmd.Flags().IntVar(&midiTempo, "tempo", constants.DefaultTempo, "quarter notes per minute")
	midiCmd.Flags().StringSliceVar(&midiDynamics, "dynamics", nil, "marking, or start,end for a ramp (e.g. p,ff)")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <file>...",
	Short: "Compiles notation to a MIDI file",
	Long:  `Compiles each notation file into its own track of one MIDI file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sources []string
		for _, path := range args {
			src, err := file.ReadSource(path)
			if err != nil {
				return err
			}
			sources = append(sources, src)
		}

		song, _, err := compileSong(sources, midiTitle, midiTempo)
		if err != nil {
			return err
		}
		if len(midiDynamics) > 0 {
			dyn, err := transform.Dynamics(midiDynamics[0], midiDynamics[1:]...)
			if err != nil {
				return err
			}
			for i, tr := range song.Tracks {
				song.Tracks[i] = tr.Transform(dyn)
			}
		}

		if err := midi.WriteFile(midiOut, song); err != nil {
			return err
		}
		fmt.Printf("Wrote %v tracks to %v\n", len(song.Tracks), midiOut)
		return nil
	},
}
