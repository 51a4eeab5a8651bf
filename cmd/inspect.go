package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/chord"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/sample"
)

var (
	inspectFrom    int
	inspectPreview int
)

func init() {
	inspectCmd.Flags().IntVar(&inspectFrom, "from", 0, "only show notes from this tick on")
	inspectCmd.Flags().IntVar(&inspectPreview, "preview", 0, "show at most this many notes per track")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Reads a MIDI file and lists each track's points and the chords they form.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		song, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		inspect(*song)
		return nil
	},
}

func inspect(song midi.Song) {
	if inspectFrom > 0 || inspectPreview > 0 {
		n := inspectPreview
		if n == 0 {
			n = math.MaxInt
		}
		song = sample.Song(song, inspectFrom, n)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%v (%v bpm)", song.Title, song.Tempo)))
	for i, tr := range song.Tracks {
		fmt.Printf("\ntrack %v\n", i+1)
		fmt.Println(pointsTable(tr))

		var rows [][]string
		for _, c := range chord.Group(tr) {
			formed := "release"
			if c.FormedByNoteOn {
				formed = "attack"
			}
			rows = append(rows, []string{fmt.Sprint(c.Offset), chord.Key(c.Pitches), formed})
		}
		if len(rows) > 0 {
			fmt.Println(renderTable([]string{"offset", "chord", "formed by"}, rows))
		}
	}
	if len(song.Tracks) == 0 {
		fmt.Println(strings.TrimSpace(dimStyle.Render("no notes")))
	}
}
