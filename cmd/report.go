package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarises the last build",
	Long:  `Reads the catalog in the output directory and summarises it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := util.ReadBinary[model.Catalog](util.GetCatalogPath())
		if err != nil {
			return err
		}
		fmt.Println(report(catalog))
		return nil
	},
}

type catalogReport struct {
	numFiles    int
	numNotes    int64
	numTicks    int64
	numWarnings int
	longest     string
}

func analyzeCatalog(c model.Catalog) catalogReport {
	var r catalogReport
	var notes, ticks []int
	var longest int
	for _, e := range c.Entries {
		r.numFiles++
		notes = append(notes, e.Notes)
		ticks = append(ticks, e.NextOffset)
		r.numWarnings += len(e.Warnings)
		if e.NextOffset > longest {
			longest = e.NextOffset
			r.longest = e.Source
		}
	}
	r.numNotes = util.Sum(notes)
	r.numTicks = util.Sum(ticks)
	return r
}

func report(c model.Catalog) string {
	r := analyzeCatalog(c)

	var rows [][]string
	for _, e := range c.Entries {
		rows = append(rows, []string{
			fmt.Sprint(e.FileNum), e.Source, e.MidiFile,
			fmt.Sprint(e.Notes), fmt.Sprint(e.NextOffset), fmt.Sprint(len(e.Warnings)),
		})
	}
	res := titleStyle.Render("built "+c.Built.Format("2006-01-02 15:04:05")) + "\n"
	res += renderTable([]string{"#", "source", "midi", "notes", "ticks", "warnings"}, rows) + "\n"
	res += fmt.Sprintf("files: %v\nnotes: %v\nticks: %v (%.1f bars of 4/4)\nwarnings: %v\n",
		r.numFiles, r.numNotes, r.numTicks, float64(r.numTicks)/64, r.numWarnings)
	if r.longest != "" {
		res += fmt.Sprintf("longest: %v\n", r.longest)
	}
	return res
}
