package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseOffset int

func init() {
	parseCmd.Flags().IntVar(&parseOffset, "offset", 0, "tick at which the passage starts")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parses notation and prints its points",
	Long:  `Parses notation and prints the resulting points. Use - to read standard input.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := compileFile(args[0], parseOffset)
		if err != nil {
			return err
		}
		fmt.Println(pointsTable(res.Sequence))
		fmt.Printf("next offset: %v\n", res.Sequence.NextOffset())
		for _, w := range res.Warnings {
			fmt.Println(warnStyle.Render("warning: " + w.String()))
		}
		return nil
	},
}
