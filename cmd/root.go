package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "motif",
	Short: "Compose with point sequences",
	Long: `motif compiles a small LilyPond-like note language into offset
sequences and writes, plays, inspects and serves them as MIDI.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
