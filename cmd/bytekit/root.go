package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bytekit",
	Short: "Bytekit - byte array toolkit",
	Long: `Bytekit decodes, searches, joins and splits byte sequences written as
hexadecimal text. Input accepts whitespace-separated hex pairs like
"FE 05 4A"; an odd leading digit is zero-padded.`,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
