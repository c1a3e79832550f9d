package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rvente/gpxtrace"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gpxtrace",
	Short: "Resolve locations from GPX track files by timestamp",
	Long: `gpxtrace parses GPX track files and answers point-in-time location
queries against them: given a timestamp it reports the longitude/latitude of
the bracketing track point and whether the timestamp falls inside the track's
recorded time span.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	gpxtrace.InitLogging()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
