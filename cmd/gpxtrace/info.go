package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvente/gpxtrace/gpx"
)

var infoGPXPath string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a summary of a GPX track file",
	RunE: func(cmd *cobra.Command, args []string) error {
		track, warnings, err := gpx.ParseFile(infoGPXPath)
		if err != nil {
			return err
		}
		agg := gpx.NewWarningAggregator()
		agg.AddAll(warnings)
		agg.LogAll(infoGPXPath)

		s := track.Summary()
		fmt.Printf("points:   %d\n", s.PointCount)
		if s.PointCount > 0 {
			fmt.Printf("start:    %s\n", s.StartTime.UTC().Format(time.RFC3339))
			fmt.Printf("end:      %s\n", s.EndTime.UTC().Format(time.RFC3339))
			fmt.Printf("duration: %s\n", s.Duration)
			fmt.Printf("distance: %.2f km\n", s.DistanceKM)
		}
		if n := len(warnings); n > 0 {
			fmt.Printf("warnings: %d\n", n)
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoGPXPath, "gpx", "", "path to the GPX track file")
	_ = infoCmd.MarkFlagRequired("gpx")
	rootCmd.AddCommand(infoCmd)
}
