package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvente/gpxtrace/gpx"
	"github.com/rvente/gpxtrace/locator"
)

var (
	locateGPXPath string
	locateTimeStr string
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve the track location at one timestamp",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := time.Parse(time.RFC3339, locateTimeStr)
		if err != nil {
			return fmt.Errorf("unparsable --time (want RFC3339): %w", err)
		}

		track, warnings, err := gpx.ParseFile(locateGPXPath)
		if err != nil {
			return err
		}
		agg := gpx.NewWarningAggregator()
		agg.AddAll(warnings)
		agg.LogAll(locateGPXPath)

		loc, err := locator.Locate(track, at)
		if err != nil {
			return err
		}
		fmt.Printf("lon=%.6f lat=%.6f in_range=%t\n", loc.Lon, loc.Lat, loc.InRange)
		return nil
	},
}

func init() {
	locateCmd.Flags().StringVar(&locateGPXPath, "gpx", "", "path to the GPX track file")
	locateCmd.Flags().StringVar(&locateTimeStr, "time", "", "query timestamp (RFC3339)")
	_ = locateCmd.MarkFlagRequired("gpx")
	_ = locateCmd.MarkFlagRequired("time")
	rootCmd.AddCommand(locateCmd)
}
