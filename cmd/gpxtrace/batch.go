package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/rvente/gpxtrace/gpx"
	"github.com/rvente/gpxtrace/locator"
)

var (
	batchGPXPath string
	batchTimes   string
	batchOutPath string
	batchNoBar   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve locations for a file of timestamps, one per line",
	Long: `Reads RFC3339 timestamps from --times (one per line), resolves each
against the track and writes CSV rows time,longitude,latitude,in_range.
Lines that fail to parse are logged and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		track, warnings, err := gpx.ParseFile(batchGPXPath)
		if err != nil {
			return err
		}
		agg := gpx.NewWarningAggregator()
		agg.AddAll(warnings)
		agg.LogAll(batchGPXPath)

		lines, err := readTimestampLines(batchTimes)
		if err != nil {
			return err
		}

		out := os.Stdout
		if batchOutPath != "" {
			f, err := os.Create(batchOutPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		var bar *progressbar.ProgressBar
		if !batchNoBar && batchOutPath != "" {
			bar = progressbar.NewOptions(len(lines),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("resolving"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetPredictTime(true),
				progressbar.OptionThrottle(100*time.Millisecond),
			)
		}

		w := csv.NewWriter(out)
		if err := w.Write([]string{"time", "longitude", "latitude", "in_range"}); err != nil {
			return err
		}
		for _, line := range lines {
			if bar != nil {
				_ = bar.Add(1)
			}
			at, err := time.Parse(time.RFC3339, line)
			if err != nil {
				log.Printf("skipping unparsable timestamp %q", line)
				continue
			}
			loc, err := locator.Locate(track, at)
			if err != nil {
				return err
			}
			rec := []string{
				line,
				strconv.FormatFloat(loc.Lon, 'f', 6, 64),
				strconv.FormatFloat(loc.Lat, 'f', 6, 64),
				strconv.FormatBool(loc.InRange),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		if bar != nil {
			_ = bar.Finish()
		}
		w.Flush()
		return w.Error()
	},
}

func readTimestampLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timestamps: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func init() {
	batchCmd.Flags().StringVar(&batchGPXPath, "gpx", "", "path to the GPX track file")
	batchCmd.Flags().StringVar(&batchTimes, "times", "", "file of RFC3339 timestamps, one per line")
	batchCmd.Flags().StringVar(&batchOutPath, "out", "", "CSV output path (default stdout)")
	batchCmd.Flags().BoolVar(&batchNoBar, "no-progress", false, "disable the progress bar")
	_ = batchCmd.MarkFlagRequired("gpx")
	_ = batchCmd.MarkFlagRequired("times")
	rootCmd.AddCommand(batchCmd)
}
