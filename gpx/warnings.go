package gpx

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningNestedTrkpt      = "nested_trkpt"
	WarningMissingLonLat    = "missing_lon_lat"
	WarningOrphanElement    = "orphan_element"
	WarningBadTimestamp     = "bad_timestamp"
	WarningMissingTimestamp = "missing_timestamp"
)

// Warning is a recoverable anomaly found while parsing. Warnings never abort
// the parse; they invalidate at most the candidate point they concern.
type Warning struct {
	Kind   string
	Detail string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return w.Kind
	}
	return w.Kind + ": " + w.Detail
}

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects parse warnings and outputs consolidated summaries
// instead of one log line per bad point.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence.
func (w *WarningAggregator) Add(warning Warning) {
	if w.warnings[warning.Kind] == nil {
		w.warnings[warning.Kind] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warning.Kind]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 && warning.Detail != "" {
		info.examples = append(info.examples, warning.Detail)
	}
}

// AddAll records every warning from one parse.
func (w *WarningAggregator) AddAll(warnings []Warning) {
	for _, warning := range warnings {
		w.Add(warning)
	}
}

// LogAll outputs all collected warnings in consolidated format.
func (w *WarningAggregator) LogAll(source string) {
	if len(w.warnings) == 0 {
		return
	}

	for kind, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(kind, source, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(kind, source string, info *warningInfo) string {
	var description, action string

	switch kind {
	case WarningNestedTrkpt:
		description = "trkpt elements opened before the previous one ended"
		action = "Discarding the unterminated point"
	case WarningMissingLonLat:
		description = "trkpt elements with missing or unparsable lon/lat attributes"
		action = "Skipping the point"
	case WarningOrphanElement:
		description = "time/ele elements outside any trkpt"
		action = "Ignoring the element"
	case WarningBadTimestamp:
		description = "trkpt elements with unparsable ISO-8601 time text"
		action = "Skipping the point"
	case WarningMissingTimestamp:
		description = "trkpt elements with no time child"
		action = "Skipping the point"
	default:
		description = "unknown issue"
		action = "Continuing with best-effort parse"
	}

	examplesStr := ""
	if len(info.examples) > 0 {
		examplesStr = ". Examples: " + strings.Join(info.examples, ", ")
	}

	return fmt.Sprintf("GPX file %s has %s (%d occurrences). %s%s",
		source, description, info.count, action, examplesStr)
}
