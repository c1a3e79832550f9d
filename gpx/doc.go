// Package gpx parses GPX track files into an ordered, immutable sequence of
// timestamped waypoints.
//
// The parser is a small state machine over the streaming XML token events:
// it recognizes trkpt elements with lon/lat attributes and their time and ele
// children, validates every candidate point before acceptance, and keeps going
// past malformed points. Field-collected GPX files routinely contain minor
// irregularities, so the contract is best effort: extract every usable point,
// report everything else as a warning, and fail only when the source is not a
// usable XML document at all.
//
// Basic usage:
//
//	track, warnings, err := gpx.ParseFile("ride.gpx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	agg := gpx.NewWarningAggregator()
//	agg.AddAll(warnings)
//	agg.LogAll("ride.gpx")
//
// A parsed Track is frozen: it is safe to share across goroutines for
// concurrent read-only queries without locking.
package gpx
