package locator

import (
	"errors"
	"time"

	"github.com/rvente/gpxtrace/gpx"
)

// ErrInsufficientData reports a track with fewer than two points, which
// cannot bracket any query time.
var ErrInsufficientData = errors.New("locator: track has fewer than two points")

// Location is the resolved position for a query time. InRange reports whether
// the query fell strictly inside the track's time span; when it did not, Lon
// and Lat still hold the closest known position (first or last point).
type Location struct {
	Lon     float64
	Lat     float64
	InRange bool
}

// Locate scans the track for the consecutive pair of points whose timestamps
// bracket the query time and returns the earlier point's position.
//
// Queries at or past the last point, or before the first, resolve to that end
// point with InRange=false. An exact match on an interior point's timestamp
// resolves to that point with InRange=true. Correct behavior assumes the
// track's timestamps are non-decreasing in file order.
func Locate(track *gpx.Track, at time.Time) (Location, error) {
	points := track.Points()
	if len(points) < 2 {
		return Location{}, ErrInsufficientData
	}

	last := points[0]
	for i, p := range points {
		last = p

		// Out-of-range ends: past the last point, or before this one.
		if i == len(points)-1 && !at.Before(p.Time) {
			return Location{Lon: p.Lon, Lat: p.Lat}, nil
		}
		if at.Before(p.Time) {
			return Location{Lon: p.Lon, Lat: p.Lat}, nil
		}

		if !at.Before(p.Time) && at.Before(points[i+1].Time) {
			return Location{Lon: p.Lon, Lat: p.Lat, InRange: true}, nil
		}
	}

	// Unreachable for a non-decreasing sequence; report the last examined
	// point rather than nothing.
	return Location{Lon: last.Lon, Lat: last.Lat}, nil
}
