package gpx

import (
	"math"
	"time"
)

// Waypoint is a single timestamped track point. Once a Waypoint has been
// accepted into a Track it is never mutated.
type Waypoint struct {
	Lon  float64
	Lat  float64
	Ele  float64
	Time time.Time
}

// Track is the ordered sequence of waypoints accepted from one GPX file, in
// file order. File order is trusted; the locator assumes non-decreasing
// timestamps across consecutive points.
type Track struct {
	points []Waypoint
}

// NewTrack builds a track from an already ordered point slice. Used by tests
// and callers that obtain points from elsewhere; Parse is the normal path.
func NewTrack(points []Waypoint) *Track {
	return &Track{points: points}
}

// Len returns the number of accepted waypoints.
func (t *Track) Len() int { return len(t.points) }

// At returns the waypoint at index i.
func (t *Track) At(i int) Waypoint { return t.points[i] }

// Points returns the underlying waypoint slice. Callers must treat it as
// read-only; the track is shared without locking.
func (t *Track) Points() []Waypoint { return t.points }

// Start returns the first waypoint, or a zero Waypoint for an empty track.
func (t *Track) Start() Waypoint {
	if len(t.points) == 0 {
		return Waypoint{}
	}
	return t.points[0]
}

// End returns the last waypoint, or a zero Waypoint for an empty track.
func (t *Track) End() Waypoint {
	if len(t.points) == 0 {
		return Waypoint{}
	}
	return t.points[len(t.points)-1]
}

// Duration is the time spanned between the first and last waypoint.
func (t *Track) Duration() time.Duration {
	if len(t.points) < 2 {
		return 0
	}
	return t.End().Time.Sub(t.Start().Time)
}

// Summary holds aggregate figures for one track.
type Summary struct {
	PointCount int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	DistanceKM float64
}

// Summary computes aggregate figures over the accepted points.
func (t *Track) Summary() Summary {
	s := Summary{PointCount: len(t.points)}
	if len(t.points) == 0 {
		return s
	}
	s.StartTime = t.Start().Time
	s.EndTime = t.End().Time
	s.Duration = t.Duration()
	for i := 1; i < len(t.points); i++ {
		prev, cur := t.points[i-1], t.points[i]
		s.DistanceKM += haversineKM(prev.Lat, prev.Lon, cur.Lat, cur.Lon)
	}
	return s
}

const earthRadiusKM = 6371.0

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
