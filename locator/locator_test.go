package locator

import (
	"errors"
	"testing"
	"time"

	"github.com/rvente/gpxtrace/gpx"
)

func testTrack() *gpx.Track {
	return gpx.NewTrack([]gpx.Waypoint{
		{Lon: 1, Lat: 1, Time: time.Unix(100, 0)},
		{Lon: 2, Lat: 2, Time: time.Unix(200, 0)},
		{Lon: 3, Lat: 3, Time: time.Unix(300, 0)},
	})
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name        string
		at          int64
		wantLon     float64
		wantLat     float64
		wantInRange bool
	}{
		{
			name:    "before start",
			at:      50,
			wantLon: 1, wantLat: 1,
			wantInRange: false,
		},
		{
			name:    "bracket start inclusive",
			at:      100,
			wantLon: 1, wantLat: 1,
			wantInRange: true,
		},
		{
			name:    "interior bracket",
			at:      150,
			wantLon: 1, wantLat: 1,
			wantInRange: true,
		},
		{
			name:    "exact interior point",
			at:      200,
			wantLon: 2, wantLat: 2,
			wantInRange: true,
		},
		{
			name:    "second interval",
			at:      250,
			wantLon: 2, wantLat: 2,
			wantInRange: true,
		},
		{
			name:    "at end",
			at:      300,
			wantLon: 3, wantLat: 3,
			wantInRange: false,
		},
		{
			name:    "past end",
			at:      500,
			wantLon: 3, wantLat: 3,
			wantInRange: false,
		},
	}

	track := testTrack()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Locate(track, time.Unix(tt.at, 0))
			if err != nil {
				t.Fatalf("Locate failed: %v", err)
			}
			if loc.Lon != tt.wantLon || loc.Lat != tt.wantLat {
				t.Errorf("expected (%v,%v), got (%v,%v)", tt.wantLon, tt.wantLat, loc.Lon, loc.Lat)
			}
			if loc.InRange != tt.wantInRange {
				t.Errorf("expected in_range=%t, got %t", tt.wantInRange, loc.InRange)
			}
		})
	}
}

func TestLocate_InsufficientData(t *testing.T) {
	tracks := []*gpx.Track{
		gpx.NewTrack(nil),
		gpx.NewTrack([]gpx.Waypoint{{Lon: 1, Lat: 1, Time: time.Unix(100, 0)}}),
	}
	for _, track := range tracks {
		if _, err := Locate(track, time.Unix(100, 0)); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData for %d-point track, got %v", track.Len(), err)
		}
	}
}

func TestLocate_ConcurrentQueries(t *testing.T) {
	track := testTrack()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for at := int64(50); at <= 350; at += 10 {
				if _, err := Locate(track, time.Unix(at, 0)); err != nil {
					t.Errorf("Locate failed at %d: %v", at, err)
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
