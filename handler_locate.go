package gpxtrace

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rvente/gpxtrace/locator"
)

type locateResponse struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	InRange   bool    `json:"in_range"`
}

func handleLocate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name, err := resolveTrackParam(r.URL.Query().Get("track"), defaultTrack)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	at, err := parseTimeParam(r.URL.Query().Get("time"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	track, err := tracks.Get(name)
	if err != nil {
		if errors.Is(err, ErrUnknownTrack) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusBadRequest)
		}
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	loc, err := locator.Locate(track, at)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	_ = json.NewEncoder(w).Encode(locateResponse{
		Longitude: loc.Lon,
		Latitude:  loc.Lat,
		InRange:   loc.InRange,
	})
}

type summaryResponse struct {
	PointCount int     `json:"point_count"`
	StartTime  string  `json:"start_time,omitempty"`
	EndTime    string  `json:"end_time,omitempty"`
	DurationS  int64   `json:"duration_seconds"`
	DistanceKM float64 `json:"distance_km"`
}

func handleTrackSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name, err := resolveTrackParam(r.URL.Query().Get("track"), defaultTrack)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	track, err := tracks.Get(name)
	if err != nil {
		if errors.Is(err, ErrUnknownTrack) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusBadRequest)
		}
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	s := track.Summary()
	resp := summaryResponse{
		PointCount: s.PointCount,
		DurationS:  int64(s.Duration.Seconds()),
		DistanceKM: s.DistanceKM,
	}
	if s.PointCount > 0 {
		resp.StartTime = s.StartTime.UTC().Format(time.RFC3339)
		resp.EndTime = s.EndTime.UTC().Format(time.RFC3339)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
