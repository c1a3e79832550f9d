package gpxtrace

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status       string `json:"status"`
	TracksLoaded int    `json:"tracks_loaded"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	loaded := 0
	if tracks != nil {
		loaded = tracks.Len()
	}
	resp := healthResponse{
		Status:       "ok",
		TracksLoaded: loaded,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
