package gpxtrace

import (
	"encoding/json"
	"strings"
	"time"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseTimeParam parses the query timestamp, RFC3339 with optional fractional
// seconds.
func parseTimeParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &QueryError{Msg: "You must provide a time parameter (RFC3339)."}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &QueryError{Msg: "Unparsable time parameter: " + s}
	}
	return ts, nil
}

// resolveTrackParam picks the track file name, falling back to the configured
// default when the parameter is absent.
func resolveTrackParam(name, fallback string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	if name == "" {
		return "", &QueryError{Msg: "You must provide a track parameter."}
	}
	return name, nil
}

func buildErrorPayload(msg string) []byte {
	type errBody struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	var e errBody
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}
