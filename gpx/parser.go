package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNotGPX reports a source that cannot yield a track at all: unreadable,
// empty, below the minimum plausible size, or not well-formed XML. No partial
// track is returned alongside it.
var ErrNotGPX = errors.New("gpx: not a usable GPX document")

// minFileSize is the smallest byte count a GPX file can plausibly have.
// Anything below it is treated as "not a GPX file".
const minFileSize = 10

// element identifies which recognized element the parser is currently inside.
type element int

const (
	elemNone element = iota
	elemTrkpt
	elemTime
	elemEle
)

// candidate is a waypoint under construction. Presence of each required field
// is tracked explicitly; there are no NaN sentinels.
type candidate struct {
	wp      Waypoint
	hasLon  bool
	hasLat  bool
	hasTime bool
	invalid bool
}

// parser is the per-call state threaded through the XML event loop. Each
// Parse call owns its own parser, so concurrent parses never interfere.
type parser struct {
	current  element
	cand     *candidate
	points   []Waypoint
	warnings []Warning
}

// Parse consumes a GPX document from r and returns the ordered track of
// accepted points together with the recoverable anomalies encountered.
//
// Every trkpt with parseable lon/lat attributes and a parseable ISO-8601 time
// child is accepted; elevation is best-effort and defaults to 0. Structural
// anomalies (nested trkpt, orphan time/ele, missing attributes, bad time text)
// invalidate at most the point they concern and are reported as warnings, so
// the best possible track is extracted from an imperfect file. Only an XML
// well-formedness error is fatal.
func Parse(r io.Reader) (*Track, []Warning, error) {
	p := &parser{}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrNotGPX, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			p.startElement(t)
		case xml.EndElement:
			p.endElement(t)
		case xml.CharData:
			p.text(string(t))
		}
	}
	return &Track{points: p.points}, p.warnings, nil
}

// ParseBytes parses an in-memory GPX document, rejecting buffers too small to
// be a GPX file.
func ParseBytes(data []byte) (*Track, []Warning, error) {
	if len(data) < minFileSize {
		return nil, nil, fmt.Errorf("%w: %d bytes is below the minimum GPX size", ErrNotGPX, len(data))
	}
	return Parse(bytes.NewReader(data))
}

// ParseFile reads and parses the GPX file at path.
func ParseFile(path string) (*Track, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotGPX, err)
	}
	return ParseBytes(data)
}

func (p *parser) warn(kind, detail string) {
	p.warnings = append(p.warnings, Warning{Kind: kind, Detail: detail})
}

func (p *parser) startElement(se xml.StartElement) {
	switch se.Name.Local {
	case "trkpt":
		if p.cand != nil {
			// Previous trkpt never closed; its data cannot be trusted.
			p.warn(WarningNestedTrkpt, fmt.Sprintf("point %d", len(p.points)))
		}
		p.cand = &candidate{}
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "lon":
				if v, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64); err == nil {
					p.cand.wp.Lon = v
					p.cand.hasLon = true
				}
			case "lat":
				if v, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64); err == nil {
					p.cand.wp.Lat = v
					p.cand.hasLat = true
				}
			}
		}
		if !p.cand.hasLon || !p.cand.hasLat {
			// Keep the candidate open so child time/ele text has somewhere
			// to go, but it will be discarded on close.
			p.cand.invalid = true
			p.warn(WarningMissingLonLat, fmt.Sprintf("point %d", len(p.points)))
		}
		p.current = elemTrkpt
	case "time":
		if p.cand == nil {
			p.warn(WarningOrphanElement, "time")
			return
		}
		p.current = elemTime
	case "ele":
		if p.cand == nil {
			p.warn(WarningOrphanElement, "ele")
			return
		}
		p.current = elemEle
	}
}

func (p *parser) endElement(ee xml.EndElement) {
	if ee.Name.Local == "trkpt" && p.cand != nil {
		if !p.cand.invalid && p.cand.hasTime {
			p.points = append(p.points, p.cand.wp)
		} else if !p.cand.invalid && !p.cand.hasTime {
			p.warn(WarningMissingTimestamp, fmt.Sprintf("point %d", len(p.points)))
		}
		p.cand = nil
	}
	p.current = elemNone
}

func (p *parser) text(text string) {
	if p.cand == nil {
		return
	}

	switch p.current {
	case elemTime:
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(text))
		if err != nil {
			p.cand.invalid = true
			p.warn(WarningBadTimestamp, strings.TrimSpace(text))
			return
		}
		p.cand.wp.Time = ts
		p.cand.hasTime = true
	case elemEle:
		// Elevation is best-effort: unparsable text leaves the default 0
		// and does not invalidate the point.
		if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			p.cand.wp.Ele = v
		}
	}
}
