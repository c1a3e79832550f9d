package gpxtrace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rvente/gpxtrace/gpx"
)

// ErrUnknownTrack reports a track name outside the configured directory or
// with no file behind it.
var ErrUnknownTrack = errors.New("unknown track")

type cacheEntry struct {
	track    *gpx.Track
	modTime  time.Time
	loadedAt time.Time
}

// TrackCache parses each GPX file once and serves the frozen track to every
// subsequent query. Entries are invalidated when the file's mtime changes or
// the TTL elapses (TTL 0 means entries never expire).
type TrackCache struct {
	dir string
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

func NewTrackCache(dir string, ttl time.Duration) *TrackCache {
	return &TrackCache{
		dir:     dir,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

// Len reports the number of tracks currently cached.
func (c *TrackCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the parsed track for a file name inside the cache directory,
// parsing it on first use. Warnings are logged once, at load time.
func (c *TrackCache) Get(name string) (*gpx.Track, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	path := filepath.Join(c.dir, name)

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}

	c.mu.RLock()
	entry := c.entries[name]
	c.mu.RUnlock()
	if entry != nil && entry.modTime.Equal(fi.ModTime()) && !c.expired(entry) {
		return entry.track, nil
	}

	track, warnings, err := gpx.ParseFile(path)
	if err != nil {
		return nil, err
	}
	agg := gpx.NewWarningAggregator()
	agg.AddAll(warnings)
	agg.LogAll(name)

	c.mu.Lock()
	c.entries[name] = &cacheEntry{track: track, modTime: fi.ModTime(), loadedAt: time.Now()}
	c.mu.Unlock()
	return track, nil
}

func (c *TrackCache) expired(entry *cacheEntry) bool {
	return c.ttl > 0 && time.Since(entry.loadedAt) > c.ttl
}
