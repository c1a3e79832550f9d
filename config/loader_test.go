package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
tracks:
  dir: /var/lib/gpxtrace
  default: ride.gpx
  cacheTTLSeconds: 60
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Tracks.Dir != "/var/lib/gpxtrace" || cfg.Tracks.Default != "ride.gpx" {
		t.Errorf("unexpected tracks config: %+v", cfg.Tracks)
	}
	if cfg.Tracks.CacheTTLSeconds != 60 {
		t.Errorf("expected TTL 60, got %d", cfg.Tracks.CacheTTLSeconds)
	}
}

func TestLoad_DefaultPort(t *testing.T) {
	path := writeConfig(t, `
tracks:
  dir: /tmp/tracks
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("loading a non-existent config should return an error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "tracks: [dir: {")
	if _, err := Load(path); err == nil {
		t.Error("invalid YAML should return an error")
	}
}

func TestLoad_MissingTracksDir(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
`)
	if _, err := Load(path); err == nil {
		t.Error("config without tracks.dir should fail validation")
	}
}
