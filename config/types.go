package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// TracksConfig describes where GPX track files live and how parsed tracks
// are cached.
type TracksConfig struct {
	Dir             string `yaml:"dir" validate:"required"`
	Default         string `yaml:"default"`
	CacheTTLSeconds int    `yaml:"cacheTTLSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Tracks TracksConfig `yaml:"tracks" validate:"required"`
}
