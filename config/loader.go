package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPort is used when the config file does not set server.port.
const DefaultPort = 8417

// Load reads and validates the application configuration. When path is empty
// the usual locations are tried in order.
func Load(path string) (AppConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "config.yaml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
