package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"notifier/internal/common/fsutil"
)

// Config holds runtime parameters for the notifier.
// Zero values mean "unspecified" and are replaced by Defaults.
type Config struct {
	Addr       string   `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel   string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat  string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	PolicyFile string   `json:"policy_file" yaml:"policy_file" toml:"policy_file"` // file or directory of policy files
	Sinks      []string `json:"sinks" yaml:"sinks" toml:"sinks"`
	CORS       CORS     `json:"cors" yaml:"cors" toml:"cors"`
}

// CORS configures the introspection server. Disabled unless Enabled is set.
type CORS struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

const (
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Defaults returns cfg with every unspecified value filled in.
func (cfg Config) Defaults() Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if len(cfg.Sinks) == 0 {
		cfg.Sinks = []string{"log", "metrics"}
	}
	if cfg.CORS.Enabled {
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
		if len(cfg.CORS.AllowedMethods) == 0 {
			cfg.CORS.AllowedMethods = []string{"GET", "OPTIONS"}
		}
	}
	return cfg
}

// Validate rejects values no component can act on.
func (cfg Config) Validate() error {
	switch strings.ToLower(cfg.LogFormat) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.LogFormat)
	}
	if p := cfg.PolicyFile; p != "" && !fsutil.IsFile(p) && !fsutil.IsDir(p) {
		return fmt.Errorf("policy file not found: %s", p)
	}
	return nil
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
// A relative policy_file is resolved against the directory of path.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if cfg.PolicyFile, err = fsutil.Resolve(filepath.Dir(path), cfg.PolicyFile); err != nil {
		return cfg, err
	}
	return cfg, nil
}
