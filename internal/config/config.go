package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pravsels/deepwork/internal/platform"
)

type Config struct {
	HostsPath   string `yaml:"hosts_path"`   // system hosts file to edit
	Loopback    string `yaml:"loopback"`     // address blocked domains resolve to
	Marker      string `yaml:"marker"`       // comment line delimiting the managed block
	DomainsFile string `yaml:"domains_file"` // default domain list when none given inline
	LogLevel    string `yaml:"log_level"`    // "debug" | "info" | "warn" | "error"
	PrettyLog   bool   `yaml:"pretty_log"`   // true => colored dev output, false => JSON
}

var ConfigDir = "/etc/deepwork"

const (
	defaultMarker      = "# Blocked by deepwork"
	defaultLoopback    = "127.0.0.1"
	defaultDomainsFile = "distractions.txt"
)

func Default() *Config {
	return &Config{
		HostsPath:   platform.HostsPath(),
		Loopback:    defaultLoopback,
		Marker:      defaultMarker,
		DomainsFile: defaultDomainsFile,
		LogLevel:    "info",
		PrettyLog:   true,
	}
}

// Load reads the YAML config at path, or the default location when
// path is empty. A missing file at the default location is not an
// error: all settings have workable defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = filepath.Join(ConfigDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HostsPath == "" {
		return fmt.Errorf("hosts_path must not be empty")
	}
	if !strings.HasPrefix(c.Marker, "#") {
		return fmt.Errorf("marker must be a comment line (start with #)")
	}
	if c.Loopback == "" {
		return fmt.Errorf("loopback must not be empty")
	}
	return nil
}
