package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultRequestTimeout is applied when request_timeout is absent from the file.
const DefaultRequestTimeout = 10 * time.Second

// Config is the top-level esdash configuration.
type Config struct {
	Clusters       []ClusterConfig `yaml:"clusters"`
	LogFile        string          `yaml:"log_file"`
	RequestTimeout Duration        `yaml:"request_timeout"`
}

// ClusterConfig identifies one Elasticsearch cluster and how to reach it.
type ClusterConfig struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Insecure bool   `yaml:"insecure"`
}

// Duration wraps time.Duration so it can be written as "10s" in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = Duration(DefaultRequestTimeout)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that at least one cluster is configured and that every
// cluster has a unique name and an http(s) endpoint.
func (c Config) Validate() error {
	if len(c.Clusters) == 0 {
		return fmt.Errorf("at least one cluster is required")
	}

	seen := make(map[string]struct{}, len(c.Clusters))
	for i, cluster := range c.Clusters {
		if cluster.Name == "" {
			return fmt.Errorf("cluster[%d]: name is required", i)
		}
		if _, dup := seen[cluster.Name]; dup {
			return fmt.Errorf("cluster[%d]: duplicate name %q", i, cluster.Name)
		}
		seen[cluster.Name] = struct{}{}

		u, err := url.Parse(cluster.Endpoint)
		if err != nil {
			return fmt.Errorf("cluster %q: invalid endpoint: %w", cluster.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("cluster %q: endpoint scheme must be http or https, got %q", cluster.Name, u.Scheme)
		}
		if u.Hostname() == "" {
			return fmt.Errorf("cluster %q: endpoint host is required", cluster.Name)
		}
	}
	return nil
}

// ClusterNames returns the configured cluster names in file order.
func (c Config) ClusterNames() []string {
	names := make([]string, len(c.Clusters))
	for i, cluster := range c.Clusters {
		names[i] = cluster.Name
	}
	return names
}

// DefaultPath returns the default config file location
// (~/.config/esdash/config.yaml), or "" when the home dir is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "esdash", "config.yaml")
}
