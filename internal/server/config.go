package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sanonone/grafdb/pkg/ingest"
)

// Config holds the server configuration. Values are defaults-first: a YAML
// file only needs to mention the keys it overrides.
type Config struct {
	// HTTPAddr is the listen address for the REST API (e.g. ":9090").
	HTTPAddr string `yaml:"http_addr"`

	// AuthToken protects the API when non-empty (Bearer token).
	// Health and metrics endpoints stay open.
	AuthToken string `yaml:"auth_token"`

	// DatasetPath is the edge-list file loaded at startup.
	DatasetPath string `yaml:"dataset_path"`

	// OnMalformed is the ingestion policy for bad lines:
	// "fail_fast" (default) or "skip_and_warn".
	OnMalformed string `yaml:"on_malformed"`
}

// DefaultConfig returns a working local configuration.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":9090",
		OnMalformed: "fail_fast",
	}
}

// LoadConfig reads the YAML configuration file using strict parsing.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in config: %w", err)
	}

	// Validate the policy early so a typo fails at startup, not at load time.
	if _, err := ingest.ParsePolicy(cfg.OnMalformed); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// MalformedPolicy resolves the configured policy string.
func (c Config) MalformedPolicy() ingest.MalformedPolicy {
	p, _ := ingest.ParsePolicy(c.OnMalformed)
	return p
}
