package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig holds defaults for running the search engine.
type SearchConfig struct {
	// DefaultStrategy is used when a run doesn't specify --strategy.
	// One of "A*", "GBFS", "BFS", "DFS".
	DefaultStrategy string `yaml:"default_strategy"`

	// MaxIterations bounds the number of frontier pops before a run
	// aborts with an error, guarding against unbounded search on a
	// domain with no reachable goal.
	MaxIterations int `yaml:"max_iterations"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Directory       string `yaml:"directory"`
	PreserveHistory bool   `yaml:"preserve_history"`
}

// MetricsConfig holds telemetry push targets. Empty addresses disable the
// corresponding recorder.
type MetricsConfig struct {
	// PushGatewayAddr, when set, pushes Prometheus gauges/counters here
	// after every run (supports ${ENV_VAR} interpolation).
	PushGatewayAddr string `yaml:"pushgateway_addr"`
	JobName         string `yaml:"job_name"`

	// InfluxURL/Token/Org/Bucket, when all set, write a point per run.
	InfluxURL    string `yaml:"influx_url"`
	InfluxToken  string `yaml:"influx_token"`
	InfluxOrg    string `yaml:"influx_org"`
	InfluxBucket string `yaml:"influx_bucket"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			DefaultStrategy: "A*",
			MaxIterations:   1_000_000,
		},
		Output: OutputConfig{
			Directory:       "./output",
			PreserveHistory: true,
		},
		Metrics: MetricsConfig{
			JobName: "searchengine",
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing path or
// missing file yields DefaultConfig(), matching the teacher's "config is
// optional, defaults always work" behavior.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExampleConfig returns a commented example config.
func ExampleConfig() string {
	return `# Search Engine Configuration File
# Priority: CLI flags > config file > defaults; ${VAR} references in this
# file are replaced with environment variable values when it is loaded

search:
  # Strategy used when a run doesn't pass --strategy: A*, GBFS, BFS, DFS
  default_strategy: A*

  # Abort a run that pops more than this many frontier nodes without
  # finding a goal.
  max_iterations: 1000000

output:
  # Directory for arena dumps and run artifacts
  directory: ./output

  # Write an arena dump of every solve run under the directory above
  # (one subdirectory per run) when --dump is not given
  preserve_history: true

metrics:
  # Prometheus Pushgateway address; leave empty to disable
  pushgateway_addr: ""
  job_name: searchengine

  # InfluxDB target; all four fields must be set to enable
  influx_url: ""
  influx_token: ${INFLUX_TOKEN}
  influx_org: ""
  influx_bucket: ""
`
}
