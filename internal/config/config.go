package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Environment variables that override the config file.
const (
	EnvHome         = "WELLCO2_HOME"
	EnvProjectDir   = "WELLCO2_PROJECT_DIR"
	EnvLogLevel     = "WELLCO2_LOG_LEVEL"
	EnvLogFormat    = "WELLCO2_LOG_FORMAT"
	EnvOutputFormat = "WELLCO2_OUTPUT_FORMAT"
	EnvConcurrency  = "WELLCO2_CONCURRENCY"
)

const (
	configFileName     = "config.yaml"
	defaultPrecision   = 2
	maxPrecision       = 10
	defaultConcurrency = 4
	maxConcurrency     = 256
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the wellco2 configuration file.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Calculation CalculationConfig `yaml:"calculation"`

	configPath string
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// CalculationConfig controls the plan engine.
type CalculationConfig struct {
	// Concurrency is the number of plans calculated at once.
	Concurrency int `yaml:"concurrency"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Calculation: CalculationConfig{
			Concurrency: defaultConcurrency,
		},
	}
}

// New returns the defaults overlaid with the config file, if present, and
// then with environment overrides. A broken config file is ignored here;
// use Load to surface it.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if loaded, loadErr := Load(cfg.configPath); loadErr == nil {
			cfg = loaded
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.configPath = path
	return cfg, nil
}

// ConfigPath returns the file the config is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every enumerated and bounded setting.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(OutputFormats(), c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of %v",
			c.Output.DefaultFormat, OutputFormats()))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision %d must be between 0 and %d",
			c.Output.Precision, maxPrecision))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level %q: %w", c.Logging.Level, err))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be console or json", c.Logging.Format))
	}
	if c.Calculation.Concurrency < 1 || c.Calculation.Concurrency > maxConcurrency {
		errs = append(errs, fmt.Errorf("calculation.concurrency %d must be between 1 and %d",
			c.Calculation.Concurrency, maxConcurrency))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// OutputFormats lists the accepted output formats.
func OutputFormats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Calculation.Concurrency = n
		}
	}
}
