package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"procman/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"logging"`
	Monitor struct {
		Interval int    `yaml:"interval"`
		SortBy   string `yaml:"sort_by"`
	} `yaml:"monitor"`
	Display struct {
		Rows    int  `yaml:"rows"`
		NoColor bool `yaml:"no_color"`
	} `yaml:"display"`
	EventLog struct {
		File string `yaml:"file"`
	} `yaml:"event_log"`
	Sentry struct {
		DSN string `yaml:"dsn"`
	} `yaml:"sentry"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Monitor.Interval = DefaultIntervalSeconds
	cfg.Monitor.SortBy = DefaultSortBy

	cfg.Display.Rows = DefaultDisplayRows

	cfg.EventLog.File = DefaultEventLogFile

	return cfg
}

// Load loads the configuration from procman.yaml, falling back to defaults
// when the file does not exist
func Load() (*Config, error) {
	return LoadFile(FileName)
}

// LoadFile loads the configuration from the given path
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 -- path is the configured config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	yamlTags := func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}

	if err := v.Unmarshal(cfg, yamlTags); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Monitor.Interval <= 0 {
		return errors.ErrInvalidInterval
	}

	if c.Monitor.SortBy != "cpu" && c.Monitor.SortBy != "memory" {
		return errors.ErrInvalidSortCriterion
	}

	if c.Display.Rows <= 0 {
		return errors.ErrInvalidDisplayRows
	}

	return nil
}

// Scaffold returns a commented default procman.yaml for the init command
func Scaffold() ([]byte, error) {
	out, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, err
	}

	header := []byte("# procman configuration\n# values shown are the built-in defaults\n")

	return append(header, out...), nil
}

// WriteScaffold writes the default configuration to path unless it exists
func WriteScaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := Scaffold()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
