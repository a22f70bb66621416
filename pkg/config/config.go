// Package config loads advent settings from an optional advent.yaml file and
// ADVENT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/advent/pkg/report"
)

// Sentinel validation errors.
var (
	ErrInvalidRepeat   = errors.New("run repeat must be between 1 and 10000")
	ErrInvalidFormat   = errors.New("unknown output format")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// EnvPrefix prefixes every environment variable, e.g. ADVENT_INPUTS_DIR.
const EnvPrefix = "ADVENT"

// Config holds all advent settings.
type Config struct {
	Inputs    InputsConfig    `mapstructure:"inputs"`
	Answers   AnswersConfig   `mapstructure:"answers"`
	Run       RunConfig       `mapstructure:"run"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// InputsConfig locates real puzzle inputs. An empty Dir means samples only.
type InputsConfig struct {
	Dir string `mapstructure:"dir"`
}

// AnswersConfig locates the expected answers file.
type AnswersConfig struct {
	File string `mapstructure:"file"`
}

// RunConfig controls solving.
type RunConfig struct {
	Repeat int `mapstructure:"repeat"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}

	return level, nil
}

// TelemetryConfig controls OTLP export and the metrics textfile.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`
	OTLPHeaders  string `mapstructure:"otlp_headers"`
	MetricsOut   string `mapstructure:"metrics_out"`
}

// LoadConfig reads configPath, or searches ., ./config and
// $HOME/.config/advent for advent.yaml when configPath is empty. A missing
// file in the search path is not an error. Environment variables override
// file values.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("advent")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/advent")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("inputs.dir", DefaultInputsDir)
	v.SetDefault("answers.file", DefaultAnswersFile)
	v.SetDefault("run.repeat", DefaultRunRepeat)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.no_color", DefaultOutputNoColor)
	v.SetDefault("logging.level", DefaultLoggingLevel)
	v.SetDefault("logging.json", DefaultLoggingJSON)
	v.SetDefault("telemetry.otlp_endpoint", DefaultOTLPEndpoint)
	v.SetDefault("telemetry.otlp_insecure", DefaultOTLPInsecure)
	v.SetDefault("telemetry.otlp_headers", "")
	v.SetDefault("telemetry.metrics_out", DefaultMetricsOut)
}

// Validate checks value ranges and normalizes output.format. Flags may
// change a loaded Config, so commands call it again before use.
func (c *Config) Validate() error {
	if c.Run.Repeat < 1 || c.Run.Repeat > MaxRepeat {
		return fmt.Errorf("%w: %d", ErrInvalidRepeat, c.Run.Repeat)
	}

	format, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	c.Output.Format = string(format)

	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}

	return nil
}
