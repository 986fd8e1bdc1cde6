package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	trie "github.com/sarthakjha889/go-basic-trie"
)

// Config holds all configuration for the trie command
type Config struct {
	Segmentation SegmentationConfig `mapstructure:"segmentation"`
	Log          LogConfig          `mapstructure:"log"`
	Output       OutputConfig       `mapstructure:"output"`
}

// SegmentationConfig selects how words are split into keys
type SegmentationConfig struct {
	Mode          string `mapstructure:"mode"`
	Normalise     bool   `mapstructure:"normalise"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds output related configuration
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and TRIE_ prefixed environment variables.
// An empty path uses defaults and the environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("trie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("segmentation.mode", "grapheme")
	v.SetDefault("segmentation.normalise", false)
	v.SetDefault("segmentation.case_sensitive", true)

	v.SetDefault("log.level", "info")

	v.SetDefault("output.format", "text")
}

func (c *Config) validate() error {
	switch c.Segmentation.Mode {
	case "grapheme", "rune":
	default:
		return fmt.Errorf("invalid segmentation mode %q", c.Segmentation.Mode)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Options returns the trie construction options matching the configuration
func (c *SegmentationConfig) Options() []trie.Option {
	opts := []trie.Option{trie.WithGraphemes()}
	if c.Mode == "rune" {
		opts = []trie.Option{trie.WithRunes()}
	}
	if c.Normalise {
		opts = append(opts, trie.WithNormalisation())
	}
	if !c.CaseSensitive {
		opts = append(opts, trie.CaseInsensitive())
	}
	return opts
}

// Logger builds a console logger writing to w at the configured level
func (c *LogConfig) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
