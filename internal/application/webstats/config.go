package webstats

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/es-debug/webstats/internal/parser"
	"github.com/es-debug/webstats/internal/report"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LocalPatterns []string `yaml:"local_patterns"`
	Format        string   `yaml:"format"`
	MaxLineSize   int      `yaml:"max_line_size"`
	LogLevel      string   `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		LocalPatterns: slices.Clone(parser.DefaultLocalPatterns),
		Format:        report.FormatText,
		MaxLineSize:   parser.DefaultMaxLineSize,
		LogLevel:      "warn",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.LocalPatterns) == 0 {
		return errors.New("local_patterns: at least one pattern is required")
	}

	for i, pattern := range c.LocalPatterns {
		if pattern == "" {
			return fmt.Errorf("local_patterns[%d]: pattern is empty", i)
		}
	}

	if !slices.Contains(report.Formats(), strings.ToLower(c.Format)) {
		return fmt.Errorf("format: %w", report.ErrUnknownFormat{Format: c.Format})
	}

	if c.MaxLineSize <= 0 {
		return fmt.Errorf("max_line_size: must be positive, got %d", c.MaxLineSize)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, err
	}

	return level, nil
}
