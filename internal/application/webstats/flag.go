package webstats

import (
	"fmt"
	"slices"
	"strings"

	"github.com/es-debug/webstats/internal/parser"
	"github.com/es-debug/webstats/internal/report"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

type cmdFlags struct {
	configPath    string
	format        string
	localPatterns []string
	maxLineSize   int
	logLevel      string
}

func bindFlags(flags *pflag.FlagSet, f *cmdFlags) {
	defaults := DefaultConfig()

	flags.StringVarP(&f.configPath, "config", "c", "", "path to YAML config file")
	flags.StringVarP(&f.format, "format", "f", defaults.Format,
		fmt.Sprintf("report format (%s)", strings.Join(report.Formats(), "|")))
	flags.StringArrayVarP(&f.localPatterns, "local", "l", slices.Clone(parser.DefaultLocalPatterns),
		"address substring that marks a request as local (can be repeated)")
	flags.IntVar(&f.maxLineSize, "max-line-size", defaults.MaxLineSize, "longest accepted log line in bytes")
	flags.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
}

// resolveConfig applies flags the user set explicitly on top of the config
// file, or on top of the defaults when no file is given.
func resolveConfig(flags *pflag.FlagSet, f *cmdFlags, fs afero.Fs) (*Config, error) {
	cfg := DefaultConfig()

	if f.configPath != "" {
		loaded, err := LoadConfig(fs, f.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if flags.Changed("format") {
		cfg.Format = f.format
	}

	if flags.Changed("local") {
		cfg.LocalPatterns = f.localPatterns
	}

	if flags.Changed("max-line-size") {
		cfg.MaxLineSize = f.maxLineSize
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
