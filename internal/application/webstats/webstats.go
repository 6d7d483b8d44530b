// Package webstats wires the command line to the log parser and the
// statistics aggregator.
package webstats

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/es-debug/webstats/internal/parser"
	"github.com/es-debug/webstats/internal/report"
	"github.com/es-debug/webstats/internal/stats"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const programName = "webstats"

// Version is set via ldflags at build time.
var Version = "dev"

type Env struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs the command with the process arguments and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], Env{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}

// Run returns 0 after the report has been printed and 1 on any error.
func Run(ctx context.Context, args []string, env Env) int {
	cmd := NewRootCommand(env)
	cmd.SetArgs(args)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(env.Stderr, message(err))

		return 1
	}

	return 0
}

func NewRootCommand(env Env) *cobra.Command {
	f := &cmdFlags{}

	cmd := &cobra.Command{
		Use:   programName + " <access_log_file> {<access_log_file>}",
		Short: "Summarize requests, failures and traffic in web server access logs",
		Long: `webstats reads every access log file in parallel and prints the number of
gets, failed (404) gets and megabytes transferred, once for local clients and
once for all clients.

Exit codes:
  0 - report printed
  1 - usage error, configuration error or a file that cannot be read`,
		Version: Version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrNoLogFiles{Program: programName}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return start(cmd, args, f, env)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindFlags(cmd.Flags(), f)

	return cmd
}

func newLogger(w io.Writer, cfg *Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With(slog.String("run_id", uuid.NewString())), nil
}

func start(cmd *cobra.Command, paths []string, f *cmdFlags, env Env) error {
	cfg, err := resolveConfig(cmd.Flags(), f, env.Fs)
	if err != nil {
		return err
	}

	formatter, err := report.NewFormatter(cfg.Format)
	if err != nil {
		return err
	}

	logger, err := newLogger(env.Stderr, cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	logParser := parser.NewParser(env.Fs, parser.Params{
		LocalPatterns: cfg.LocalPatterns,
		MaxLineSize:   cfg.MaxLineSize,
		Logger:        logger,
	})
	aggregator := stats.NewAggregator()

	logger.Info("processing files", slog.Int("files", len(paths)), slog.String("format", formatter.Name()))

	if err := logParser.ParseFiles(cmd.Context(), paths, env.Stdout, aggregator); err != nil {
		return fmt.Errorf("parse files: %w", err)
	}

	if err := formatter.Format(aggregator.Report(paths), env.Stdout); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
