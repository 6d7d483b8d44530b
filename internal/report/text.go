package report

import (
	"fmt"
	"io"

	"github.com/es-debug/webstats/internal/domain"
)

// TextFormatter prints the fixed-width console table.
type TextFormatter struct{}

func (TextFormatter) Name() string {
	return FormatText
}

func (TextFormatter) Format(summary *domain.Summary, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%10s %15s   %15s  %15s\n", "TYPE", "gets", "failed gets", "MB transferred"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range summary.Rows {
		_, err := fmt.Fprintf(w, "%10s  %15d  %15d  %15.0f\n", row.Type, row.Gets, row.FailedGets, row.Megabytes())
		if err != nil {
			return fmt.Errorf("write %s row: %w", row.Type, err)
		}
	}

	return nil
}
