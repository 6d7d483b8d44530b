package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/es-debug/webstats/internal/domain"
)

type MarkdownFormatter struct{}

func (MarkdownFormatter) Name() string {
	return FormatMarkdown
}

func (MarkdownFormatter) Format(summary *domain.Summary, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("#### Web statistics\n\n")

	if len(summary.Paths) > 0 {
		sb.WriteString("| Files |\n|:-----|\n")

		for _, path := range summary.Paths {
			fmt.Fprintf(&sb, "| `%s` |\n", path)
		}

		sb.WriteString("\n")
	}

	sb.WriteString("| Type | Gets | Failed gets | MB transferred |\n")
	sb.WriteString("|:-----|-----:|------------:|---------------:|\n")

	for _, row := range summary.Rows {
		fmt.Fprintf(&sb, "| %s | %d | %d | %.2f |\n", row.Type, row.Gets, row.FailedGets, row.Megabytes())
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}
