// Package report renders the aggregated request statistics.
package report

import (
	"io"
	"strings"

	"github.com/es-debug/webstats/internal/domain"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formatter renders a summary to w.
type Formatter interface {
	Format(summary *domain.Summary, w io.Writer) error
	Name() string
}

type ErrUnknownFormat struct {
	Format string
}

func (e ErrUnknownFormat) Error() string {
	return "unknown output format " + e.Format
}

func Formats() []string {
	return []string{FormatText, FormatMarkdown, FormatJSON}
}

func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return TextFormatter{}, nil
	case FormatMarkdown, "md":
		return MarkdownFormatter{}, nil
	case FormatJSON:
		return JSONFormatter{}, nil
	default:
		return nil, ErrUnknownFormat{Format: format}
	}
}
