package webstats

import (
	"errors"
	"fmt"

	"github.com/es-debug/webstats/internal/parser"
)

type ErrNoLogFiles struct {
	Program string
}

func (e ErrNoLogFiles) Error() string {
	return fmt.Sprintf("Usage: %s <access_log_file> {<access_log_file>}", e.Program)
}

// message returns the line printed to standard error for err. Usage and file
// errors are printed bare, anything else gets an "Error: " prefix.
func message(err error) string {
	var (
		usage      ErrNoLogFiles
		notFound   parser.ErrFileNotFound
		unreadable parser.ErrFileUnreadable
	)

	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &unreadable):
		return unreadable.Error()
	default:
		return "Error: " + err.Error()
	}
}
