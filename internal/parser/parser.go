package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/es-debug/webstats/internal/domain"
	"github.com/spf13/afero"
)

type Parser struct {
	fs     afero.Fs
	params Params
	logger *slog.Logger
}

func NewParser(fs afero.Fs, params Params) *Parser {
	params = params.withDefaults()

	return &Parser{
		fs:     fs,
		params: params,
		logger: params.Logger,
	}
}

func parseBytes(token string) int64 {
	n, err := strconv.ParseUint(token, 10, 63)
	if err != nil {
		return 0
	}

	return int64(n)
}

func (p *Parser) lineToLog(text string) log {
	var logEntry log

	tokens := newTokenizer(text)

	for cnt := 0; ; cnt++ {
		token, ok := tokens.next()
		if !ok {
			return logEntry
		}

		switch cnt {
		case addressField:
			logEntry.address = token
		case dateField:
			logEntry.date = token
		case statusField:
			logEntry.status = token
		case bytesDownloadedField:
			logEntry.bytesDownloaded = parseBytes(token)
			logEntry.complete = true

			return logEntry
		}
	}
}

// ParseLine counts one log entry into counters and returns its date token.
// Every call is a get; bytes, failures and locality are only recorded when the
// line reaches the bytes downloaded field.
func (p *Parser) ParseLine(text string, counters *domain.Counters) string {
	counters.TotalGets++

	logEntry := p.lineToLog(text)
	if logEntry.complete {
		p.processLog(&logEntry, counters)
	}

	return logEntry.date
}

// Parse reads in line by line and writes the first and last dates to events.
// Nothing is written for an empty input.
func (p *Parser) Parse(ctx context.Context, in io.Reader, events io.Writer) (domain.Counters, error) {
	var (
		counters domain.Counters
		date     string
		lines    int
	)

	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, min(initialBufferSize, p.params.MaxLineSize)), p.params.MaxLineSize)

	for scan.Scan() {
		select {
		case <-ctx.Done():
			return domain.Counters{}, ctx.Err()
		default:
		}

		date = p.ParseLine(scan.Text(), &counters)
		if lines == 0 {
			fmt.Fprintf(events, "Starting date: %s\n", date)
		}

		lines++
	}

	if err := scan.Err(); err != nil {
		return domain.Counters{}, fmt.Errorf("scan line #%d: %w", lines+1, err)
	}

	if lines > 0 {
		fmt.Fprintf(events, "Ending date: %s\n", date)
	}

	return counters, nil
}
