package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/es-debug/webstats/internal/domain"
)

type JSONFormatter struct{}

type jsonRow struct {
	Type          string  `json:"type"`
	Gets          int64   `json:"gets"`
	FailedGets    int64   `json:"failed_gets"`
	Bytes         int64   `json:"bytes"`
	MBTransferred float64 `json:"mb_transferred"`
}

type jsonSummary struct {
	Files []string  `json:"files"`
	Rows  []jsonRow `json:"rows"`
}

func (JSONFormatter) Name() string {
	return FormatJSON
}

func (JSONFormatter) Format(summary *domain.Summary, w io.Writer) error {
	out := jsonSummary{
		Files: summary.Paths,
		Rows:  make([]jsonRow, 0, len(summary.Rows)),
	}

	for _, row := range summary.Rows {
		out.Rows = append(out.Rows, jsonRow{
			Type:          row.Type,
			Gets:          row.Gets,
			FailedGets:    row.FailedGets,
			Bytes:         row.Bytes,
			MBTransferred: row.Megabytes(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
