package domain

const (
	RowLocal = "local"
	RowTotal = "total"

	bytesPerMegabyte = 1024 * 1024
)

type Summary struct {
	Paths []string
	Rows  []Row
}

func NewSummary(paths []string, counters Counters) *Summary {
	return &Summary{
		Paths: paths,
		Rows:  []Row{counters.Local(), counters.Total()},
	}
}

type Row struct {
	Type       string
	Gets       int64
	FailedGets int64
	Bytes      int64
}

func NewRow(rowType string, gets, failedGets, bytes int64) Row {
	return Row{
		Type:       rowType,
		Gets:       gets,
		FailedGets: failedGets,
		Bytes:      bytes,
	}
}

func (r Row) Megabytes() float64 {
	return float64(r.Bytes) / bytesPerMegabyte
}
