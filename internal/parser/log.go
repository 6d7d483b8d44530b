package parser

const (
	addressField         = 0
	dateField            = 3
	statusField          = 8
	bytesDownloadedField = 9

	statusNotFound = "404"
)

type log struct {
	address         string
	date            string
	status          string
	bytesDownloaded int64
	// complete is set once the bytes downloaded field has been read.
	complete bool
}

func (l *log) failed() bool {
	return l.status == statusNotFound
}
