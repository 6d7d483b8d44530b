package parser

import (
	"strings"

	"github.com/es-debug/webstats/internal/domain"
)

func (p *Parser) isLocal(address string) bool {
	for _, pattern := range p.params.LocalPatterns {
		if strings.Contains(address, pattern) {
			return true
		}
	}

	return false
}

// processLog adds a complete entry to counters. Failed gets are only counted
// here, so a 404 on a line without a bytes field is not recorded.
func (p *Parser) processLog(logEntry *log, counters *domain.Counters) {
	counters.TotalBytes += logEntry.bytesDownloaded

	if logEntry.failed() {
		counters.TotalFailedGets++
	}

	if !p.isLocal(logEntry.address) {
		return
	}

	counters.LocalGets++
	counters.LocalBytes += logEntry.bytesDownloaded

	if logEntry.failed() {
		counters.LocalFailedGets++
	}
}
