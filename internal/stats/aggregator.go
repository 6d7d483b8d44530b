// Package stats keeps the request totals shared by all file workers.
package stats

import (
	"sync"

	"github.com/es-debug/webstats/internal/domain"
)

// Aggregator sums the counters of finished workers. All six fields are
// updated under one lock, so readers never observe a half-applied merge.
type Aggregator struct {
	mu     *sync.RWMutex
	totals domain.Counters
	files  int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		mu: &sync.RWMutex{},
	}
}

// Merge is safe for concurrent use.
func (a *Aggregator) Merge(counters domain.Counters) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totals.Add(counters)
	a.files++
}

// Snapshot returns a copy of the totals and the number of merges so far.
func (a *Aggregator) Snapshot() (domain.Counters, int) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.totals, a.files
}

// Report builds the local and total rows. Call it after every worker has merged.
func (a *Aggregator) Report(paths []string) *domain.Summary {
	totals, _ := a.Snapshot()

	return domain.NewSummary(paths, totals)
}
