package domain

// Counters holds the six request accumulators. A worker owns its own Counters
// for the lifetime of one file; the aggregator keeps the sum over all files.
type Counters struct {
	TotalGets       int64
	TotalBytes      int64
	TotalFailedGets int64
	LocalGets       int64
	LocalBytes      int64
	LocalFailedGets int64
}

func (c *Counters) Add(other Counters) {
	c.TotalGets += other.TotalGets
	c.TotalBytes += other.TotalBytes
	c.TotalFailedGets += other.TotalFailedGets
	c.LocalGets += other.LocalGets
	c.LocalBytes += other.LocalBytes
	c.LocalFailedGets += other.LocalFailedGets
}

func (c Counters) Local() Row {
	return NewRow(RowLocal, c.LocalGets, c.LocalFailedGets, c.LocalBytes)
}

func (c Counters) Total() Row {
	return NewRow(RowTotal, c.TotalGets, c.TotalFailedGets, c.TotalBytes)
}
