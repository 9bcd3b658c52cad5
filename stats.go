package lzarena

import "fmt"

// Stats is a point-in-time snapshot of arena usage.
type Stats struct {
	BytesUsed  int    // bytes consumed across all regions, padding included
	BytesTotal int    // total capacity across all regions
	Regions    int    // regions currently chained
	Allocs     uint64 // cumulative successful allocations
	Grows      uint64 // cumulative growth events (source acquisitions)
}

// Utilization returns the ratio of used bytes to total capacity (0.0-1.0).
func (s Stats) Utilization() float64 {
	if s.BytesTotal == 0 {
		return 0
	}
	return float64(s.BytesUsed) / float64(s.BytesTotal)
}

// Stats walks the chain and reports usage. Read-only; calling it twice with
// no intervening allocation returns identical snapshots.
func (a *Arena) Stats() Stats {
	s := Stats{
		Regions: len(a.regions),
		Allocs:  a.allocs,
		Grows:   a.grows,
	}
	for _, r := range a.regions {
		s.BytesUsed += r.Used()
		s.BytesTotal += r.Capacity()
	}
	return s
}

func (a *Arena) String() string {
	s := a.Stats()
	return fmt.Sprintf(
		"Arena{regions: %d, used: %d B, total: %d B, usage: %.1f%%, allocs: %d, grows: %d}",
		s.Regions, s.BytesUsed, s.BytesTotal, s.Utilization()*100, s.Allocs, s.Grows,
	)
}
