package rolling

import "sync/atomic"

// Metrics counts what an Appender has done since it was created.
type Metrics struct {
	Writes          uint64 // successful Write calls
	Rollovers       uint64 // files switched to at a rollover instant
	FailedRollovers uint64 // rollovers that kept the old file because the new one couldn't be opened
}

type atomicMetrics struct {
	Writes          atomic.Uint64
	Rollovers       atomic.Uint64
	FailedRollovers atomic.Uint64
}

func (m *atomicMetrics) toMetrics() Metrics {
	return Metrics{
		Writes:          m.Writes.Load(),
		Rollovers:       m.Rollovers.Load(),
		FailedRollovers: m.FailedRollovers.Load(),
	}
}
