package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry groups the counters the POS server reports.
type Registry struct {
	Checkouts   Counter
	Revenue     Counter
	StoreErrors Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns a point-in-time view of all counters.
func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"checkouts":    r.Checkouts.Load(),
		"revenue":      r.Revenue.Load(),
		"store_errors": r.StoreErrors.Load(),
	}
}
