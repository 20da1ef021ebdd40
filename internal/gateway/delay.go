package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Delayer injects the simulated network latency in front of every
// gateway operation. Implementations must honor context cancellation
// so abandoned requests release their timers.
type Delayer interface {
	Wait(ctx context.Context) error
}

// NoDelay is the Delayer used in tests: it returns immediately unless
// the context is already canceled.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}

// RandomDelay waits a uniformly random duration in [Min, Max].
type RandomDelay struct {
	Min time.Duration
	Max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomDelay builds the production delayer. min/max out of order or
// negative are normalized.
func NewRandomDelay(min, max time.Duration) *RandomDelay {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return &RandomDelay{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (d *RandomDelay) Wait(ctx context.Context) error {
	span := d.Max - d.Min
	wait := d.Min
	if span > 0 {
		d.mu.Lock()
		wait += time.Duration(d.rng.Int63n(int64(span) + 1))
		d.mu.Unlock()
	}

	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
