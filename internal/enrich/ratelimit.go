package enrich

import (
	"context"
	"time"
)

// pacer enforces a minimum interval between successive external calls.
//
// The interval is an intentional serialization point, not an
// optimization: Discogs throttles clients that burst, and the queue is
// processed one record at a time on purpose. The first call through a
// pacer never waits.
type pacer struct {
	interval time.Duration
	last     time.Time
	// now and sleep are injectable for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func newPacer(interval time.Duration) *pacer {
	return &pacer{
		interval: interval,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Wait blocks until at least the configured interval has passed since the
// previous call, or the context is cancelled.
func (p *pacer) Wait(ctx context.Context) error {
	if !p.last.IsZero() && p.interval > 0 {
		if wait := p.interval - p.now().Sub(p.last); wait > 0 {
			if err := p.sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
	p.last = p.now()
	return ctx.Err()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
