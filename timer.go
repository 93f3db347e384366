package sevenseg

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer calls fn every period until ctx is done, standing in for a hardware
// timer interrupt. Calls to fn must not overlap.
type Timer interface {
	AttachPeriodic(ctx context.Context, period time.Duration, fn func())
}

// TimerFunc adapts a function to the Timer interface.
type TimerFunc func(ctx context.Context, period time.Duration, fn func())

// AttachPeriodic calls f.
func (f TimerFunc) AttachPeriodic(ctx context.Context, period time.Duration, fn func()) {
	f(ctx, period, fn)
}

// TickerTimer runs fn on its own goroutine, paced by a ticker from Clock (or
// the real clock if Clock is nil). Ticks that arrive while fn is still
// running are dropped.
type TickerTimer struct {
	Clock clockwork.Clock
}

// AttachPeriodic starts the goroutine and returns immediately.
func (t TickerTimer) AttachPeriodic(ctx context.Context, period time.Duration, fn func()) {
	clk := t.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	tk := clk.NewTicker(period)
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-tk.Chan():
				fn()
			case <-ctx.Done():
				return
			}
		}
	}()
}
