package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrClockUnavailable reports that no valid time source appeared within
// the startup bound. Under a simulated clock time does not advance until
// the publisher starts; waiting for it avoids stamping goals at zero.
var ErrClockUnavailable = errors.New("app: timed out waiting for valid time")

const clockPoll = 100 * time.Millisecond

// waitForValidClock blocks until the time source reports a non-zero
// time, polling briefly, bounded by a.clockTimeout.
func (a *App) waitForValidClock(ctx context.Context) error {
	deadline := time.Now().Add(a.clockTimeout)
	for {
		t := a.now()
		if !t.IsZero() {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrClockUnavailable
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "waiting for valid time")
		case <-time.After(clockPoll):
		}
	}
}
