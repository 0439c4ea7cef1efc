package infrastructure

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first. It stands in
// for the round trip of a backend call that does not exist yet.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
