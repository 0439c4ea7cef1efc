// Package metrics simulates the live counters shown on the dashboard and
// admin pages. Nothing here is measured; each board walks its previous value
// with a random step on a fixed interval.
package metrics

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// StepFunc derives the next snapshot from the previous one.
type StepFunc[T any] func(prev T, rnd *rand.Rand) T

// Board holds one snapshot and advances it on a ticker until stopped.
type Board[T any] struct {
	mu       sync.RWMutex
	cur      T
	rnd      *rand.Rand
	step     StepFunc[T]
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewBoard[T any](initial T, interval time.Duration, step StepFunc[T], seed int64) *Board[T] {
	return &Board[T]{
		cur:      initial,
		rnd:      rand.New(rand.NewSource(seed)),
		step:     step,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the ticker goroutine. It runs until ctx is cancelled or Stop
// is called. Later calls are no-ops.
func (b *Board[T]) Start(ctx context.Context) {
	b.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		b.mu.Lock()
		b.cancel = cancel
		b.mu.Unlock()
		go b.run(ctx)
	})
}

func (b *Board[T]) run(ctx context.Context) {
	defer close(b.done)
	t := time.NewTicker(b.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			b.Tick()
		}
	}
}

// Tick applies one step immediately.
func (b *Board[T]) Tick() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cur = b.step(b.cur, b.rnd)
	return b.cur
}

func (b *Board[T]) Snapshot() T {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cur
}

// Stop cancels the ticker and waits for its goroutine to exit. Safe to call
// more than once, and on a board that was never started.
func (b *Board[T]) Stop() {
	b.stopOnce.Do(func() {
		// consume startOnce so a later Start cannot launch a goroutine
		b.startOnce.Do(func() {})
		b.mu.RLock()
		cancel := b.cancel
		b.mu.RUnlock()
		if cancel == nil {
			return
		}
		cancel()
		<-b.done
	})
}
