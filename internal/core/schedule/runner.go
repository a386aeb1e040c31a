package schedule

import (
	"context"
	"sync"
	"time"
)

// Runner owns at most one active scheduled task. Starting a new task cancels
// the previous one.
type Runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// Every calls fn after each interval until fn returns false, the parent
// context ends or Stop is called.
func (runner *Runner) Every(parent context.Context, interval time.Duration, fn func() bool) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	runner.start(parent, func(ctx context.Context) {
		for {
			if !sleepWithContext(ctx, interval) {
				return
			}
			if !fn() {
				return
			}
		}
	})
}

// After calls fn once after delay unless cancelled first.
func (runner *Runner) After(parent context.Context, delay time.Duration, fn func()) {
	runner.start(parent, func(ctx context.Context) {
		if sleepWithContext(ctx, delay) {
			fn()
		}
	})
}

// Stop cancels the active task. The task observes cancellation at its next wake-up.
func (runner *Runner) Stop() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.cancel != nil {
		runner.cancel()
		runner.cancel = nil
	}
}

// Active reports whether a task is scheduled.
func (runner *Runner) Active() bool {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.cancel != nil
}

func (runner *Runner) start(parent context.Context, run func(context.Context)) {
	if parent == nil {
		parent = context.Background()
	}
	runner.mu.Lock()
	if runner.cancel != nil {
		runner.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	runner.cancel = cancel
	runner.gen++
	gen := runner.gen
	runner.mu.Unlock()

	go func() {
		run(ctx)
		runner.finish(gen)
	}()
}

func (runner *Runner) finish(gen uint64) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.gen == gen && runner.cancel != nil {
		runner.cancel()
		runner.cancel = nil
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
