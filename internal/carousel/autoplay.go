package carousel

import (
	"context"
	"sync"
	"time"

	"github.com/kingrea/winchester/internal/catalog"
)

// Autoplay advances a Controller on a fixed interval from a background
// goroutine. Stop must be called on every exit path; it blocks until the
// goroutine has returned.
type Autoplay struct {
	ctrl      *Controller
	onAdvance func(State)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoplay wires a timer to ctrl. onAdvance, if set, runs on the timer
// goroutine after each tick with the new state and must not block, since Stop
// waits for that goroutine.
func NewAutoplay(ctrl *Controller, onAdvance func(State)) *Autoplay {
	return &Autoplay{ctrl: ctrl, onAdvance: onAdvance}
}

// Start launches the timer. Calling Start while running is a no-op. The timer
// also stops when ctx is cancelled.
func (a *Autoplay) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done
	go a.run(ctx, done)
}

func (a *Autoplay) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(a.ctrl.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.ctrl.Advance()
			if a.onAdvance != nil {
				a.onAdvance(a.ctrl.Snapshot())
			}
		}
	}
}

// Stop cancels the timer and waits for it to exit. Safe to call repeatedly.
func (a *Autoplay) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the timer is active.
func (a *Autoplay) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Rebind stops the timer and binds new slides. The timer is left stopped.
func (a *Autoplay) Rebind(items []catalog.Item) {
	a.Stop()
	a.ctrl.Bind(items)
}
