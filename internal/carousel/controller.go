// Package carousel owns the rotating case-result slides: which slide is
// current, how many fit the viewport, and the autoplay timer that advances
// them.
package carousel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kingrea/winchester/internal/catalog"
)

// DefaultInterval is the autoplay delay between slides.
const DefaultInterval = 5 * time.Second

// ErrIndexOutOfRange is returned by GoTo for an index outside the bound slides.
var ErrIndexOutOfRange = errors.New("carousel: index out of range")

// Breakpoints are the viewport widths, in pixels, at which a second and third
// slide become visible.
type Breakpoints struct {
	Two   int
	Three int
}

// DefaultBreakpoints matches the site: one slide below 640px, two below 1024px.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Two: 640, Three: 1024}
}

// VisibleCount returns how many slides fit a viewport of the given width.
func (b Breakpoints) VisibleCount(width int) int {
	switch {
	case width < b.Two:
		return 1
	case width < b.Three:
		return 2
	default:
		return 3
	}
}

// State is a snapshot of the controller.
type State struct {
	SlideCount   int
	CurrentIndex int
}

// Controller tracks the current slide. All methods are safe to call from the
// autoplay goroutine and the UI at the same time.
type Controller struct {
	mu          sync.Mutex
	items       []catalog.Item
	current     int
	breakpoints Breakpoints
	interval    time.Duration
}

// Option customizes a Controller.
type Option func(*Controller)

// WithInterval overrides the autoplay interval.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithBreakpoints overrides the viewport breakpoints.
func WithBreakpoints(b Breakpoints) Option {
	return func(c *Controller) {
		if b.Two > 0 && b.Three > b.Two {
			c.breakpoints = b
		}
	}
}

// New creates an unbound controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		breakpoints: DefaultBreakpoints(),
		interval:    DefaultInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Interval returns the fixed autoplay interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// Breakpoints returns the viewport breakpoints.
func (c *Controller) Breakpoints() Breakpoints { return c.breakpoints }

// Bind sets the slides and rewinds to the first one. Callers must stop
// autoplay before rebinding.
func (c *Controller) Bind(items []catalog.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]catalog.Item(nil), items...)
	c.current = 0
}

// Advance moves to the next slide, wrapping to the first. No-op when empty.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.items); n > 0 {
		c.current = (c.current + 1) % n
	}
}

// Retreat moves to the previous slide, wrapping to the last. No-op when empty.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.items); n > 0 {
		c.current = (c.current - 1 + n) % n
	}
}

// GoTo jumps to index. With no slides bound only index 0 is accepted.
func (c *Controller) GoTo(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	if n == 0 {
		if index != 0 {
			return fmt.Errorf("%w: %d (no slides bound)", ErrIndexOutOfRange, index)
		}
		return nil
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, n)
	}
	c.current = index
	return nil
}

// VisibleCount returns how many slides are shown at width.
func (c *Controller) VisibleCount(width int) int {
	return c.breakpoints.VisibleCount(width)
}

// VisibleSlides returns the slides shown at width, starting at the current one
// and wrapping around. It never repeats a slide and never mutates state.
func (c *Controller) VisibleSlides(width int) []catalog.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	count := min(c.breakpoints.VisibleCount(width), n)
	out := make([]catalog.Item, 0, count)
	for k := 0; k < count; k++ {
		out = append(out, c.items[(c.current+k)%n])
	}
	return out
}

// Snapshot returns the current state by value.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{SlideCount: len(c.items), CurrentIndex: c.current}
}
