package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/kingrea/winchester/internal/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func slides(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{Kind: catalog.KindCaseResult, Title: fmt.Sprintf("slide-%d", i)}
	}
	return items
}

func titles(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestAdvanceWrapsAfterFullCycle(t *testing.T) {
	for n := 1; n <= 7; n++ {
		ctrl := New()
		ctrl.Bind(slides(n))
		for i := 0; i < n; i++ {
			ctrl.Advance()
		}
		if got := ctrl.Snapshot().CurrentIndex; got != 0 {
			t.Fatalf("n=%d: index after full cycle = %d, want 0", n, got)
		}
	}
}

func TestAdvanceAndRetreatOnEmptyAreNoOps(t *testing.T) {
	ctrl := New()
	ctrl.Bind(nil)
	ctrl.Advance()
	ctrl.Retreat()
	if got := ctrl.Snapshot(); got != (State{}) {
		t.Fatalf("state = %+v, want zero", got)
	}
	if got := ctrl.VisibleSlides(2000); len(got) != 0 {
		t.Fatalf("visible slides on empty carousel = %d", len(got))
	}
}

func TestRetreatWrapsToLast(t *testing.T) {
	ctrl := New()
	ctrl.Bind(slides(3))
	ctrl.Retreat()
	if got := ctrl.Snapshot().CurrentIndex; got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
}

func TestBindResetsIndex(t *testing.T) {
	ctrl := New()
	ctrl.Bind(slides(4))
	ctrl.Advance()
	ctrl.Advance()
	ctrl.Bind(slides(2))
	if got := ctrl.Snapshot(); got != (State{SlideCount: 2, CurrentIndex: 0}) {
		t.Fatalf("state after rebind = %+v", got)
	}
}

func TestGoTo(t *testing.T) {
	ctrl := New()
	ctrl.Bind(slides(3))
	if err := ctrl.GoTo(2); err != nil {
		t.Fatalf("goto 2: %v", err)
	}
	for _, bad := range []int{5, 3, -1} {
		err := ctrl.GoTo(bad)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("goto %d: expected ErrIndexOutOfRange, got %v", bad, err)
		}
		if got := ctrl.Snapshot().CurrentIndex; got != 2 {
			t.Fatalf("goto %d changed index to %d", bad, got)
		}
	}
}

func TestGoToOnEmpty(t *testing.T) {
	ctrl := New()
	if err := ctrl.GoTo(0); err != nil {
		t.Fatalf("goto 0 on empty: %v", err)
	}
	if err := ctrl.GoTo(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("goto 1 on empty: expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestVisibleCountBreakpoints(t *testing.T) {
	bp := DefaultBreakpoints()
	cases := map[int]int{0: 1, 639: 1, 640: 2, 1023: 2, 1024: 3, 4096: 3}
	for width, want := range cases {
		if got := bp.VisibleCount(width); got != want {
			t.Fatalf("VisibleCount(%d) = %d, want %d", width, got, want)
		}
	}
}

func TestVisibleSlidesWrapsWithoutRepeats(t *testing.T) {
	ctrl := New()
	ctrl.Bind(slides(4))
	if err := ctrl.GoTo(3); err != nil {
		t.Fatal(err)
	}
	got := titles(ctrl.VisibleSlides(1200))
	want := []string{"slide-3", "slide-0", "slide-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("visible slides mismatch (-want +got):\n%s", diff)
	}
	if idx := ctrl.Snapshot().CurrentIndex; idx != 3 {
		t.Fatalf("VisibleSlides mutated index to %d", idx)
	}
}

func TestVisibleSlidesNeverExceedsSlideCount(t *testing.T) {
	for n := 0; n <= 4; n++ {
		ctrl := New()
		ctrl.Bind(slides(n))
		for _, width := range []int{320, 800, 1600} {
			got := ctrl.VisibleSlides(width)
			if len(got) > n {
				t.Fatalf("n=%d width=%d: %d slides visible", n, width, len(got))
			}
			seen := map[string]bool{}
			for _, item := range got {
				if seen[item.Title] {
					t.Fatalf("n=%d width=%d: %s shown twice", n, width, item.Title)
				}
				seen[item.Title] = true
			}
		}
	}
}

func TestCustomBreakpointsAndInterval(t *testing.T) {
	ctrl := New(WithBreakpoints(Breakpoints{Two: 500, Three: 900}), WithInterval(time.Second))
	if got := ctrl.VisibleCount(600); got != 2 {
		t.Fatalf("VisibleCount(600) = %d, want 2", got)
	}
	if ctrl.Interval() != time.Second {
		t.Fatalf("interval = %s", ctrl.Interval())
	}
	ignored := New(WithBreakpoints(Breakpoints{Two: 900, Three: 500}))
	if ignored.Breakpoints() != DefaultBreakpoints() {
		t.Fatalf("invalid breakpoints should be ignored, got %+v", ignored.Breakpoints())
	}
}

func TestAutoplayAdvancesAndStops(t *testing.T) {
	ctrl := New(WithInterval(5 * time.Millisecond))
	ctrl.Bind(slides(3))
	var ticks atomic.Int32
	auto := NewAutoplay(ctrl, func(State) { ticks.Add(1) })
	auto.Start(context.Background())
	defer auto.Stop()
	auto.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if ticks.Load() < 2 {
		t.Fatalf("autoplay did not tick")
	}
	auto.Stop()
	if auto.Running() {
		t.Fatalf("autoplay still running after Stop")
	}
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != after {
		t.Fatalf("autoplay ticked after Stop")
	}
}

func TestAutoplayStopsWithContext(t *testing.T) {
	ctrl := New(WithInterval(time.Hour))
	auto := NewAutoplay(ctrl, nil)
	ctx, cancel := context.WithCancel(context.Background())
	auto.Start(ctx)
	cancel()
	auto.Stop()
	auto.Stop()
}

func TestAutoplayRebindLeavesTimerStopped(t *testing.T) {
	ctrl := New(WithInterval(time.Hour))
	ctrl.Bind(slides(3))
	ctrl.Advance()
	auto := NewAutoplay(ctrl, nil)
	auto.Start(context.Background())
	auto.Rebind(slides(5))
	if auto.Running() {
		t.Fatalf("rebind must leave autoplay stopped")
	}
	if got := ctrl.Snapshot(); got != (State{SlideCount: 5}) {
		t.Fatalf("state after rebind = %+v", got)
	}
}
