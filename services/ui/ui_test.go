package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"rgbknob-go/internal/platform"
	"rgbknob-go/services/knob"
	"rgbknob-go/state"
	"rgbknob-go/types"
)

type fakeKnob struct {
	mu    sync.Mutex
	level types.Level
	calls int
}

func (k *fakeKnob) Measure(context.Context) types.Level {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.calls++
	return k.level
}

func (k *fakeKnob) set(l types.Level) {
	k.mu.Lock()
	k.level = l
	k.mu.Unlock()
}

type recordSink struct {
	mu  sync.Mutex
	got []types.UIState
}

func (r *recordSink) Report(s types.UIState) {
	r.mu.Lock()
	r.got = append(r.got, s)
	r.mu.Unlock()
}

func (r *recordSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

func (r *recordSink) last() types.UIState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.got[len(r.got)-1]
}

type rig struct {
	knob *fakeKnob
	a, b *platform.FakeInput
	st   *state.State
	sink *recordSink
	c    *Controller
}

func newRig() *rig {
	r := &rig{
		knob: &fakeKnob{},
		a:    platform.NewFakeInput(),
		b:    platform.NewFakeInput(),
		st:   state.New(),
		sink: &recordSink{},
	}
	r.c = New(Config{Knob: r.knob, ButtonA: r.a, ButtonB: r.b, State: r.st, Sink: r.sink})
	return r
}

func TestSelectModeExhaustive(t *testing.T) {
	type C struct {
		a, b bool
		want Mode
	}
	seen := map[Mode]bool{}
	for _, c := range []C{
		{false, false, ModeFrameRate},
		{true, true, ModeRed},
		{false, true, ModeGreen},
		{true, false, ModeBlue},
	} {
		got := SelectMode(c.a, c.b)
		if got != c.want {
			t.Fatalf("SelectMode(A=%v, B=%v) = %v, want %v", c.a, c.b, got, c.want)
		}
		seen[got] = true
	}
	if len(seen) != 4 {
		t.Fatalf("combinations map onto %d modes, want 4 distinct", len(seen))
	}
}

func TestStartupChannel(t *testing.T) {
	type C struct {
		a, b bool
		want int
	}
	for _, c := range []C{
		{false, false, types.Red},
		{false, true, types.Green},
		{true, false, types.Blue},
		{true, true, types.Blue},
	} {
		if got := StartupChannel(c.a, c.b); got != c.want {
			t.Fatalf("StartupChannel(A=%v, B=%v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFrameRateFor(t *testing.T) {
	if got := FrameRateFor(0); got != 10 {
		t.Fatalf("FrameRateFor(0) = %d, want 10", got)
	}
	if got := FrameRateFor(types.MaxLevel); got != 160 {
		t.Fatalf("FrameRateFor(15) = %d, want 160", got)
	}
}

func TestStartWritesUnconditionally(t *testing.T) {
	r := newRig()
	r.knob.set(types.MaxLevel) // same as the shadow default
	r.c.Start(context.Background())

	if got, want := r.st.Levels(), (types.RGBLevels{15, 15, 15}); got != want {
		t.Fatalf("shared levels = %v, want %v", got, want)
	}
	if r.sink.count() != 1 {
		t.Fatalf("reports = %d, want 1 even when the value is unchanged", r.sink.count())
	}
	if got := r.st.FrameRate(); got != state.DefaultFrameRate {
		t.Fatalf("startup touched frame rate: %d", got)
	}
}

func TestScenarioButtonAHeldTargetsBlue(t *testing.T) {
	r := newRig()
	r.a.Press()
	r.knob.set(4)
	r.c.Start(context.Background())
	if got, want := r.st.Levels(), (types.RGBLevels{15, 15, 4}); got != want {
		t.Fatalf("after startup levels = %v, want %v", got, want)
	}

	r.knob.set(9)
	if mode := r.c.Poll(context.Background()); mode != ModeBlue {
		t.Fatalf("poll mode = %v, want blue", mode)
	}
	if got, want := r.st.Levels(), (types.RGBLevels{15, 15, 9}); got != want {
		t.Fatalf("after poll levels = %v, want %v", got, want)
	}
}

func TestScenarioReleasedSetsFrameRate(t *testing.T) {
	r := newRig()
	r.knob.set(knob.LevelFor(16000))
	if mode := r.c.Poll(context.Background()); mode != ModeFrameRate {
		t.Fatalf("mode = %v, want frame_rate", mode)
	}
	if got := r.st.FrameRate(); got != 160 {
		t.Fatalf("frame rate = %d, want 160", got)
	}
	if r.c.Shadow().FrameRate != 160 {
		t.Fatalf("shadow frame rate = %d, want 160", r.c.Shadow().FrameRate)
	}
	if r.st.Levels() != (types.RGBLevels{}) {
		t.Fatalf("frame-rate mode touched levels: %v", r.st.Levels())
	}
}

func TestFrameRateWrittenEveryPollReportedOnChange(t *testing.T) {
	r := newRig()
	r.knob.set(2)
	ctx := context.Background()
	r.c.Poll(ctx)
	if r.sink.count() != 1 || r.sink.last().FrameRate != 30 {
		t.Fatalf("first poll reports = %d, want one with fps 30", r.sink.count())
	}

	// Someone else scribbles the shared value; the next poll rewrites it
	// but does not report because the shadow did not change.
	r.st.SetFrameRate(77)
	r.c.Poll(ctx)
	if got := r.st.FrameRate(); got != 30 {
		t.Fatalf("frame rate = %d, want rewritten 30", got)
	}
	if r.sink.count() != 1 {
		t.Fatalf("reports = %d, want 1", r.sink.count())
	}
}

func TestEachCombinationUpdatesOneTarget(t *testing.T) {
	type C struct {
		a, b  bool
		level types.Level
		want  types.UIState
	}
	for _, c := range []C{
		{false, false, 3, types.UIState{Levels: types.RGBLevels{0, 0, 0}, FrameRate: 40}},
		{true, true, 3, types.UIState{Levels: types.RGBLevels{3, 15, 15}, FrameRate: state.DefaultFrameRate}},
		{false, true, 3, types.UIState{Levels: types.RGBLevels{15, 3, 15}, FrameRate: state.DefaultFrameRate}},
		{true, false, 3, types.UIState{Levels: types.RGBLevels{15, 15, 3}, FrameRate: state.DefaultFrameRate}},
	} {
		r := newRig()
		r.a.Set(!c.a)
		r.b.Set(!c.b)
		r.knob.set(c.level)
		r.c.Poll(context.Background())
		got := types.UIState{Levels: r.st.Levels(), FrameRate: r.st.FrameRate()}
		if got != c.want {
			t.Fatalf("A=%v B=%v: shared state = %+v, want %+v", c.a, c.b, got, c.want)
		}
		if r.knob.calls != 1 {
			t.Fatalf("A=%v B=%v: knob measured %d times, want 1", c.a, c.b, r.knob.calls)
		}
		if r.sink.count() != 1 {
			t.Fatalf("A=%v B=%v: reports = %d, want 1", c.a, c.b, r.sink.count())
		}
	}
}

func TestUpdateLEDSuppressesRedundantWrites(t *testing.T) {
	r := newRig()
	r.c.UpdateLED(types.Green, 6)
	if r.sink.count() != 1 {
		t.Fatalf("reports = %d, want 1", r.sink.count())
	}

	// Sentinel: a write would overwrite this.
	sentinel := types.RGBLevels{1, 1, 1}
	r.st.SetLevels(sentinel)
	r.c.UpdateLED(types.Green, 6)
	if got := r.st.Levels(); got != sentinel {
		t.Fatalf("redundant update wrote shared state: %v", got)
	}
	if r.sink.count() != 1 {
		t.Fatalf("redundant update reported: %d reports", r.sink.count())
	}

	r.c.UpdateLED(types.Green, 7)
	if got, want := r.st.Levels(), (types.RGBLevels{15, 7, 15}); got != want {
		t.Fatalf("levels = %v, want %v", got, want)
	}
	if got := r.sink.last(); got.Levels != (types.RGBLevels{15, 7, 15}) {
		t.Fatalf("report = %+v, want updated shadow", got)
	}
}

func TestUpdateLEDDefaultMaxIsSuppressed(t *testing.T) {
	r := newRig()
	r.c.UpdateLED(types.Red, types.MaxLevel)
	if r.sink.count() != 0 || r.st.Levels() != (types.RGBLevels{}) {
		t.Fatalf("level equal to shadow default should be a no-op")
	}
}

// stepClock cancels after n sleeps and records each interval.
type stepClock struct {
	mu     sync.Mutex
	n      int
	sleeps []time.Duration
	cancel context.CancelFunc
}

func (c *stepClock) Sleep(d time.Duration) {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	done := len(c.sleeps) >= c.n
	c.mu.Unlock()
	if done {
		c.cancel()
	}
}

func TestRunPollsAtFixedInterval(t *testing.T) {
	r := newRig()
	ctx, cancel := context.WithCancel(context.Background())
	clk := &stepClock{n: 5, cancel: cancel}
	r.c.cfg.Clock = clk
	r.b.Press()
	r.knob.set(11)

	done := make(chan struct{})
	go func() {
		r.c.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	clk.mu.Lock()
	defer clk.mu.Unlock()
	for i, d := range clk.sleeps {
		if d != PollInterval {
			t.Fatalf("sleep %d = %v, want %v", i, d, PollInterval)
		}
	}
	// One startup measurement plus one per poll.
	if r.knob.calls != 1+5 {
		t.Fatalf("measurements = %d, want 6", r.knob.calls)
	}
	if got, want := r.st.Levels(), (types.RGBLevels{15, 11, 15}); got != want {
		t.Fatalf("levels = %v, want %v", got, want)
	}
	// Startup report only; polls repeated the same green level.
	if r.sink.count() != 1 {
		t.Fatalf("reports = %d, want 1", r.sink.count())
	}
}

func TestNilSinkDiscards(t *testing.T) {
	c := New(Config{Knob: &fakeKnob{}, ButtonA: platform.NewFakeInput(), ButtonB: platform.NewFakeInput(), State: state.New()})
	c.Poll(context.Background()) // must not panic
}
