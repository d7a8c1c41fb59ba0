// internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"context"
	"os"
	"sync"

	"rgbknob-go/internal/halcore"
	"rgbknob-go/internal/platform/setups"
)

// Open builds an inert host board from plan. Pins, ADC and I²C are fakes
// that tests (or a host simulation) drive directly.
func Open(plan setups.Plan) (*Board, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		Plan:    plan,
		ButtonA: &FakeInput{level: true},
		ButtonB: &FakeInput{level: true},
		Knob:    &FakeADC{},
		Clock:   halcore.SystemClock{},
		Console: os.Stdout,
	}
	for i, n := range plan.RGB {
		b.RGB[i] = &FakeOutput{number: n}
	}
	if plan.LCD != nil {
		b.LCDBus = &HostI2C{}
	}
	return b, nil
}

// ----------------------------- GPIO (host) -----------------------------------

// FakeOutput implements halcore.OutputPin and counts rising edges.
type FakeOutput struct {
	mu     sync.Mutex
	number int
	level  bool
	rises  int
}

func (p *FakeOutput) High() {
	p.mu.Lock()
	if !p.level {
		p.rises++
	}
	p.level = true
	p.mu.Unlock()
}

func (p *FakeOutput) Low() {
	p.mu.Lock()
	p.level = false
	p.mu.Unlock()
}

func (p *FakeOutput) Level() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakeOutput) Rises() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rises
}

func (p *FakeOutput) Number() int { return p.number }

// FakeInput implements halcore.InputPin. Idle level is high (pull-up).
type FakeInput struct {
	mu    sync.RWMutex
	level bool
}

// NewFakeInput returns a released (high) input.
func NewFakeInput() *FakeInput { return &FakeInput{level: true} }

func (p *FakeInput) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *FakeInput) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// Press pulls the active-low input to ground; Release lets it float high.
func (p *FakeInput) Press()   { p.Set(false) }
func (p *FakeInput) Release() { p.Set(true) }

// ----------------------------- ADC (host) ------------------------------------

// FakeADC implements halcore.AnalogSampler with a settable raw code.
type FakeADC struct {
	mu         sync.Mutex
	raw        int32
	err        error
	calibrated int
	samples    int
}

func (a *FakeADC) Calibrate(ctx context.Context) error {
	a.mu.Lock()
	a.calibrated++
	a.mu.Unlock()
	return ctx.Err()
}

func (a *FakeADC) Sample(ctx context.Context) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.samples++
	return a.raw, a.err
}

// Set changes the code returned by subsequent samples.
func (a *FakeADC) Set(raw int32) {
	a.mu.Lock()
	a.raw = raw
	a.mu.Unlock()
}

// Fail makes subsequent samples return err (nil clears).
func (a *FakeADC) Fail(err error) {
	a.mu.Lock()
	a.err = err
	a.mu.Unlock()
}

func (a *FakeADC) Calibrations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calibrated
}

func (a *FakeADC) Samples() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.samples
}

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C for host-side tests.
type HostI2C struct {
	mu   sync.Mutex
	Err  error // returned from every Tx when set
	txs  int
	addr uint16
	w    []byte
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.txs++
	h.addr = addr
	h.w = append(h.w, w...)
	return h.Err
}

// Written returns every byte written so far and the last target address.
func (h *HostI2C) Written() (addr uint16, w []byte, txs int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr, append([]byte(nil), h.w...), h.txs
}
