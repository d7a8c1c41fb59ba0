// Package state holds the values shared between the input controller and
// the PWM driver. Each field has its own lock; nothing spans both, so a
// reader may pair fresh levels with a stale frame rate (or the reverse)
// for one frame.
package state

import (
	"sync"

	"rgbknob-go/types"
)

// DefaultFrameRate is the frame rate the driver uses until the controller
// first writes one.
const DefaultFrameRate types.FrameRate = 10

type State struct {
	levelsMu sync.Mutex
	levels   types.RGBLevels

	rateMu    sync.Mutex
	frameRate types.FrameRate
}

// New returns the shared state with all channels off and DefaultFrameRate.
func New() *State {
	return &State{frameRate: DefaultFrameRate}
}

// Levels returns a copy of the channel levels. The lock is held for the
// copy only.
func (s *State) Levels() types.RGBLevels {
	s.levelsMu.Lock()
	v := s.levels
	s.levelsMu.Unlock()
	return v
}

// SetLevels replaces all channel levels under the levels lock.
func (s *State) SetLevels(v types.RGBLevels) {
	s.levelsMu.Lock()
	s.levels = v
	s.levelsMu.Unlock()
}

// UpdateLevels runs fn with the levels lock held. fn must not block.
func (s *State) UpdateLevels(fn func(*types.RGBLevels)) {
	s.levelsMu.Lock()
	defer s.levelsMu.Unlock()
	fn(&s.levels)
}

// FrameRate returns the current frame rate. The lock is held for the copy only.
func (s *State) FrameRate() types.FrameRate {
	s.rateMu.Lock()
	v := s.frameRate
	s.rateMu.Unlock()
	return v
}

// SetFrameRate replaces the frame rate under the frame-rate lock.
func (s *State) SetFrameRate(v types.FrameRate) {
	s.rateMu.Lock()
	s.frameRate = v
	s.rateMu.Unlock()
}

// UpdateFrameRate runs fn with the frame-rate lock held. fn must not block.
func (s *State) UpdateFrameRate(fn func(*types.FrameRate)) {
	s.rateMu.Lock()
	defer s.rateMu.Unlock()
	fn(&s.frameRate)
}
