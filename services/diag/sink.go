// Package diag carries UI state reports to best-effort outputs: the serial
// console, the bus, and an optional character LCD. A failing output never
// reaches the caller.
package diag

import (
	"context"

	"rgbknob-go/bus"
	"rgbknob-go/types"
)

// Sink receives UI state reports. Report must not block for long and must
// not fail the caller.
type Sink interface {
	Report(s types.UIState)
}

// Multi fans a report out to every sink in order.
type Multi []Sink

func (m Multi) Report(s types.UIState) {
	for _, k := range m {
		k.Report(s)
	}
}

// Discard drops every report.
type Discard struct{}

func (Discard) Report(types.UIState) {}

// TopicUIState carries the latest UI state, retained.
var TopicUIState = bus.T("ui", "state")

// BusSink publishes reports as retained messages on TopicUIState.
// Publishing never blocks.
type BusSink struct {
	conn *bus.Connection
}

func NewBusSink(conn *bus.Connection) *BusSink { return &BusSink{conn: conn} }

func (b *BusSink) Report(s types.UIState) {
	b.conn.Publish(b.conn.NewMessage(TopicUIState, s, true))
}

// Monitor forwards UI states from sub to out until ctx is done or the
// subscription is closed. Slow outputs (the LCD) run here, off the
// controller's poll loop.
func Monitor(ctx context.Context, sub *bus.Subscription, out Sink) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-sub.Channel():
			if !ok {
				return
			}
			if s, ok := m.Payload.(types.UIState); ok {
				out.Report(s)
			}
		}
	}
}
