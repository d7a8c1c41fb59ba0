// Package supervisor runs the perpetual control loops side by side and
// stops the firmware hard if any of them returns.
package supervisor

import (
	"context"

	"rgbknob-go/errcode"
)

// Loop is a named function expected to run until ctx is done.
type Loop struct {
	Name string
	Run  func(ctx context.Context)
}

// Join starts every loop in its own goroutine and blocks until the first
// one returns. The result always carries errcode.LoopExited naming that
// loop, since a return is a supervision fault. Other loops keep running.
func Join(ctx context.Context, loops ...Loop) error {
	if len(loops) == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "join", Msg: "no loops"}
	}
	exited := make(chan string, len(loops))
	for _, l := range loops {
		go func(l Loop) {
			l.Run(ctx)
			exited <- l.Name
		}(l)
	}
	name := <-exited
	return &errcode.E{C: errcode.LoopExited, Op: name, Msg: "perpetual loop returned"}
}

// Fatal prints err and halts. There is no recovery path: on the MCU the
// runtime's panic handler stops the core until reset.
func Fatal(err error) {
	msg := "unknown"
	if err != nil {
		msg = err.Error()
	}
	println("[supervisor] fatal:", msg)
	panic("fell off end of main loop: " + msg)
}
