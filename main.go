package main

import (
	"context"
	"time"

	"rgbknob-go/bus"
	"rgbknob-go/internal/platform"
	"rgbknob-go/services/diag"
	"rgbknob-go/services/knob"
	"rgbknob-go/services/rgb"
	"rgbknob-go/services/supervisor"
	"rgbknob-go/services/ui"
	"rgbknob-go/state"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	plan := platform.Selected()
	println("[main] opening board", plan.Name, "…")
	board, err := platform.Open(plan)
	if err != nil {
		supervisor.Fatal(err)
	}

	b := bus.NewBus(4)
	uiConn := b.NewConnection("ui")
	monConn := b.NewConnection("monitor")

	// Subscribe before the controller starts so the first report is queued.
	mon := monConn.Subscribe(diag.TopicUIState)
	go func() {
		out := diag.Multi{diag.NewConsole(board.Console)}
		if board.LCDBus != nil {
			lcd, err := diag.NewLCD(board.LCDBus, plan.LCD.Addr)
			if err != nil {
				println("[main] lcd disabled:", err.Error())
			} else {
				out = append(out, lcd)
			}
		}
		diag.Monitor(ctx, mon, out)
	}()

	st := state.New()

	println("[main] calibrating knob …")
	k, err := knob.New(ctx, board.Knob)
	if err != nil {
		println("[main] knob:", err.Error())
	}

	driver := rgb.New(board.RGB, board.Clock, st)
	ctrl := ui.New(ui.Config{
		Knob:    k,
		ButtonA: board.ButtonA,
		ButtonB: board.ButtonB,
		State:   st,
		Clock:   board.Clock,
		Sink:    diag.NewBusSink(uiConn),
	})

	println("[main] starting rgb and ui loops …")
	supervisor.Fatal(supervisor.Join(ctx,
		supervisor.Loop{Name: "rgb", Run: driver.Run},
		supervisor.Loop{Name: "ui", Run: ctrl.Run},
	))
}
