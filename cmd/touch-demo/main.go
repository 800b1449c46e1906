// touch-demo draws a hit region in the terminal and runs a touch
// tracker against the mouse: press inside to start an interaction,
// drag across the border to see enter/exit crossings, release inside
// or outside for confirm/cancel.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/touchtrack/core"
	"github.com/lixenwraith/touchtrack/terminal"
	"github.com/lixenwraith/touchtrack/touch"
)

const (
	toneDown    = 660
	toneConfirm = 880
	toneCancel  = 220
)

type Demo struct {
	screen tcell.Screen
	cfg    *config

	tracker *touch.Tracker
	adapter *terminal.PointerAdapter

	eventLog []string

	interactions int
	confirms     int
	cancels      int

	audioInit bool
}

func NewDemo(cfg *config) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	d := &Demo{
		screen:   screen,
		cfg:      cfg,
		eventLog: make([]string, 0, cfg.LogLines),
	}

	dispatcher := touch.NewDispatcher()
	dispatcher.Bind(touch.Bindings{
		TouchDown: func(pos core.Point, _ core.Size) {
			d.interactions++
			d.addLog("TouchDown", pos)
			d.playTone(toneDown)
		},
		DragInside:  d.logger("DragInside"),
		DragOutside: d.logger("DragOutside"),
		DragEnter:   d.logger("DragEnter"),
		DragExit:    d.logger("DragExit"),
		TouchUp:     d.logger("TouchUp"),
		Confirm: func(pos core.Point, _ core.Size) {
			d.confirms++
			d.addLog("Confirm", pos)
			d.playTone(toneConfirm)
		},
		Cancel: func(pos core.Point, _ core.Size) {
			d.cancels++
			d.addLog("Cancel", pos)
			d.playTone(toneCancel)
		},
		// Dragging fires on every sample; logging it would drown the rest
	})

	d.tracker = touch.NewTracker(dispatcher)
	d.adapter = terminal.NewPointerAdapter(d.tracker)
	d.layout()

	if err := d.initAudio(); err != nil {
		// Non-fatal, the demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return d, nil
}

// layout centers the hit region and pushes its placement to the adapter
func (d *Demo) layout() {
	w, h := d.screen.Size()
	rw, rh := d.cfg.RegionWidth, d.cfg.RegionHeight
	if rw > w-2 {
		rw = w - 2
	}
	if rh > h-4 {
		rh = h - 4
	}
	d.adapter.SetBounds(core.Area{
		X:      (w - rw) / 2,
		Y:      (h - rh) / 2,
		Width:  rw,
		Height: rh,
	})
}

func (d *Demo) logger(tag string) touch.Handler {
	return func(pos core.Point, _ core.Size) {
		d.addLog(tag, pos)
	}
}

func (d *Demo) addLog(tag string, pos core.Point) {
	entry := fmt.Sprintf("%-11s (%.0f,%.0f)", tag, pos.X, pos.Y)
	if len(d.eventLog) >= d.cfg.LogLines {
		copy(d.eventLog, d.eventLog[1:])
		d.eventLog = d.eventLog[:d.cfg.LogLines-1]
	}
	d.eventLog = append(d.eventLog, entry)
}

func (d *Demo) initAudio() error {
	if !d.cfg.Sound {
		return nil
	}
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

func (d *Demo) playTone(freq float64) {
	if !d.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(50 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, freq)

	speaker.Play(beep.Take(duration, sine))
}

func (d *Demo) draw() {
	d.screen.Clear()
	_, h := d.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	logStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)

	d.drawText(1, 0, "touch-demo - press and drag the mouse over the region - Ctrl+C to quit", titleStyle)

	// Hit region, highlighted while an interaction is active
	bounds := d.adapter.Bounds()
	regionStyle := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	if d.tracker.Active() {
		regionStyle = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	}
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			d.screen.SetContent(x, y, ' ', nil, regionStyle)
		}
	}
	label := fmt.Sprintf("%dx%d", bounds.Width, bounds.Height)
	d.drawText(bounds.X+1, bounds.Y, label, regionStyle.Foreground(tcell.ColorWhite))

	// Event log down the left edge
	for i, entry := range d.eventLog {
		if 2+i >= h-1 {
			break
		}
		d.drawText(1, 2+i, entry, logStyle)
	}

	status := fmt.Sprintf("Interactions: %d | Confirms: %d | Cancels: %d | Active: %v",
		d.interactions, d.confirms, d.cancels, d.tracker.Active())
	d.drawText(1, h-1, status, dimStyle)

	d.screen.Show()
}

func (d *Demo) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *Demo) run() {
	d.draw()

	for {
		ev := d.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				return
			}
		case *tcell.EventResize:
			d.screen.Sync()
			d.layout()
		case *tcell.EventMouse:
			d.adapter.HandleEvent(ev)
		}

		d.draw()
	}
}

func (d *Demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func main() {
	initializeConfigIfNot()
	cfg := readConfig()

	demo, err := NewDemo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	demo.run()
}
