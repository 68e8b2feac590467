// FILE: cmd/tuikit-demo/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tuikit/cursor"
	"github.com/lixenwraith/tuikit/input"
	"github.com/lixenwraith/tuikit/object"
	"github.com/lixenwraith/tuikit/session"
	"github.com/lixenwraith/tuikit/terminal"
)

const sampleRate = beep.SampleRate(44100)

func main() {
	fps := flag.Int("fps", 30, "target frame rate")
	useTcell := flag.Bool("tcell", false, "use the tcell driver instead of direct ANSI")
	logPath := flag.String("log", "", "write a debug log to this file")
	sound := flag.Bool("sound", true, "keypress tone")
	flag.Parse()

	var drv terminal.Driver
	if *useTcell {
		d, err := terminal.NewTcellDriver()
		if err != nil {
			fmt.Fprintf(os.Stderr, "tuikit-demo: %v\n", err)
			os.Exit(1)
		}
		drv = d
	} else {
		drv = terminal.NewDriver()
	}

	// The session owns the screen; logs go to a file or nowhere
	logger := clog.New(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tuikit-demo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = clog.NewWithOptions(f, clog.Options{
			ReportTimestamp: true,
			Level:           clog.DebugLevel,
		})
	}

	audio := *sound && initAudio(logger)

	if err := run(drv, *fps, logger, audio); err != nil {
		fmt.Fprintf(os.Stderr, "tuikit-demo: %v\n", err)
		os.Exit(1)
	}
}

func initAudio(logger *clog.Logger) bool {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the demo runs silent
		logger.Warn("audio initialization failed", "err", err)
		return false
	}
	return true
}

func playTone(freq float64) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

func run(drv terminal.Driver, fps int, logger *clog.Logger, audio bool) (err error) {
	sess := session.New(drv, fps).
		AlternateScreen().
		ClearEachFrame().
		RawMode().
		HideCursor().
		WithLogger(logger)

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
		if exitErr := sess.Exit(); exitErr != nil && err == nil {
			err = exitErr
		}
	}()

	objs := object.NewRegistry[string](drv)
	objs.AddAt("title", object.Text("tuikit demo - q or Ctrl+C quits, Enter beeps"), 2, 1)
	objs.AddAt("help", object.Text("arrow keys move the marker"), 2, 2)
	objs.Add("spacer", object.Air())
	objs.Add("status", object.Text(""))

	dec := input.NewDecoder(drv)

	markerX, markerY := 10, 5
	frames := 0
	last := input.NoInput

	for {
		frames++

		width, height, sizeErr := sess.Size()
		if sizeErr != nil {
			return sizeErr
		}

		objs.AddAt("marker", object.Text("[*]"), markerX, markerY)
		status := fmt.Sprintf("frame %d  last input: %s", frames, last)
		if upErr := objs.Update("status", object.Text(status)); upErr != nil {
			return upErr
		}

		if frameErr := sess.RunFrame(func() {
			for _, id := range []string{"title", "help", "spacer", "marker"} {
				if drawErr := objs.Draw(id); drawErr != nil {
					logger.Error("draw failed", "id", id, "err", drawErr)
				}
			}
			if drawErr := objs.DrawAt("status", cursor.To(0, height-1)); drawErr != nil {
				logger.Error("draw failed", "id", "status", "err", drawErr)
			}
		}); frameErr != nil {
			return frameErr
		}

		in, pollErr := dec.PollDefault()
		if pollErr != nil {
			return pollErr
		}
		if !in.IsNone() {
			last = in
			logger.Debug("input", "value", in.String())
		}

		switch {
		case in.Equal(input.Ctrl(input.KeyC)),
			in.Equal(input.Press(input.KeyQ)),
			in.Equal(input.Shift(input.Press(input.KeyQ))):
			return nil
		case in.Kind == input.KindEnter:
			if audio {
				playTone(880)
			}
		case in.Kind == input.KindUp:
			markerY--
		case in.Kind == input.KindDown:
			markerY++
		case in.Kind == input.KindLeft:
			markerX--
		case in.Kind == input.KindRight:
			markerX++
		}

		if markerX < 0 {
			markerX = 0
		}
		if markerX > width-3 {
			markerX = width - 3
		}
		if markerY < 3 {
			markerY = 3
		}
		if markerY > height-2 {
			markerY = height - 2
		}
	}
}
