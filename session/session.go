// Package session owns the terminal session: screen mode, cursor
// visibility, frame pacing, and guaranteed restoration on exit.
//
// A Controller is built once with the builder chain, drives frames through
// RunFrame, and is consumed by Exit. Setup (alternate screen, raw mode) is
// one-shot on the first frame; teardown is unconditional and must run on
// every exit path — callers defer Exit right after construction:
//
//	sess := session.New(drv, 30).ClearEachFrame().RawMode().HideCursor()
//	defer sess.Exit()
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tuikit/terminal"
)

// Phase is the session lifecycle state.
type Phase uint8

const (
	// PhaseNew means no frame has run yet; one-shot setup is pending.
	PhaseNew Phase = iota
	// PhaseRunning means setup is applied and frames are being driven.
	PhaseRunning
	// PhaseDone means Exit ran; the controller accepts no further frames.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// ErrSessionDone is returned by RunFrame after Exit has consumed the session.
var ErrSessionDone = errors.New("session already exited")

// Controller drives the terminal session. It is owned by the single
// goroutine running the frame loop; no locking discipline is needed.
type Controller struct {
	drv   terminal.Driver
	clock Clock
	log   *log.Logger

	fps            int
	altScreen      bool
	clearEachFrame bool
	rawMode        bool
	hideCursor     bool

	phase      Phase
	rawEnabled bool // raw mode was actually enabled, guards teardown
}

// New creates a session controller over the driver with the given target
// frame rate. Rates below 1 clamp to 1.
func New(drv terminal.Driver, fps int) *Controller {
	return &Controller{
		drv:   drv,
		clock: realClock{},
		log:   log.New(io.Discard),
		fps:   clampFPS(fps),
	}
}

// AlternateScreen enables the alternate screen buffer for the run.
func (c *Controller) AlternateScreen() *Controller {
	c.altScreen = true
	return c
}

// ClearEachFrame clears the screen at the start of every frame.
func (c *Controller) ClearEachFrame() *Controller {
	c.clearEachFrame = true
	return c
}

// RawMode enables raw input mode for the run.
func (c *Controller) RawMode() *Controller {
	c.rawMode = true
	return c
}

// HideCursor hides the cursor while the session runs.
func (c *Controller) HideCursor() *Controller {
	c.hideCursor = true
	return c
}

// WithClock substitutes the frame-pacing clock.
func (c *Controller) WithClock(clock Clock) *Controller {
	c.clock = clock
	return c
}

// WithLogger attaches a logger for lifecycle events. The session owns the
// screen, so point it at a file, never at stderr mid-session.
func (c *Controller) WithLogger(l *log.Logger) *Controller {
	c.log = l
	return c
}

// SetFPS changes the target frame rate between frames. Rates below 1
// clamp to 1.
func (c *Controller) SetFPS(fps int) {
	c.fps = clampFPS(fps)
}

// FPS returns the effective target frame rate.
func (c *Controller) FPS() int { return c.fps }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// RunFrame executes one frame: one-shot setup on the first call, then
// cursor home, cursor visibility, optional clear, the draw callback, and
// the frame-budget sleep. The callback is side-effect only; its failures
// are the caller's to handle, not propagated through here.
func (c *Controller) RunFrame(draw func()) error {
	switch c.phase {
	case PhaseDone:
		return ErrSessionDone
	case PhaseNew:
		if c.altScreen {
			if err := c.drv.EnterAltScreen(); err != nil {
				return fmt.Errorf("enter alternate screen: %w", err)
			}
		}
		if c.rawMode {
			if err := c.drv.EnableRawMode(); err != nil {
				return fmt.Errorf("enable raw mode: %w", err)
			}
			c.rawEnabled = true
		}
		c.phase = PhaseRunning
		c.log.Debug("session started",
			"alt_screen", c.altScreen,
			"raw_mode", c.rawMode,
			"clear_each_frame", c.clearEachFrame,
			"cursor_hidden", c.hideCursor,
			"fps", c.fps)
	}

	if err := c.drv.MoveCursor(0, 0); err != nil {
		return fmt.Errorf("cursor home: %w", err)
	}

	if c.hideCursor {
		if err := c.drv.HideCursor(); err != nil {
			return fmt.Errorf("hide cursor: %w", err)
		}
	} else {
		if err := c.drv.ShowCursor(); err != nil {
			return fmt.Errorf("show cursor: %w", err)
		}
	}

	if c.clearEachFrame {
		if err := c.drv.Clear(); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	}

	draw()

	c.clock.Sleep(time.Duration(1000/c.fps) * time.Millisecond)
	return nil
}

// Exit restores the terminal: cursor home and visible, alternate screen
// left, raw mode disabled iff it was enabled. Safe to call more than once;
// teardown is best-effort and reports every failure rather than stopping
// at the first, so a failed step never leaves raw mode stuck on.
func (c *Controller) Exit() error {
	if c.phase == PhaseDone {
		return nil
	}
	c.phase = PhaseDone

	var errs []error
	if err := c.drv.MoveCursor(0, 0); err != nil {
		errs = append(errs, fmt.Errorf("cursor home: %w", err))
	}
	if err := c.drv.ShowCursor(); err != nil {
		errs = append(errs, fmt.Errorf("show cursor: %w", err))
	}
	if err := c.drv.LeaveAltScreen(); err != nil {
		errs = append(errs, fmt.Errorf("leave alternate screen: %w", err))
	}
	if c.rawEnabled {
		if err := c.drv.DisableRawMode(); err != nil {
			errs = append(errs, fmt.Errorf("disable raw mode: %w", err))
		}
		c.rawEnabled = false
	}

	c.log.Debug("session restored")
	return errors.Join(errs...)
}

// Size returns the current terminal dimensions in character cells.
func (c *Controller) Size() (width, height int, err error) {
	w, h, err := c.drv.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return w, h, nil
}

// Write forwards raw text to the driver at the current cursor position,
// letting the controller serve as an io.Writer for callers that format
// straight into the terminal.
func (c *Controller) Write(p []byte) (int, error) {
	if err := c.drv.Print(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func clampFPS(fps int) int {
	if fps < 1 {
		return 1
	}
	return fps
}
