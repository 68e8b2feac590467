package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tcellDriver implements Driver on a tcell.Screen for terminals the direct
// ANSI path does not cover (terminfo-dependent environments).
//
// tcell couples raw mode and the alternate screen inside Screen.Init, so
// the four mode primitives collapse onto one screen lifecycle: the first
// output or mode primitive takes the screen, and either LeaveAltScreen or
// DisableRawMode releases it. A session on this driver therefore always
// runs full-screen.
type tcellDriver struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	active  bool
	visible bool
	penX    int
	penY    int
}

// NewTcellDriver returns a Driver backed by a tcell.Screen.
func NewTcellDriver() (Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return &tcellDriver{screen: screen}, nil
}

func (d *tcellDriver) ensureActive() error {
	if d.active {
		return nil
	}
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	d.events = make(chan tcell.Event, 16)
	d.quit = make(chan struct{})
	go d.screen.ChannelEvents(d.events, d.quit)
	d.active = true
	d.visible = false // tcell starts with the cursor hidden
	return nil
}

func (d *tcellDriver) release() {
	if !d.active {
		return
	}
	close(d.quit)
	d.screen.Fini()
	d.active = false
}

func (d *tcellDriver) placeCursor() {
	if d.visible {
		d.screen.ShowCursor(d.penX, d.penY)
	} else {
		d.screen.HideCursor()
	}
}

func (d *tcellDriver) MoveCursor(x, y int) error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	w, h := d.screen.Size()
	d.penX = clamp(x, 0, w-1)
	d.penY = clamp(y, 0, h-1)
	d.placeCursor()
	d.screen.Show()
	return nil
}

func (d *tcellDriver) MoveCursorBy(dir Direction, n int) error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	x, y := d.penX, d.penY
	switch dir {
	case DirLeft:
		x -= n
	case DirRight:
		x += n
	case DirUp:
		y -= n
	case DirDown:
		y += n
	}
	return d.MoveCursor(x, y)
}

func (d *tcellDriver) MoveToNextLine(n int) error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	return d.MoveCursor(0, d.penY+n)
}

func (d *tcellDriver) ShowCursor() error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	d.visible = true
	d.placeCursor()
	d.screen.Show()
	return nil
}

func (d *tcellDriver) HideCursor() error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	d.visible = false
	d.placeCursor()
	d.screen.Show()
	return nil
}

func (d *tcellDriver) EnterAltScreen() error {
	return d.ensureActive()
}

func (d *tcellDriver) LeaveAltScreen() error {
	d.release()
	return nil
}

func (d *tcellDriver) EnableRawMode() error {
	return d.ensureActive()
}

func (d *tcellDriver) DisableRawMode() error {
	d.release()
	return nil
}

func (d *tcellDriver) Clear() error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	d.screen.Clear()
	d.screen.Show()
	return nil
}

func (d *tcellDriver) Size() (int, int, error) {
	if err := d.ensureActive(); err != nil {
		return 0, 0, err
	}
	w, h := d.screen.Size()
	return w, h, nil
}

func (d *tcellDriver) Print(text string) error {
	if err := d.ensureActive(); err != nil {
		return err
	}
	style := tcell.StyleDefault
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, r := range line {
			d.screen.SetContent(d.penX, d.penY, r, nil, style)
			d.penX += runewidth.RuneWidth(r)
		}
		if i < len(lines)-1 {
			d.penX = 0
			d.penY++
		}
	}
	d.placeCursor()
	d.screen.Show()
	return nil
}

func (d *tcellDriver) PollKey(timeout time.Duration) (KeyEvent, bool, error) {
	if err := d.ensureActive(); err != nil {
		return KeyEvent{}, false, err
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-d.events:
		if key, isKey := ev.(*tcell.EventKey); isKey {
			return mapTcellKey(key), true, nil
		}
		return KeyEvent{}, false, nil // resize etc: not a key press
	case <-timer.C:
		return KeyEvent{}, false, nil
	}
}

// mapTcellKey converts a tcell key event to the driver's raw event form.
// Ctrl+letter keys arrive as dedicated tcell key codes; they normalize to
// the lower-case rune with ModCtrl, same as the ANSI driver.
func mapTcellKey(ev *tcell.EventKey) KeyEvent {
	mods := ModNone
	tm := ev.Modifiers()
	if tm&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if tm&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if tm&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		return runeEvent(ev.Rune(), mods)
	case tcell.KeyUp:
		return KeyEvent{Code: CodeUp, Mods: mods}
	case tcell.KeyDown:
		return KeyEvent{Code: CodeDown, Mods: mods}
	case tcell.KeyLeft:
		return KeyEvent{Code: CodeLeft, Mods: mods}
	case tcell.KeyRight:
		return KeyEvent{Code: CodeRight, Mods: mods}
	case tcell.KeyEnter:
		return KeyEvent{Code: CodeEnter, Mods: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: CodeBackspace, Mods: mods}
	case tcell.KeyTab:
		return KeyEvent{Code: CodeTab, Mods: mods}
	case tcell.KeyBacktab:
		return KeyEvent{Code: CodeTab, Mods: mods | ModShift}
	case tcell.KeyEscape:
		return KeyEvent{Code: CodeEscape, Mods: mods}
	case tcell.KeyEnd:
		return KeyEvent{Code: CodeEnd, Mods: mods}
	case tcell.KeyInsert:
		return KeyEvent{Code: CodeInsert, Mods: mods}
	case tcell.KeyHome:
		return KeyEvent{Code: CodeHome, Mods: mods}
	case tcell.KeyPgUp:
		return KeyEvent{Code: CodePageUp, Mods: mods}
	case tcell.KeyPgDn:
		return KeyEvent{Code: CodePageDown, Mods: mods}
	case tcell.KeyDelete:
		return KeyEvent{Code: CodeDelete, Mods: mods}
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
		return KeyEvent{Code: CodeFunction, Fn: uint8(k-tcell.KeyF1) + 1, Mods: mods}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyEvent{Code: CodeRune, Rune: rune('a' + k - tcell.KeyCtrlA), Mods: mods | ModCtrl}
	}

	return KeyEvent{Code: CodeNone}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
