//go:build unix

package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ansiDriver implements Driver with direct ANSI sequences on stdout and
// synchronous poll(2)-based input. No terminfo, no reader goroutine: the
// runtime's frame loop is single-threaded and polls between frames.
type ansiDriver struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	w     *bufio.Writer

	oldTerm *term.State // non-nil while raw mode is active

	buf     []byte // unconsumed input bytes carried across polls
	scratch [256]byte
}

// NewDriver returns the default ANSI driver bound to stdin/stdout.
func NewDriver() Driver {
	return &ansiDriver{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
		w:     bufio.NewWriterSize(os.Stdout, 4096),
		buf:   make([]byte, 0, 256),
	}
}

func (d *ansiDriver) emit() error {
	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

func (d *ansiDriver) MoveCursor(x, y int) error {
	writeCursorPos(d.w, x, y)
	return d.emit()
}

func (d *ansiDriver) MoveCursorBy(dir Direction, n int) error {
	var final byte
	switch dir {
	case DirUp:
		final = 'A'
	case DirDown:
		final = 'B'
	case DirRight:
		final = 'C'
	case DirLeft:
		final = 'D'
	default:
		return fmt.Errorf("move cursor: unknown direction %d", dir)
	}
	writeCursorStep(d.w, final, n)
	return d.emit()
}

func (d *ansiDriver) MoveToNextLine(n int) error {
	writeCursorStep(d.w, 'E', n)
	return d.emit()
}

func (d *ansiDriver) ShowCursor() error {
	d.w.Write(csiCursorShow)
	return d.emit()
}

func (d *ansiDriver) HideCursor() error {
	d.w.Write(csiCursorHide)
	return d.emit()
}

func (d *ansiDriver) EnterAltScreen() error {
	d.w.Write(csiAltScreenEnter)
	return d.emit()
}

func (d *ansiDriver) LeaveAltScreen() error {
	d.w.Write(csiAltScreenExit)
	return d.emit()
}

func (d *ansiDriver) EnableRawMode() error {
	if d.oldTerm != nil {
		return nil
	}
	if !term.IsTerminal(d.inFd) {
		return fmt.Errorf("enable raw mode: stdin is not a terminal")
	}
	old, err := term.MakeRaw(d.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	d.oldTerm = old
	return nil
}

func (d *ansiDriver) DisableRawMode() error {
	if d.oldTerm == nil {
		return nil
	}
	if err := term.Restore(d.inFd, d.oldTerm); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	d.oldTerm = nil
	return nil
}

func (d *ansiDriver) Clear() error {
	d.w.Write(csiClear)
	return d.emit()
}

func (d *ansiDriver) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(d.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

func (d *ansiDriver) Print(text string) error {
	if d.oldTerm != nil {
		// Raw mode disables ONLCR; bare LF would not return the carriage
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	d.w.WriteString(text)
	return d.emit()
}

// PollKey waits up to timeout for one key event. Partial escape sequences
// are carried in d.buf across calls; a lone ESC that nothing follows within
// the window is reported as the Escape key.
func (d *ansiDriver) PollKey(timeout time.Duration) (KeyEvent, bool, error) {
	deadline := time.Now().Add(timeout)

	for {
		for {
			ev, consumed, ok := parseEvent(d.buf)
			if !ok {
				break
			}
			d.consume(consumed)
			if ev.Code == CodeNone {
				continue // swallowed unknown sequence
			}
			return ev, true, nil
		}

		remain := time.Until(deadline)
		if remain < 0 {
			remain = 0
		}

		fds := []unix.PollFd{{Fd: int32(d.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(remain.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return KeyEvent{}, false, fmt.Errorf("poll input: %w", err)
		}

		if n == 0 { // window elapsed
			if len(d.buf) == 1 && d.buf[0] == 0x1b {
				d.buf = d.buf[:0]
				return KeyEvent{Code: CodeEscape}, true, nil
			}
			return KeyEvent{}, false, nil
		}

		rn, err := unix.Read(d.inFd, d.scratch[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return KeyEvent{}, false, fmt.Errorf("read input: %w", err)
		}
		if rn == 0 {
			return KeyEvent{}, false, nil // EOF
		}
		d.buf = append(d.buf, d.scratch[:rn]...)
	}
}

func (d *ansiDriver) consume(n int) {
	if n >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	copy(d.buf, d.buf[n:])
	d.buf = d.buf[:len(d.buf)-n]
}

// resetTerminalMode attempts to restore the terminal to cooked mode.
// Best-effort for crash recovery; errors ignored.
func resetTerminalMode() {
	// Restore via /dev/tty so it works even with stdin redirected
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, unix.TCSETS, termios)
		}
	}
}
