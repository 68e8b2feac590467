// Package terminal provides the driver layer for the runtime: a narrow
// Driver interface over raw terminal primitives, plus three implementations.
//
// Implementations:
//   - ANSI driver (NewDriver): direct CSI sequences on stdout, raw mode via
//     termios, synchronous key polling with poll(2). Bypasses terminfo
//     entirely. Target environments: Linux, macOS, BSDs with
//     xterm-compatible terminals.
//   - tcell driver (NewTcellDriver): terminfo-aware implementation on
//     gdamore/tcell for terminals the direct ANSI path does not cover.
//   - SimDriver: in-memory driver for tests and headless runs.
//
// The driver is deliberately dumb: it moves the cursor, toggles screen
// modes, prints text and reports raw key events. Decoding raw events into
// the semantic input model is the input package's job.
package terminal
