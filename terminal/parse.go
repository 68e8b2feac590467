package terminal

import "unicode"

// parseEvent decodes the first key event in data. consumed reports how many
// bytes the event used; ok is false when data is empty or ends in an
// incomplete escape sequence (callers wait for more bytes). Well-formed but
// unknown sequences consume their bytes and yield CodeNone so stray
// terminal reports are swallowed instead of replayed as garbage.
func parseEvent(data []byte) (ev KeyEvent, consumed int, ok bool) {
	if len(data) == 0 {
		return KeyEvent{}, 0, false
	}

	b := data[0]

	// Fast path: printable ASCII
	if b >= 0x20 && b < 0x7f {
		return runeEvent(rune(b), ModNone), 1, true
	}

	if b == 0x1b {
		return parseEscape(data)
	}

	if b < 0x20 {
		return controlEvent(b, ModNone), 1, true
	}

	if b == 0x7f {
		return KeyEvent{Code: CodeBackspace}, 1, true
	}

	// UTF-8 multibyte
	seqLen := utf8SeqLen(b)
	if seqLen == 0 {
		// Invalid start byte, swallow
		return KeyEvent{Code: CodeNone}, 1, true
	}
	if len(data) < seqLen {
		return KeyEvent{}, 0, false
	}
	rn, size := decodeRune(data)
	return runeEvent(rn, ModNone), size, true
}

// runeEvent builds a character event. Upper-case runes carry ModShift, the
// only shift signal a byte stream provides.
func runeEvent(r rune, mods Modifier) KeyEvent {
	if unicode.IsUpper(r) {
		mods |= ModShift
	}
	return KeyEvent{Code: CodeRune, Rune: r, Mods: mods}
}

// controlEvent maps a C0 control byte to an event. Ctrl+letter bytes
// (0x01-0x1a) normalize to the lower-case rune with ModCtrl so modifier
// handling stays in the mask.
func controlEvent(b byte, mods Modifier) KeyEvent {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return KeyEvent{Code: CodeRune, Rune: ' ', Mods: mods | ModCtrl}
	case 0x08:
		return KeyEvent{Code: CodeBackspace, Mods: mods}
	case 0x09:
		return KeyEvent{Code: CodeTab, Mods: mods}
	case 0x0a, 0x0d:
		return KeyEvent{Code: CodeEnter, Mods: mods}
	case 0x1b:
		return KeyEvent{Code: CodeEscape, Mods: mods}
	case 0x1c:
		return KeyEvent{Code: CodeRune, Rune: '\\', Mods: mods | ModCtrl}
	case 0x1d:
		return KeyEvent{Code: CodeRune, Rune: ']', Mods: mods | ModCtrl}
	case 0x1e:
		return KeyEvent{Code: CodeRune, Rune: '^', Mods: mods | ModCtrl}
	case 0x1f:
		return KeyEvent{Code: CodeRune, Rune: '_', Mods: mods | ModCtrl}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Code: CodeRune, Rune: rune('a' + b - 1), Mods: mods | ModCtrl}
	}
	return KeyEvent{Code: CodeNone}
}

// parseEscape handles everything after a leading ESC byte
func parseEscape(data []byte) (KeyEvent, int, bool) {
	if len(data) < 2 {
		return KeyEvent{}, 0, false // wait for more data
	}

	switch {
	case data[1] == 0x1b:
		return KeyEvent{Code: CodeEscape, Mods: ModAlt}, 2, true
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		ev := controlEvent(data[1], ModAlt)
		return ev, 2, true
	case data[1] == 0x7f:
		return KeyEvent{Code: CodeBackspace, Mods: ModAlt}, 2, true
	default:
		return runeEvent(rune(data[1]), ModAlt), 2, true
	}
}

// parseCSI decodes ESC [ <params> <final> sequences
func parseCSI(data []byte) (KeyEvent, int, bool) {
	if len(data) < 3 {
		return KeyEvent{}, 0, false
	}

	// Scan for the final byte; cap the scan so garbage cannot stall parsing
	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}
	for end < maxScan && !csiFinal(data[end]) {
		if data[end] < 0x20 || data[end] > 0x7e {
			// Not a CSI sequence after all; swallow the ESC [
			return KeyEvent{Code: CodeNone}, 2, true
		}
		end++
	}
	if end >= maxScan && (end >= len(data) || !csiFinal(data[end])) {
		if len(data) > 16 {
			// Oversized unknown sequence, drop it
			return KeyEvent{Code: CodeNone}, end, true
		}
		return KeyEvent{}, 0, false // incomplete
	}

	final := data[end]
	p1, p2, pok := csiParams(data[2:end])
	consumed := end + 1
	if !pok {
		return KeyEvent{Code: CodeNone}, consumed, true
	}

	switch {
	case final == 'Z': // Shift+Tab
		return KeyEvent{Code: CodeTab, Mods: ModShift}, consumed, true

	case final == '~':
		mods := modFromParam(p2)
		if code, found := tildeKeys[p1]; found {
			return KeyEvent{Code: code, Mods: mods}, consumed, true
		}
		if fn, found := tildeFn[p1]; found {
			return KeyEvent{Code: CodeFunction, Fn: fn, Mods: mods}, consumed, true
		}

	case letterKeys[final] != CodeNone:
		return KeyEvent{Code: letterKeys[final], Mods: modFromParam(p2)}, consumed, true

	case ss3Fn[final] != 0: // xterm F1-F4 with modifiers: ESC [ 1 ; m P..S
		return KeyEvent{Code: CodeFunction, Fn: ss3Fn[final], Mods: modFromParam(p2)}, consumed, true
	}

	return KeyEvent{Code: CodeNone}, consumed, true
}

// parseSS3 decodes ESC O <final> sequences
func parseSS3(data []byte) (KeyEvent, int, bool) {
	if len(data) < 3 {
		return KeyEvent{}, 0, false
	}
	final := data[2]
	if code, found := letterKeys[final]; found {
		return KeyEvent{Code: code}, 3, true
	}
	if fn, found := ss3Fn[final]; found {
		return KeyEvent{Code: CodeFunction, Fn: fn}, 3, true
	}
	if final == 'M' { // keypad Enter
		return KeyEvent{Code: CodeEnter}, 3, true
	}
	// Unknown SS3, swallow
	return KeyEvent{Code: CodeNone}, 3, true
}

func csiFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// csiParams extracts up to two numeric parameters from "p1;p2". Missing
// parameters report as 0.
func csiParams(data []byte) (p1, p2 int, ok bool) {
	cur := &p1
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9':
			*cur = *cur*10 + int(b-'0')
			if *cur > 9999 {
				return 0, 0, false
			}
		case b == ';':
			if cur == &p2 {
				return 0, 0, false // more than two params is not a key
			}
			cur = &p2
		default:
			return 0, 0, false
		}
	}
	return p1, p2, true
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}
	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}
	if r < min {
		return 0xFFFD, 1 // overlong encoding
	}
	return r, size
}
