package terminal

import "testing"

func TestParseEventSingleBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want KeyEvent
	}{
		{"lowercase letter", "a", KeyEvent{Code: CodeRune, Rune: 'a'}},
		{"uppercase carries shift", "Q", KeyEvent{Code: CodeRune, Rune: 'Q', Mods: ModShift}},
		{"digit", "7", KeyEvent{Code: CodeRune, Rune: '7'}},
		{"slash", "/", KeyEvent{Code: CodeRune, Rune: '/'}},
		{"ctrl letter", "\x03", KeyEvent{Code: CodeRune, Rune: 'c', Mods: ModCtrl}},
		{"ctrl space", "\x00", KeyEvent{Code: CodeRune, Rune: ' ', Mods: ModCtrl}},
		{"tab", "\x09", KeyEvent{Code: CodeTab}},
		{"enter cr", "\x0d", KeyEvent{Code: CodeEnter}},
		{"enter lf", "\x0a", KeyEvent{Code: CodeEnter}},
		{"backspace del", "\x7f", KeyEvent{Code: CodeBackspace}},
		{"backspace bs", "\x08", KeyEvent{Code: CodeBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, consumed, ok := parseEvent([]byte(tt.in))
			if !ok {
				t.Fatalf("parseEvent(%q) not ok", tt.in)
			}
			if consumed != len(tt.in) {
				t.Errorf("consumed = %d, want %d", consumed, len(tt.in))
			}
			if ev != tt.want {
				t.Errorf("parseEvent(%q) = %+v, want %+v", tt.in, ev, tt.want)
			}
		})
	}
}

func TestParseEventEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want KeyEvent
	}{
		{"up", "\x1b[A", KeyEvent{Code: CodeUp}},
		{"down", "\x1b[B", KeyEvent{Code: CodeDown}},
		{"right", "\x1b[C", KeyEvent{Code: CodeRight}},
		{"left", "\x1b[D", KeyEvent{Code: CodeLeft}},
		{"home", "\x1b[H", KeyEvent{Code: CodeHome}},
		{"end", "\x1b[F", KeyEvent{Code: CodeEnd}},
		{"shift tab", "\x1b[Z", KeyEvent{Code: CodeTab, Mods: ModShift}},
		{"ctrl up", "\x1b[1;5A", KeyEvent{Code: CodeUp, Mods: ModCtrl}},
		{"shift left", "\x1b[1;2D", KeyEvent{Code: CodeLeft, Mods: ModShift}},
		{"alt down", "\x1b[1;3B", KeyEvent{Code: CodeDown, Mods: ModAlt}},
		{"shift alt ctrl right", "\x1b[1;8C", KeyEvent{Code: CodeRight, Mods: ModShift | ModAlt | ModCtrl}},
		{"delete", "\x1b[3~", KeyEvent{Code: CodeDelete}},
		{"insert", "\x1b[2~", KeyEvent{Code: CodeInsert}},
		{"page up", "\x1b[5~", KeyEvent{Code: CodePageUp}},
		{"page down shift", "\x1b[6;2~", KeyEvent{Code: CodePageDown, Mods: ModShift}},
		{"rxvt home", "\x1b[7~", KeyEvent{Code: CodeHome}},
		{"f1 ss3", "\x1bOP", KeyEvent{Code: CodeFunction, Fn: 1}},
		{"f4 ss3", "\x1bOS", KeyEvent{Code: CodeFunction, Fn: 4}},
		{"keypad enter", "\x1bOM", KeyEvent{Code: CodeEnter}},
		{"f5", "\x1b[15~", KeyEvent{Code: CodeFunction, Fn: 5}},
		{"f12 ctrl", "\x1b[24;5~", KeyEvent{Code: CodeFunction, Fn: 12, Mods: ModCtrl}},
		{"f2 shift csi", "\x1b[1;2Q", KeyEvent{Code: CodeFunction, Fn: 2, Mods: ModShift}},
		{"alt letter", "\x1ba", KeyEvent{Code: CodeRune, Rune: 'a', Mods: ModAlt}},
		{"alt uppercase", "\x1bZ", KeyEvent{Code: CodeRune, Rune: 'Z', Mods: ModAlt | ModShift}},
		{"alt ctrl letter", "\x1b\x04", KeyEvent{Code: CodeRune, Rune: 'd', Mods: ModAlt | ModCtrl}},
		{"alt escape", "\x1b\x1b", KeyEvent{Code: CodeEscape, Mods: ModAlt}},
		{"alt backspace", "\x1b\x7f", KeyEvent{Code: CodeBackspace, Mods: ModAlt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, consumed, ok := parseEvent([]byte(tt.in))
			if !ok {
				t.Fatalf("parseEvent(%q) not ok", tt.in)
			}
			if consumed != len(tt.in) {
				t.Errorf("consumed = %d, want %d", consumed, len(tt.in))
			}
			if ev != tt.want {
				t.Errorf("parseEvent(%q) = %+v, want %+v", tt.in, ev, tt.want)
			}
		})
	}
}

func TestParseEventUTF8(t *testing.T) {
	ev, consumed, ok := parseEvent([]byte("é"))
	if !ok {
		t.Fatal("not ok")
	}
	if consumed != 2 {
		t.Errorf("consumed = %d, want 2", consumed)
	}
	if ev.Code != CodeRune || ev.Rune != 'é' {
		t.Errorf("got %+v", ev)
	}
}

func TestParseEventIncomplete(t *testing.T) {
	for _, in := range []string{"", "\x1b", "\x1b[", "\x1b[1;5", "\xc3"} {
		if _, _, ok := parseEvent([]byte(in)); ok {
			t.Errorf("parseEvent(%q) should wait for more data", in)
		}
	}
}

func TestParseEventSwallowsUnknownSequences(t *testing.T) {
	// SGR-style report; must consume fully and report no key
	ev, consumed, ok := parseEvent([]byte("\x1b[0m"))
	if !ok {
		t.Fatal("not ok")
	}
	if consumed != 4 {
		t.Errorf("consumed = %d, want 4", consumed)
	}
	if ev.Code != CodeNone {
		t.Errorf("got %+v, want CodeNone", ev)
	}
}

func TestParseEventLeavesTrailingBytes(t *testing.T) {
	ev, consumed, ok := parseEvent([]byte("\x1b[Axyz"))
	if !ok || ev.Code != CodeUp {
		t.Fatalf("got %+v ok=%v", ev, ok)
	}
	if consumed != 3 {
		t.Errorf("consumed = %d, want 3", consumed)
	}
}

func TestModFromParam(t *testing.T) {
	tests := []struct {
		param int
		want  Modifier
	}{
		{0, ModNone},
		{1, ModNone},
		{2, ModShift},
		{3, ModAlt},
		{4, ModShift | ModAlt},
		{5, ModCtrl},
		{6, ModShift | ModCtrl},
		{7, ModAlt | ModCtrl},
		{8, ModShift | ModAlt | ModCtrl},
		{9, ModNone},
	}
	for _, tt := range tests {
		if got := modFromParam(tt.param); got != tt.want {
			t.Errorf("modFromParam(%d) = %d, want %d", tt.param, got, tt.want)
		}
	}
}
