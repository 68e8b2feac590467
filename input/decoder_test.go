package input

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/tuikit/terminal"
)

func TestDecodeRunes(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.KeyEvent
		want Input
	}{
		{"plain letter", terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'a'}, Press(KeyA)},
		{"other rune", terminal.KeyEvent{Code: terminal.CodeRune, Rune: '/'}, Press(Key('/'))},
		{"ctrl", terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'c', Mods: terminal.ModCtrl}, Ctrl(KeyC)},
		{"alt", terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'x', Mods: terminal.ModAlt}, Alt(KeyX)},
		{"shift wraps press", terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'Q', Mods: terminal.ModShift}, Shift(Press(KeyQ))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.ev)
			if !got.Equal(tt.want) {
				t.Errorf("Decode(%+v) = %s, want %s", tt.ev, got, tt.want)
			}
		})
	}
}

// Combined modifier masks collapse to a single wrapper: Ctrl beats Alt
// beats Shift.
func TestDecodeModifierPrecedence(t *testing.T) {
	tests := []struct {
		name string
		mods terminal.Modifier
		want Input
	}{
		{"all three", terminal.ModCtrl | terminal.ModAlt | terminal.ModShift, Ctrl(KeyA)},
		{"ctrl shift", terminal.ModCtrl | terminal.ModShift, Ctrl(KeyA)},
		{"ctrl alt", terminal.ModCtrl | terminal.ModAlt, Ctrl(KeyA)},
		{"alt shift", terminal.ModAlt | terminal.ModShift, Alt(KeyA)},
		{"shift only", terminal.ModShift, Shift(Press(KeyA))},
		{"none", terminal.ModNone, Press(KeyA)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'A', Mods: tt.mods})
			if !got.Equal(tt.want) {
				t.Errorf("mods %b: got %s, want %s", tt.mods, got, tt.want)
			}
		})
	}
}

func TestDecodeLowercases(t *testing.T) {
	got := Decode(terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'Z', Mods: terminal.ModCtrl})
	if !got.Equal(Ctrl(KeyZ)) {
		t.Errorf("got %s, want Ctrl(Z)", got)
	}
	if got.Key != Key('z') {
		t.Errorf("Key = %q, want 'z'", rune(got.Key))
	}
}

func TestDecodeNamedKeys(t *testing.T) {
	tests := []struct {
		code terminal.Code
		want Kind
	}{
		{terminal.CodeUp, KindUp},
		{terminal.CodeDown, KindDown},
		{terminal.CodeLeft, KindLeft},
		{terminal.CodeRight, KindRight},
		{terminal.CodeEnter, KindEnter},
		{terminal.CodeBackspace, KindBackspace},
		{terminal.CodeTab, KindTab},
		{terminal.CodeEscape, KindEscape},
		{terminal.CodeEnd, KindEnd},
		{terminal.CodeCapsLock, KindCapsLock},
		{terminal.CodeInsert, KindInsert},
		{terminal.CodeHome, KindHome},
		{terminal.CodePageUp, KindPageUp},
		{terminal.CodePageDown, KindPageDown},
		{terminal.CodeDelete, KindDelete},
	}

	for _, tt := range tests {
		got := Decode(terminal.KeyEvent{Code: tt.code})
		if got.Kind != tt.want {
			t.Errorf("code %d: kind = %d, want %d", tt.code, got.Kind, tt.want)
		}
	}
}

func TestDecodeFunctionKeys(t *testing.T) {
	got := Decode(terminal.KeyEvent{Code: terminal.CodeFunction, Fn: 7})
	if !got.Equal(Function(7)) {
		t.Errorf("got %s, want F7", got)
	}
	if got.String() != "F7" {
		t.Errorf("String() = %q, want F7", got.String())
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	got := Decode(terminal.KeyEvent{Code: terminal.CodeNone})
	if !got.IsNone() {
		t.Errorf("got %s, want NoInput", got)
	}
}

func TestPollEmptyWindow(t *testing.T) {
	dec := NewDecoder(terminal.NewSimDriver())
	in, err := dec.Poll(time.Millisecond)
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !in.IsNone() {
		t.Errorf("got %s, want NoInput", in)
	}
}

func TestPollDecodesQueuedKey(t *testing.T) {
	drv := terminal.NewSimDriver()
	drv.QueueKey(terminal.KeyEvent{Code: terminal.CodeRune, Rune: 'c', Mods: terminal.ModCtrl})
	dec := NewDecoder(drv)

	in, err := dec.PollDefault()
	if err != nil {
		t.Fatalf("PollDefault: %v", err)
	}
	if !in.Equal(Ctrl(KeyC)) {
		t.Errorf("got %s, want Ctrl(C)", in)
	}

	// Queue drained, next poll reports no input
	in, err = dec.PollDefault()
	if err != nil || !in.IsNone() {
		t.Errorf("second poll = %s, %v; want NoInput, nil", in, err)
	}
}

func TestPollDriverFailure(t *testing.T) {
	cause := errors.New("read failed")
	drv := terminal.NewSimDriver()
	drv.FailWith("poll", cause)
	dec := NewDecoder(drv)

	in, err := dec.Poll(time.Millisecond)
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want %v", err, cause)
	}
	if !in.IsNone() {
		t.Errorf("got %s alongside error, want NoInput", in)
	}
}

func TestShiftEqualFollowsBoxing(t *testing.T) {
	a := Shift(Press(KeyQ))
	b := Shift(Press(KeyQ))
	if a.Inner == b.Inner {
		t.Fatal("distinct Shift values must not share the boxed inner input")
	}
	if !a.Equal(b) {
		t.Error("structurally identical Shift inputs must compare equal")
	}
	if a.Equal(Shift(Press(KeyW))) {
		t.Error("different inner keys must not compare equal")
	}
	if a.Equal(Press(KeyQ)) {
		t.Error("Shift(Q) must not equal plain Q")
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA},
		{'A', KeyA},
		{'z', KeyZ},
		{'Z', KeyZ},
		{'5', Key('5')},
		{'é', Key('é')},
	}
	for _, tt := range tests {
		if got := KeyOf(tt.r); got != tt.want {
			t.Errorf("KeyOf(%q) = %q, want %q", tt.r, rune(got), rune(tt.want))
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyQ.String(); got != "Q" {
		t.Errorf("KeyQ.String() = %q, want Q", got)
	}
	if !KeyA.IsLetter() {
		t.Error("KeyA.IsLetter() = false")
	}
	if Key('/').IsLetter() {
		t.Error("Key('/').IsLetter() = true")
	}
}
