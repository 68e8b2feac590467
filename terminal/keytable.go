package terminal

// tildeKeys maps the numeric parameter of CSI <n> ~ sequences to key codes
var tildeKeys = map[int]Code{
	1: CodeHome,
	2: CodeInsert,
	3: CodeDelete,
	4: CodeEnd,
	5: CodePageUp,
	6: CodePageDown,
	7: CodeHome, // rxvt
	8: CodeEnd,  // rxvt
}

// tildeFn maps the numeric parameter of CSI <n> ~ sequences to F-key numbers
// (xterm numbering; 16 and 22 are skipped by the protocol)
var tildeFn = map[int]uint8{
	11: 1, 12: 2, 13: 3, 14: 4,
	15: 5, 17: 6, 18: 7, 19: 8,
	20: 9, 21: 10, 23: 11, 24: 12,
}

// letterKeys maps CSI/SS3 final letters to key codes
var letterKeys = map[byte]Code{
	'A': CodeUp,
	'B': CodeDown,
	'C': CodeRight,
	'D': CodeLeft,
	'H': CodeHome,
	'F': CodeEnd,
}

// ss3Fn maps SS3 finals P..S to F1..F4
var ss3Fn = map[byte]uint8{
	'P': 1, 'Q': 2, 'R': 3, 'S': 4,
}

// modFromParam converts the xterm modifier parameter (2=Shift, 3=Alt,
// 5=Ctrl, combinations additive) to a Modifier bitmask. The encoding is
// param-1 with Shift=1, Alt=2, Ctrl=4, which matches our bit layout.
func modFromParam(m int) Modifier {
	if m < 2 || m > 8 {
		return ModNone
	}
	return Modifier(m - 1)
}
