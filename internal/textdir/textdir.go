// Package textdir detects the dominant script direction of a string so the
// presentation layer can right-align RTL text. Shaping and reordering are
// left to the terminal's bidi handling.
package textdir

import "regexp"

// Direction is the rendering direction of a piece of text.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// rtlPattern matches Arabic (including supplements and presentation forms)
// and Hebrew code points.
var rtlPattern = regexp.MustCompile(`[\x{0590}-\x{05FF}\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}]`)

// Detect returns RTL when the text contains any right-to-left script
// character, LTR otherwise.
func Detect(text string) Direction {
	if rtlPattern.MatchString(text) {
		return RTL
	}
	return LTR
}

// IsRTL is shorthand for Detect(text) == RTL.
func IsRTL(text string) bool {
	return Detect(text) == RTL
}
