package compiler

import "fmt"

// Warning reports malformed input that a preprocessing stage absorbed
// without failing.
type Warning int

const (
	// WarnDanglingBackslash: the input ended in a backslash with nothing to splice.
	WarnDanglingBackslash Warning = iota + 1
	// WarnUnterminatedComment: the input ended inside a block comment.
	WarnUnterminatedComment
	// WarnUnterminatedLiteral: the input ended inside a string or character
	// literal. Only reported when literals are tracked.
	WarnUnterminatedLiteral
)

var warningText = [...]string{
	WarnDanglingBackslash:   "backslash at end of input discarded",
	WarnUnterminatedComment: "unterminated block comment discarded",
	WarnUnterminatedLiteral: "unterminated literal at end of input",
}

func (w Warning) String() string {
	if int(w) > 0 && int(w) < len(warningText) {
		return warningText[w]
	}
	return fmt.Sprintf("Warning(%d)", int(w))
}
