package compiler

import "strings"

// CommentOptions adjusts how StripCommentsWith treats comments. The zero value
// matches StripComments.
type CommentOptions struct {
	// KeepLineBreaks re-emits the newline that ends a line comment and every
	// newline inside a block comment, so line structure survives stripping.
	KeepLineBreaks bool
	// TrackLiterals leaves "//" and "/*" inside string and character literals alone.
	TrackLiterals bool
	// CommentAsSpace replaces each comment with a single space so the text on
	// either side cannot merge into one token.
	CommentAsSpace bool
}

type scanState int

const (
	stateNormal scanState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
)

// StripComments removes "//" line comments and "/* */" block comments,
// replacing them with nothing.
//
// The newline that ends a line comment is consumed with it. Quotes are not
// special: a "//" inside a string literal starts a comment. A comment still
// open at the end of input is dropped.
func StripComments(src string) string {
	out, _ := StripCommentsWith(src, CommentOptions{})
	return out
}

// StripCommentsWith is StripComments under opts. It reports input that ends
// inside a block comment or, when literals are tracked, inside a literal.
func StripCommentsWith(src string, opts CommentOptions) (string, []Warning) {
	var sb strings.Builder
	sb.Grow(len(src))

	state := stateNormal
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch state {
		case stateNormal:
			if c == '/' && i+1 < n {
				switch src[i+1] {
				case '/':
					state = stateLineComment
				case '*':
					state = stateBlockComment
				}
				if state != stateNormal {
					if opts.CommentAsSpace {
						sb.WriteByte(' ')
					}
					i += 2
					continue
				}
			}
			if opts.TrackLiterals {
				switch c {
				case '"':
					state = stateString
				case '\'':
					state = stateChar
				}
			}
			sb.WriteByte(c)
			i++

		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				if opts.KeepLineBreaks {
					sb.WriteByte('\n')
				}
			}
			i++

		case stateBlockComment:
			if c == '*' && i+1 < n && src[i+1] == '/' {
				state = stateNormal
				i += 2
				continue
			}
			if c == '\n' && opts.KeepLineBreaks {
				sb.WriteByte('\n')
			}
			i++

		case stateString, stateChar:
			sb.WriteByte(c)
			i++
			switch {
			case c == '\\' && i < n:
				sb.WriteByte(src[i])
				i++
			case c == '\n',
				c == '"' && state == stateString,
				c == '\'' && state == stateChar:
				state = stateNormal
			}
		}
	}

	var warnings []Warning
	switch state {
	case stateBlockComment:
		warnings = append(warnings, WarnUnterminatedComment)
	case stateString, stateChar:
		warnings = append(warnings, WarnUnterminatedLiteral)
	}
	return sb.String(), warnings
}
