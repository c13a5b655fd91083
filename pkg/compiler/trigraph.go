package compiler

import "strings"

// trigraphs maps the third character of a "??x" sequence to its replacement.
var trigraphs = map[byte]byte{
	'(':  '[',
	')':  ']',
	'<':  '{',
	'>':  '}',
	'=':  '#',
	'/':  '\\',
	'\'': '^',
	'!':  '|',
	'-':  '~',
}

// ResolveTrigraphs replaces each of the nine "??x" trigraphs with the single
// character it stands for.
//
// The scan is a single left-to-right pass. Replaced output is never rescanned,
// so "??/" yields a plain backslash and "???=" yields "?#".
func ResolveTrigraphs(src string) string {
	if !strings.Contains(src, "??") {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src))

	n := len(src)
	i := 0
	for i < n {
		if i+2 < n && src[i] == '?' && src[i+1] == '?' {
			if repl, ok := trigraphs[src[i+2]]; ok {
				sb.WriteByte(repl)
				i += 3
				continue
			}
		}
		sb.WriteByte(src[i])
		i++
	}
	return sb.String()
}
