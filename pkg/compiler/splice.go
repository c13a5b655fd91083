package compiler

import "strings"

// SpliceLines deletes every backslash immediately followed by a newline,
// joining physical lines into logical lines. A backslash followed by anything
// else is kept along with that character. A backslash that ends the input is
// dropped.
func SpliceLines(src string) string {
	out, _ := SpliceLinesDiag(src)
	return out
}

// SpliceLinesDiag is SpliceLines that also reports a dropped trailing backslash.
func SpliceLinesDiag(src string) (string, []Warning) {
	if strings.IndexByte(src, '\\') < 0 {
		return src, nil
	}

	var sb strings.Builder
	sb.Grow(len(src))

	var warnings []Warning
	n := len(src)
	for i := 0; i < n; i++ {
		c := src[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= n {
			warnings = append(warnings, WarnDanglingBackslash)
			break
		}
		if src[i+1] != '\n' {
			sb.WriteByte(c)
			sb.WriteByte(src[i+1])
		}
		i++
	}
	return sb.String(), warnings
}
