package chars

import (
	"strings"
	"unicode/utf8"
)

// Position arithmetic on strings counts codepoints, never bytes. When the
// byte length equals the codepoint length the string is plain ASCII and byte
// indexing is safe; otherwise the string is walked rune by rune.

func Length(s string) int {
	return utf8.RuneCountInString(s)
}

func ascii(s string) bool {
	return len(s) == utf8.RuneCountInString(s)
}

// Slice returns the codepoints of s from position start to position end, both
// 1-based, start included and end excluded. Out of range bounds are clamped.
func Slice(s string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end <= start {
		return ""
	}
	if ascii(s) {
		if start > len(s) {
			return ""
		}
		if end > len(s)+1 {
			end = len(s) + 1
		}
		return s[start-1 : end-1]
	}
	var (
		str strings.Builder
		pos int
	)
	for _, c := range s {
		pos++
		if pos >= end {
			break
		}
		if pos >= start {
			str.WriteRune(c)
		}
	}
	return str.String()
}

// Translate maps every codepoint of s found in from to the codepoint at the
// same position in to. Codepoints of from beyond the length of to are
// deleted; codepoints absent from from pass through unchanged.
func Translate(s, from, to string) string {
	if from == "" {
		return s
	}
	var (
		src = []rune(from)
		dst = []rune(to)
		str strings.Builder
	)
	str.Grow(len(s))
	for _, c := range s {
		ix := index(src, c)
		if ix < 0 {
			str.WriteRune(c)
			continue
		}
		if ix < len(dst) {
			str.WriteRune(dst[ix])
		}
	}
	return str.String()
}

func index(list []rune, c rune) int {
	for i := range list {
		if list[i] == c {
			return i
		}
	}
	return -1
}
