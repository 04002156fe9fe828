package inspect

import (
	"strings"
	"unicode"
)

// nextName splits off the first top-level entry of a comma-separated name
// list and returns it with whitespace outside quotes removed, along with
// the remaining list. Commas nested in (), [] or {} or inside quotes do not
// split, so "m[a, b], x" yields "m[a,b]" then "x".
func nextName(list string) (name, rest string) {
	i := topLevelComma(list)
	if i < 0 {
		return stripSpace(list), ""
	}
	return stripSpace(list[:i]), list[i+1:]
}

// countNames returns the number of top-level entries in list. A blank list
// has none.
func countNames(list string) int {
	return len(SplitNames(list))
}

func topLevelComma(s string) int {
	depth := 0
	var quote rune
	escaped := false
	for i, r := range s {
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\' && quote != '`':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'', '`':
			quote = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var quote rune
	escaped := false
	for _, r := range s {
		if quote != 0 {
			b.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\' && quote != '`':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}
		switch {
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case unicode.IsSpace(r):
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitNames splits a name list into its top-level entries the way the
// renderer consumes it.
func SplitNames(list string) []string {
	var out []string
	for rest := list; strings.TrimSpace(rest) != ""; {
		var name string
		name, rest = nextName(rest)
		out = append(out, name)
	}
	return out
}
