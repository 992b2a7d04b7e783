package cssmodule

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// rewriteSelectors copies src, passing every class name used in a selector
// through rename. Declarations, comments, strings and at-rule preludes are
// copied untouched. Rules nested in declaration blocks are scoped like top
// level ones.
func rewriteSelectors(src string, rename func(string) string) string {
	var out, prelude strings.Builder
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				prelude.WriteString(src[i:])
				i = len(src)
				continue
			}
			prelude.WriteString(src[i : i+2+end+2])
			i += 2 + end + 1
		case c == '"' || c == '\'':
			end := stringEnd(src, i)
			prelude.WriteString(src[i:end])
			i = end - 1
		case c == '\\' && i+1 < len(src):
			end := escapeEnd(src, i)
			prelude.WriteString(src[i:end])
			i = end - 1
		case c == '{':
			// whatever precedes a block is a selector or an at-rule
			selector := prelude.String()
			prelude.Reset()
			if isAtRule(selector) {
				out.WriteString(selector)
			} else {
				out.WriteString(renameClasses(selector, rename))
			}
			out.WriteByte('{')
		case c == ';' || c == '}':
			// whatever precedes these is a declaration or a statement
			out.WriteString(prelude.String())
			prelude.Reset()
			out.WriteByte(c)
		default:
			prelude.WriteByte(c)
		}
	}
	out.WriteString(prelude.String())
	return out.String()
}

// isAtRule reports whether prelude starts an at-rule.
func isAtRule(prelude string) bool {
	trimmed := strings.TrimSpace(prelude)
	for strings.HasPrefix(trimmed, "/*") {
		end := strings.Index(trimmed, "*/")
		if end < 0 {
			return false
		}
		trimmed = strings.TrimSpace(trimmed[end+2:])
	}
	return strings.HasPrefix(trimmed, "@")
}

// renameClasses renames the class selectors in a selector list. Selectors
// wrapped in :global() are unwrapped and left as they are.
func renameClasses(selector string, rename func(string) string) string {
	var out strings.Builder
	for i := 0; i < len(selector); i++ {
		c := selector[i]
		switch {
		case c == '/' && i+1 < len(selector) && selector[i+1] == '*':
			end := strings.Index(selector[i+2:], "*/")
			if end < 0 {
				out.WriteString(selector[i:])
				return out.String()
			}
			out.WriteString(selector[i : i+2+end+2])
			i += 2 + end + 1
		case c == '"' || c == '\'':
			end := stringEnd(selector, i)
			out.WriteString(selector[i:end])
			i = end - 1
		case c == ':' && strings.HasPrefix(selector[i:], ":global("):
			inner, end := parenContents(selector, i+len(":global"))
			out.WriteString(inner)
			i = end - 1
		case c == ':' && strings.HasPrefix(selector[i:], ":local("):
			inner, end := parenContents(selector, i+len(":local"))
			out.WriteString(renameClasses(inner, rename))
			i = end - 1
		case c == '\\' && i+1 < len(selector):
			end := escapeEnd(selector, i)
			out.WriteString(selector[i:end])
			i = end - 1
		case c == '.' && identStart(selector, i+1):
			end := identEnd(selector, i+1)
			out.WriteByte('.')
			out.WriteString(escapeIdent(rename(unescapeIdent(selector[i+1 : end]))))
			i = end - 1
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// parenContents returns what's inside the parentheses opening at open,
// and the position just past the closing one.
func parenContents(s string, open int) (string, int) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i = escapeEnd(s, i) - 1
		case '"', '\'':
			i = stringEnd(s, i) - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1
			}
		}
	}
	return s[open+1:], len(s)
}

// stringEnd returns the position just past the string literal starting
// at start.
func stringEnd(src string, start int) int {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(src)
}

// escapeEnd returns the position just past the escape sequence starting
// with the backslash at start.
func escapeEnd(s string, start int) int {
	i := start + 1
	if i >= len(s) {
		return i
	}
	if !isHex(s[i]) {
		_, size := utf8.DecodeRuneInString(s[i:])
		return i + size
	}
	for n := 0; n < 6 && i < len(s) && isHex(s[i]); n++ {
		i++
	}
	if i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func identStart(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	c := s[i]
	if c == '\\' {
		return i+1 < len(s) && s[i+1] != '\n'
	}
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func identEnd(s string, start int) int {
	i := start
	for i < len(s) {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			i = escapeEnd(s, i)
		case identChar(c):
			i++
		default:
			return i
		}
	}
	return i
}

func identChar(c byte) bool {
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c >= 0x80
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// unescapeIdent resolves the escape sequences in a CSS identifier.
func unescapeIdent(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var out strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out.WriteByte(raw[i])
			continue
		}
		end := escapeEnd(raw, i)
		seq := raw[i+1 : end]
		if isHex(seq[0]) {
			code, _ := strconv.ParseUint(strings.TrimRight(seq, " \t\n\r\f"), 16, 32)
			r := rune(code)
			if r == 0 || !utf8.ValidRune(r) {
				r = utf8.RuneError
			}
			out.WriteRune(r)
		} else {
			out.WriteString(seq)
		}
		i = end - 1
	}
	return out.String()
}

// escapeIdent escapes name for use as a CSS identifier.
func escapeIdent(name string) string {
	var out strings.Builder
	for i, r := range name {
		switch {
		case r >= '0' && r <= '9' && i == 0:
			out.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		case r >= 0x80 || r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			out.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			out.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		default:
			out.WriteByte('\\')
			out.WriteRune(r)
		}
	}
	return out.String()
}
