package ingest

import (
	"strconv"
	"strings"
)

// rtf destination groups whose text is formatting metadata, not document
// content.
var rtfSkipGroups = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"themedata":  true,
	"header":     true,
	"footer":     true,
}

// StripRTF converts RTF source to plain text, best-effort. It understands
// groups, control words, hex and unicode escapes, and drops the standard
// non-content destinations. Anything it cannot interpret it skips rather
// than failing: catalog documents come from word processors with wildly
// varying RTF output.
func StripRTF(src string) string {
	var out strings.Builder
	var skipDepth int
	depth := 0

	i := 0
	for i < len(src) {
		ch := src[i]
		switch ch {
		case '{':
			depth++
			i++
			// Destination groups: {\fonttbl ...} or {\*\generator ...}
			if skipDepth == 0 {
				name, _ := peekControlWord(src, i)
				if name == "*" {
					skipDepth = depth
				} else if rtfSkipGroups[name] {
					skipDepth = depth
				}
			}
		case '}':
			if skipDepth == depth {
				skipDepth = 0
			}
			depth--
			i++
		case '\\':
			name, next := readControlWord(src, i+1)
			if skipDepth != 0 {
				i = next
				continue
			}
			switch {
			case name == "par" || name == "line" || name == "sect" || name == "page":
				out.WriteByte('\n')
			case name == "tab":
				out.WriteByte('\t')
			case name == "emdash":
				out.WriteString("—")
			case name == "endash":
				out.WriteString("–")
			case strings.HasPrefix(name, "'") && len(name) == 3:
				if b, err := strconv.ParseUint(name[1:], 16, 8); err == nil && b >= 0x20 && b < 0x7f {
					out.WriteByte(byte(b))
				}
			case strings.HasPrefix(name, "u") && len(name) > 1:
				if cp, err := strconv.Atoi(name[1:]); err == nil && cp > 0 {
					out.WriteRune(rune(cp))
					// The replacement character following \uN is consumed.
					if next < len(src) && src[next] != '\\' && src[next] != '{' && src[next] != '}' {
						next++
					}
				}
			case name == "\\" || name == "{" || name == "}":
				out.WriteString(name)
			}
			i = next
		case '\r', '\n':
			i++
		default:
			if skipDepth == 0 {
				out.WriteByte(ch)
			}
			i++
		}
	}

	return out.String()
}

// readControlWord reads the control word (or control symbol) starting at i,
// returning the word including any numeric parameter and the index of the
// next character to process. A single trailing space delimiter is consumed.
func readControlWord(src string, i int) (string, int) {
	if i >= len(src) {
		return "", i
	}
	c := src[i]
	// Control symbols: a single non-alphabetic character.
	if !isAlpha(c) {
		if c == '\'' && i+2 < len(src) {
			return src[i : i+3], i + 3
		}
		return string(c), i + 1
	}
	start := i
	for i < len(src) && isAlpha(src[i]) {
		i++
	}
	word := src[start:i]
	// Optional signed numeric parameter.
	numStart := i
	if i < len(src) && src[i] == '-' {
		i++
	}
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	word += src[numStart:i]
	if i < len(src) && src[i] == ' ' {
		i++
	}
	return word, i
}

// peekControlWord looks at the control word right after a group open,
// without the numeric parameter, e.g. "fonttbl" in "{\fonttbl".
func peekControlWord(src string, i int) (string, int) {
	if i >= len(src) || src[i] != '\\' {
		return "", i
	}
	i++
	if i < len(src) && src[i] == '*' {
		return "*", i + 1
	}
	start := i
	for i < len(src) && isAlpha(src[i]) {
		i++
	}
	return src[start:i], i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
