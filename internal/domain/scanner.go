// Package domain contains the comment-aware scanner and the per-file
// normalization workflow built on top of it.
package domain

import "strings"

// scanState tracks which lexical region the scanner is currently inside.
// States are mutually exclusive; the grammar has no nesting.
type scanState int

const (
	stateCode scanState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
)

// ScanResult carries the rewritten text together with the number of
// characters that were substituted inside comments.
type ScanResult struct {
	Text     string
	Replaced int
}

// Scan walks text once, left to right, and rewrites non-ASCII characters
// found inside line or block comments using Replace. String and character
// literal content is emitted byte-for-byte, with backslash escapes absorbing
// the following character so an escaped delimiter never ends the literal.
// The comment delimiters themselves (`//`, `/*`, `*/`) are always emitted
// verbatim. An unterminated comment or literal at end of input is accepted
// silently; the scanner never rejects input.
func Scan(text string) ScanResult {
	var out strings.Builder
	out.Grow(len(text))

	runes := []rune(text)
	state := stateCode
	escape := false
	replaced := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch state {
		case stateCode:
			switch {
			case r == '/' && i+1 < len(runes) && runes[i+1] == '/':
				out.WriteString("//")
				i++
				state = stateLineComment
			case r == '/' && i+1 < len(runes) && runes[i+1] == '*':
				out.WriteString("/*")
				i++
				state = stateBlockComment
			case r == '"':
				out.WriteRune(r)
				state = stateString
				escape = false
			case r == '\'':
				out.WriteRune(r)
				state = stateChar
				escape = false
			default:
				out.WriteRune(r)
			}

		case stateLineComment:
			// The newline is never mapped so line structure survives.
			if r == '\n' {
				out.WriteRune(r)
				state = stateCode

				continue
			}

			replaced += emitMapped(&out, r)

		case stateBlockComment:
			// The terminator must survive intact, even though `*` and `/`
			// would pass through the mapper unchanged anyway.
			if r == '*' && i+1 < len(runes) && runes[i+1] == '/' {
				out.WriteString("*/")
				i++
				state = stateCode

				continue
			}

			replaced += emitMapped(&out, r)

		case stateString:
			out.WriteRune(r)

			switch {
			case escape:
				escape = false
			case r == '\\':
				escape = true
			case r == '"':
				state = stateCode
			}

		case stateChar:
			out.WriteRune(r)

			switch {
			case escape:
				escape = false
			case r == '\\':
				escape = true
			case r == '\'':
				state = stateCode
			}
		}
	}

	return ScanResult{Text: out.String(), Replaced: replaced}
}

// emitMapped writes the mapped form of r and reports whether a substitution
// happened.
func emitMapped(out *strings.Builder, r rune) int {
	out.WriteString(Replace(r))

	if r > 0x7F {
		return 1
	}

	return 0
}
