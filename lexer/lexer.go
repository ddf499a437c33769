package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans input left to right in a single pass and
// returns the tokens found. It keeps no state between
// calls, so the same input always yields the same tokens.
func Tokenize(input string) []Token {
	var tokens []Token

	pos := 0

	for pos < len(input) {
		switch input[pos] {
		case '{':
			tokens = append(tokens, Token{Kind: LeftBrace})
			pos++
		case '}':
			tokens = append(tokens, Token{Kind: RightBrace})
			pos++
		case '<':
			pos++

			kind := OpeningTag
			if pos < len(input) && input[pos] == '/' {
				kind = ClosingTag
				pos++
			}

			var name string

			name, pos = scanTagName(input, pos)
			tokens = append(tokens, Token{Kind: kind, Text: name})
		default:
			ru, size := utf8.DecodeRuneInString(input[pos:])
			if !isAlpha(ru) {
				pos += size
				continue
			}

			var text string

			text, pos = scanLetters(input, pos)
			tokens = append(tokens, Token{Kind: Literal, Text: text})
		}
	}

	return tokens
}

// isAlpha reports whether ru is alphabetic: a letter, a
// letter number such as U+216B, or a combining mark with
// the Other_Alphabetic property (Indic vowel signs).
func isAlpha(ru rune) bool {
	return unicode.In(ru, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

// scanTagName returns the text from pos up to the next
// ">" and the position just past it. An unterminated tag
// takes the rest of the input.
func scanTagName(input string, pos int) (string, int) {
	end := strings.IndexByte(input[pos:], '>')
	if end < 0 {
		return input[pos:], len(input)
	}

	return input[pos : pos+end], pos + end + 1
}

// scanLetters returns the run of alphabetic characters starting at pos
// and the position of the first non-letter, which is left
// for the caller.
func scanLetters(input string, pos int) (string, int) {
	start := pos

	for pos < len(input) {
		ru, size := utf8.DecodeRuneInString(input[pos:])
		if !isAlpha(ru) {
			break
		}

		pos += size
	}

	return input[start:pos], pos
}
