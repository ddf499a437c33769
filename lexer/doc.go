// Package lexer turns raw template text into a flat sequence of tokens.
// Tokenize recognises opening and closing tags, the "{" and "}" braces
// around placeholders, and runs of letters. Everything else is skipped.
// Malformed input is never rejected: the scan stops at end of input and
// returns the tokens produced so far.
package lexer
