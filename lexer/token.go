package lexer

import "fmt"

// Kind identifies the type of a Token.
type Kind int

const (
	// OpeningTag is the text between "<" and ">", e.g. <div>.
	OpeningTag Kind = iota
	// ClosingTag is the text between "</" and ">", e.g. </div>.
	ClosingTag
	// LeftBrace is a literal "{".
	LeftBrace
	// RightBrace is a literal "}".
	RightBrace
	// Literal is a maximal run of letters found outside tags.
	Literal
)

func (k Kind) String() string {
	switch k {
	case OpeningTag:
		return "OpeningTag"
	case ClosingTag:
		return "ClosingTag"
	case LeftBrace:
		return "LeftBrace"
	case RightBrace:
		return "RightBrace"
	case Literal:
		return "Literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical unit. Text holds the tag name
// or literal run and is empty for braces.
type Token struct {
	Kind Kind
	Text string
}

func (tk Token) String() string {
	if tk.Text == "" {
		return tk.Kind.String()
	}

	return fmt.Sprintf("%s(%q)", tk.Kind, tk.Text)
}
