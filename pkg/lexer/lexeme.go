package lexer

import (
	"fmt"
	"strings"
)

// Kind represents the category of a lexeme identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindWhitespace
	KindLineComment
	KindBlockComment
	KindIdentifier
	KindKeyword
	KindLifetime
	KindLiteral
	KindOperator
	KindPunct
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindWhitespace:
		return "Whitespace"
	case KindLineComment:
		return "LineComment"
	case KindBlockComment:
		return "BlockComment"
	case KindIdentifier:
		return "Identifier"
	case KindKeyword:
		return "Keyword"
	case KindLifetime:
		return "Lifetime"
	case KindLiteral:
		return "Literal"
	case KindOperator:
		return "Operator"
	case KindPunct:
		return "Punct"
	case KindUnknown:
		return "Unknown"
	}
	return "Invalid"
}

// LitKind narrows a KindLiteral lexeme down to its literal sub-grammar.
type LitKind uint8

const (
	LitNone LitKind = iota
	LitInteger
	LitFloat
	LitChar
	LitByteChar
	LitString
	LitByteString
	LitRawString
	LitRawByteString
)

func (l LitKind) String() string {
	switch l {
	case LitInteger:
		return "Integer"
	case LitFloat:
		return "Float"
	case LitChar:
		return "Char"
	case LitByteChar:
		return "ByteChar"
	case LitString:
		return "String"
	case LitByteString:
		return "ByteString"
	case LitRawString:
		return "RawString"
	case LitRawByteString:
		return "RawByteString"
	}
	return "None"
}

// Pos is a location in the source: a zero-based byte offset plus the
// one-based line and column it falls on.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// Span covers the half-open byte range [Start.Offset, End.Offset).
type Span struct {
	Start Pos
	End   Pos
}

// Lexeme is one classified unit of source text. Text is the exact source
// slice the lexeme covers; concatenating the Text of every lexeme a scan
// produces reproduces the input byte-for-byte.
type Lexeme struct {
	Kind Kind
	Text string
	Span Span

	// Lit is set on KindLiteral lexemes, Sym on KindOperator and KindPunct.
	Lit LitKind
	Sym Symbol

	// Doc marks doc comments, Raw marks r#-prefixed identifiers, Primitive
	// marks identifiers naming a built-in type like i32 or str.
	Doc       bool
	Raw       bool
	Primitive bool

	// Terminated is false when a string, char or block comment reaches the
	// end of input without its closing delimiter.
	Terminated bool

	// Hashes is the delimiter hash count of a raw string, eg 2 for r##"..."##.
	Hashes int
}

// String renders one aligned table row: kind, start offset, snippet.
// Newlines in the snippet are shown as <NL>, and the end-of-input lexeme
// as <EOI>, so every lexeme fits on one line.
func (l Lexeme) String() string {
	label := l.Kind.String()
	if l.Kind == KindLiteral {
		label = l.Lit.String()
	}
	snippet := strings.ReplaceAll(l.Text, "\n", "<NL>")
	if l.Kind == KindEOF {
		snippet = "<EOI>"
	}
	return fmt.Sprintf("%-16s %4d  %s", label, l.Span.Start.Offset, snippet)
}

// Render formats a whole scan as an aligned table, one lexeme per row.
func Render(lexemes []Lexeme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lexemes, incl <EOI>: %d\n", len(lexemes))
	for _, lx := range lexemes {
		b.WriteString(lx.String())
		b.WriteByte('\n')
	}
	return b.String()
}
