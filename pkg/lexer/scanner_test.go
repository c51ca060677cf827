package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/rustlex/pkg/lexer"
)

// mustLex scans src and verifies the structural invariants every scan must
// hold: the sequence ends with EOF, spans are contiguous and non-overlapping,
// and concatenating the lexeme texts reproduces src byte-for-byte.
func mustLex(t *testing.T, src string) []lexer.Lexeme {
	t.Helper()
	lexemes, err := lexer.Lexemize(src, lexer.Edition2018)
	require.NoError(t, err)
	require.NotEmpty(t, lexemes)
	require.Equal(t, lexer.KindEOF, lexemes[len(lexemes)-1].Kind)

	var b strings.Builder
	offset := 0
	for i, lx := range lexemes {
		require.Equal(t, offset, lx.Span.Start.Offset, "lexeme %d start", i)
		require.Equal(t, lx.Span.Start.Offset+len(lx.Text), lx.Span.End.Offset, "lexeme %d end", i)
		offset = lx.Span.End.Offset
		b.WriteString(lx.Text)
	}
	require.Equal(t, src, b.String(), "concatenated texts must round-trip the input")
	return lexemes
}

func kinds(lexemes []lexer.Lexeme) []lexer.Kind {
	out := make([]lexer.Kind, len(lexemes))
	for i, lx := range lexemes {
		out[i] = lx.Kind
	}
	return out
}

func TestLexemizeBasics(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, `fn main() { println!("hi"); }`)
	require.Equal(t, []lexer.Kind{
		lexer.KindKeyword,    // fn
		lexer.KindWhitespace,
		lexer.KindIdentifier, // main
		lexer.KindPunct,      // (
		lexer.KindPunct,      // )
		lexer.KindWhitespace,
		lexer.KindPunct, // {
		lexer.KindWhitespace,
		lexer.KindIdentifier, // println
		lexer.KindOperator,   // !
		lexer.KindPunct,      // (
		lexer.KindLiteral,    // "hi"
		lexer.KindPunct,      // )
		lexer.KindPunct,      // ;
		lexer.KindWhitespace,
		lexer.KindPunct, // }
		lexer.KindEOF,
	}, kinds(lexemes))

	assert.Equal(t, "fn", lexemes[0].Text)
	assert.Equal(t, `"hi"`, lexemes[11].Text)
	assert.Equal(t, lexer.LitString, lexemes[11].Lit)
	assert.True(t, lexemes[11].Terminated)
}

func TestLexemizeEmptyInput(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "")
	require.Len(t, lexemes, 1)
	assert.Equal(t, lexer.KindEOF, lexemes[0].Kind)
	assert.Equal(t, lexer.Pos{Offset: 0, Line: 1, Col: 1}, lexemes[0].Span.Start)
}

func TestKeywordVersusIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind lexer.Kind
	}{
		{"match", lexer.KindKeyword},
		{"match2", lexer.KindIdentifier},
		{"fn", lexer.KindKeyword},
		{"Self", lexer.KindKeyword},
		{"self", lexer.KindKeyword},
		{"typeof", lexer.KindKeyword},
		{"fnord", lexer.KindIdentifier},
		{"_x", lexer.KindIdentifier},
		{"__12", lexer.KindIdentifier},
	}
	for _, tt := range tests {
		lexemes := mustLex(t, tt.src)
		assert.Equal(t, tt.kind, lexemes[0].Kind, "src %q", tt.src)
		assert.Equal(t, tt.src, lexemes[0].Text)
	}
}

func TestPrimitiveIdentifiers(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "u32 str bool foo")
	assert.True(t, lexemes[0].Primitive)
	assert.True(t, lexemes[2].Primitive)
	assert.True(t, lexemes[4].Primitive)
	assert.False(t, lexemes[6].Primitive)
	for _, i := range []int{0, 2, 4, 6} {
		assert.Equal(t, lexer.KindIdentifier, lexemes[i].Kind)
	}
}

func TestRawIdentifier(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "r#match")
	require.Equal(t, lexer.KindIdentifier, lexemes[0].Kind)
	assert.Equal(t, "r#match", lexemes[0].Text)
	assert.True(t, lexemes[0].Raw)

	// A lone "r" is just an identifier, and "r#" with no identifier after
	// it leaves the "#" for the punctuation matcher.
	lexemes = mustLex(t, "r#1")
	require.Equal(t, []lexer.Kind{
		lexer.KindIdentifier, lexer.KindPunct, lexer.KindLiteral, lexer.KindEOF,
	}, kinds(lexemes))
}

func TestUnderscoreIsPunctuation(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "_ _x")
	assert.Equal(t, lexer.KindPunct, lexemes[0].Kind)
	assert.Equal(t, lexer.SymUnderscore, lexemes[0].Sym)
	assert.Equal(t, lexer.KindIdentifier, lexemes[2].Kind)
}

func TestUnicodeIdentifier(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "héllo 名前")
	assert.Equal(t, lexer.KindIdentifier, lexemes[0].Kind)
	assert.Equal(t, "héllo", lexemes[0].Text)
	assert.Equal(t, lexer.KindIdentifier, lexemes[2].Kind)
	assert.Equal(t, "名前", lexemes[2].Text)
}

func TestLongestMatchOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		sym  lexer.Symbol
		kind lexer.Kind
	}{
		{"..=", lexer.SymDotDotEq, lexer.KindOperator},
		{"...", lexer.SymDotDotDot, lexer.KindOperator},
		{"..", lexer.SymDotDot, lexer.KindOperator},
		{"<<=", lexer.SymShlEq, lexer.KindOperator},
		{">>=", lexer.SymShrEq, lexer.KindOperator},
		{"==", lexer.SymEqEq, lexer.KindOperator},
		{"->", lexer.SymRArrow, lexer.KindPunct},
		{"=>", lexer.SymFatArrow, lexer.KindPunct},
		{"::", lexer.SymPathSep, lexer.KindPunct},
		{";", lexer.SymSemi, lexer.KindPunct},
	}
	for _, tt := range tests {
		lexemes := mustLex(t, tt.src)
		require.Len(t, lexemes, 2, "src %q must be exactly one lexeme", tt.src)
		assert.Equal(t, tt.kind, lexemes[0].Kind, "src %q", tt.src)
		assert.Equal(t, tt.sym, lexemes[0].Sym, "src %q", tt.src)
	}

	// "...." is the longest three-character match followed by a lone dot,
	// and "*=>>=" splits deterministically into *= then >>=.
	lexemes := mustLex(t, "....")
	require.Len(t, lexemes, 3)
	assert.Equal(t, lexer.SymDotDotDot, lexemes[0].Sym)
	assert.Equal(t, lexer.SymDot, lexemes[1].Sym)

	lexemes = mustLex(t, "*=>>=")
	require.Len(t, lexemes, 3)
	assert.Equal(t, lexer.SymStarEq, lexemes[0].Sym)
	assert.Equal(t, lexer.SymShrEq, lexemes[1].Sym)
}

func TestUnknownConsumesOneCharacter(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "~¶ €")
	require.Equal(t, []lexer.Kind{
		lexer.KindUnknown, lexer.KindUnknown, lexer.KindWhitespace,
		lexer.KindUnknown, lexer.KindEOF,
	}, kinds(lexemes))
	assert.Equal(t, "~", lexemes[0].Text)
	assert.Equal(t, "¶", lexemes[1].Text)
	assert.Equal(t, "€", lexemes[3].Text)
}

func TestInvalidUTF8DoesNotPanic(t *testing.T) {
	t.Parallel()

	// A stray continuation byte lexes as a one-byte Unknown lexeme and the
	// rest of the input is still scanned.
	lexemes := mustLex(t, "a\x80b")
	require.Equal(t, []lexer.Kind{
		lexer.KindIdentifier, lexer.KindUnknown, lexer.KindIdentifier, lexer.KindEOF,
	}, kinds(lexemes))
}

func TestShebang(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "#!/usr/bin/env rustx\nfn")
	require.Equal(t, lexer.KindLineComment, lexemes[0].Kind)
	assert.Equal(t, "#!/usr/bin/env rustx", lexemes[0].Text)
	assert.False(t, lexemes[0].Doc)
	assert.Equal(t, lexer.KindWhitespace, lexemes[1].Kind)
	assert.Equal(t, lexer.KindKeyword, lexemes[2].Kind)

	// "#![" is an inner attribute, never a shebang.
	lexemes = mustLex(t, "#![feature]")
	assert.Equal(t, lexer.KindPunct, lexemes[0].Kind)
	assert.Equal(t, lexer.SymPound, lexemes[0].Sym)

	// "#!" past the first byte is ordinary punctuation too.
	lexemes = mustLex(t, " #!x")
	assert.Equal(t, lexer.KindPunct, lexemes[1].Kind)
}

func TestWhitespaceMerging(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, " \t\r\n\v\f x")
	require.Equal(t, []lexer.Kind{
		lexer.KindWhitespace, lexer.KindIdentifier, lexer.KindEOF,
	}, kinds(lexemes))
	assert.Equal(t, " \t\r\n\v\f ", lexemes[0].Text)
}

func TestPositions(t *testing.T) {
	t.Parallel()

	lexemes := mustLex(t, "a\nbb")
	require.Len(t, lexemes, 4)
	assert.Equal(t, lexer.Pos{Offset: 0, Line: 1, Col: 1}, lexemes[0].Span.Start)
	assert.Equal(t, lexer.Pos{Offset: 1, Line: 1, Col: 2}, lexemes[0].Span.End)
	assert.Equal(t, lexer.Pos{Offset: 2, Line: 2, Col: 1}, lexemes[1].Span.End)
	assert.Equal(t, lexer.Pos{Offset: 4, Line: 2, Col: 3}, lexemes[2].Span.End)

	// A \r\n pair is one terminator: only one line advance.
	lexemes = mustLex(t, "a\r\nb")
	assert.Equal(t, lexer.Pos{Offset: 3, Line: 2, Col: 1}, lexemes[1].Span.End)

	// Multi-byte characters advance the offset by their encoded width but
	// the column by one.
	lexemes = mustLex(t, "é=")
	assert.Equal(t, lexer.Pos{Offset: 2, Line: 1, Col: 2}, lexemes[0].Span.End)
	assert.Equal(t, lexer.Pos{Offset: 3, Line: 1, Col: 3}, lexemes[1].Span.End)
}

func TestScanIsIdempotent(t *testing.T) {
	t.Parallel()

	src := "fn f(x: i32) -> i32 { x ..= 2 } // done\n/* nested /* ok */ */ r#\"raw\"# 'a 'b' 0x1F"
	first := mustLex(t, src)
	second := mustLex(t, src)
	require.Equal(t, first, second)
}

func TestNextAfterEOF(t *testing.T) {
	t.Parallel()

	s, err := lexer.NewScanner("x", lexer.Edition2018)
	require.NoError(t, err)
	require.Equal(t, lexer.KindIdentifier, s.Next().Kind)
	for i := 0; i < 3; i++ {
		lx := s.Next()
		assert.Equal(t, lexer.KindEOF, lx.Kind)
		assert.Equal(t, 1, lx.Span.Start.Offset)
	}
}

func TestUnsupportedEdition(t *testing.T) {
	t.Parallel()

	_, err := lexer.NewScanner("fn", lexer.Edition(7))
	require.ErrorIs(t, err, lexer.ErrUnsupportedEdition)

	_, err = lexer.Lexemize("fn", lexer.Edition(7))
	require.ErrorIs(t, err, lexer.ErrUnsupportedEdition)
}

func TestScannerZeroAlloc(t *testing.T) {
	src := `fn main() { let x = 0x1F + 2.5; } // trailing`
	s, err := lexer.NewScanner(src, lexer.Edition2018)
	if err != nil {
		t.Fatal(err)
	}

	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			if s.Next().Kind == lexer.KindEOF {
				break
			}
		}
	})
	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}
