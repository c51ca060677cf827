package lexer

import (
	"unicode"
	"unicode/utf8"
)

// cursor is a forward-only reader over the source text. It decodes runes,
// tracks the byte offset plus line and column, and never panics: reads past
// the end return the zero rune.
type cursor struct {
	src  string
	off  int
	line int
	col  int
}

func newCursor(src string) cursor {
	return cursor{src: src, line: 1, col: 1}
}

func (c *cursor) more() bool {
	return c.off < len(c.src)
}

func (c *cursor) pos() Pos {
	return Pos{Offset: c.off, Line: c.line, Col: c.col}
}

// peek returns the rune k runes ahead without consuming it, or 0 past the
// end of the source.
func (c *cursor) peek(k int) rune {
	off := c.off
	for {
		if off >= len(c.src) {
			return 0
		}
		r, w := utf8.DecodeRuneInString(c.src[off:])
		if k == 0 {
			return r
		}
		off += w
		k--
	}
}

// advance consumes one rune and returns it, or 0 at the end of the source.
// The byte offset moves by the rune's encoded width. A "\r\n" pair counts
// as a single terminator: only the '\n' bumps the line.
func (c *cursor) advance() rune {
	if c.off >= len(c.src) {
		return 0
	}
	r, w := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += w
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

// slice returns the source text between a start offset and the cursor.
func (c *cursor) slice(start int) string {
	return c.src[start:c.off]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// isWhitespace matches the Pattern_White_Space set the 2018 grammar uses.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f',
		'', // next line
		'‎', // left-to-right mark
		'‏', // right-to-left mark
		' ', // line separator
		' ': // paragraph separator
		return true
	}
	return false
}
