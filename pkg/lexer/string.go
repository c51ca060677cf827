package lexer

// scanString consumes a plain or byte string literal. The cursor sits on
// the opening double quote; for byte strings the "b" prefix has already
// been consumed. A backslash escapes the next character unconditionally,
// which covers every escape form the grammar allows (\n, \x41, \u{1F600},
// \" and the line-continuation backslash-newline) without interpreting
// them: the lexeme keeps the raw source text. Reaching end of input before
// the closing quote yields Terminated=false with the span running to the
// end of the source.
func (s *Scanner) scanString(start Pos, byteLit bool) Lexeme {
	c := &s.cur
	c.advance()
	terminated := false
	for c.more() {
		ch := c.advance()
		if ch == '"' {
			terminated = true
			break
		}
		if ch == '\\' && c.more() {
			c.advance()
		}
	}

	lx := s.emit(KindLiteral, start)
	lx.Lit = LitString
	if byteLit {
		lx.Lit = LitByteString
	}
	lx.Terminated = terminated
	return lx
}

// scanRawString consumes a raw (or raw byte) string literal. The cursor
// sits on the "r"; for raw byte strings the "b" has already been consumed.
// The caller counted the delimiter hashes, so the opener is known to be
// well-formed. Backslashes have no meaning here: the literal only closes
// on a double quote followed by exactly as many hashes as opened it.
func (s *Scanner) scanRawString(start Pos, hashes int, byteLit bool) Lexeme {
	c := &s.cur
	c.advance() // r
	for i := 0; i < hashes; i++ {
		c.advance()
	}
	c.advance() // opening quote

	terminated := false
	for c.more() {
		if c.advance() != '"' {
			continue
		}
		n := 0
		for n < hashes && c.peek(0) == '#' {
			c.advance()
			n++
		}
		if n == hashes {
			terminated = true
			break
		}
	}

	lx := s.emit(KindLiteral, start)
	lx.Lit = LitRawString
	if byteLit {
		lx.Lit = LitRawByteString
	}
	lx.Terminated = terminated
	lx.Hashes = hashes
	return lx
}
