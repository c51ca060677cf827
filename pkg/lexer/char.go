package lexer

// scanQuote disambiguates lifetimes from char literals. The cursor sits on
// a single quote. A quote followed by an identifier-start character is a
// lifetime, unless the character after that closes it ('a' is a char,
// 'a is a lifetime); if the identifier run turns out to be closed by a
// quote after all ('ab'), the whole thing is a char literal spanning both
// quotes. Everything else goes to the char sub-scanner.
func (s *Scanner) scanQuote(start Pos) Lexeme {
	c := &s.cur
	if isIdentStart(c.peek(1)) && c.peek(2) != '\'' {
		c.advance()
		for isIdentContinue(c.peek(0)) {
			c.advance()
		}
		if c.peek(0) != '\'' {
			return s.emit(KindLifetime, start)
		}
		c.advance()
		lx := s.emit(KindLiteral, start)
		lx.Lit = LitChar
		lx.Terminated = true
		return lx
	}
	return s.scanChar(start, false)
}

// scanChar consumes a char or byte-char literal. The cursor sits on the
// opening quote; for byte chars the "b" prefix has already been consumed.
// Escapes are skipped without interpretation, exactly like scanString. An
// unterminated literal spans to the end of the source.
func (s *Scanner) scanChar(start Pos, byteLit bool) Lexeme {
	c := &s.cur
	c.advance()
	terminated := false
	for c.more() {
		ch := c.advance()
		if ch == '\'' {
			terminated = true
			break
		}
		if ch == '\\' && c.more() {
			c.advance()
		}
	}

	lx := s.emit(KindLiteral, start)
	lx.Lit = LitChar
	if byteLit {
		lx.Lit = LitByteChar
	}
	lx.Terminated = terminated
	return lx
}
