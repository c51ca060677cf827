package lexer

// scanNumber consumes an integer or float literal. The sub-scanner's only
// contract is correct span boundaries: malformed digits for the base,
// doubled separators and identifier-shaped suffixes all stay inside the
// span, and deciding their validity is left to later stages.
func (s *Scanner) scanNumber(start Pos) Lexeme {
	c := &s.cur
	lit := LitInteger

	prefixed := false
	if c.peek(0) == '0' {
		switch c.peek(1) {
		case 'b', 'o':
			c.advance()
			c.advance()
			s.eatDigitRun(isDigit)
			prefixed = true
		case 'x':
			c.advance()
			c.advance()
			s.eatDigitRun(isHexDigit)
			prefixed = true
		}
	}
	if !prefixed {
		s.eatDigitRun(isDigit)
	}

	// A dot begins a fraction only when a digit follows. A lone trailing
	// dot is left for the punctuation matcher, so "1.foo" and "1..2" lex
	// the way method calls and ranges need them to.
	if c.peek(0) == '.' && isDigit(c.peek(1)) {
		lit = LitFloat
		c.advance()
		s.eatDigitRun(isDigit)
	}

	// An exponent marker needs a digit (or separator) after its optional
	// sign, otherwise the "e" is just the start of a suffix. Hex digit runs
	// already swallow any "e", so prefixed literals never grow an exponent.
	if !prefixed && s.eatExponent() {
		lit = LitFloat
	}

	// An identifier-shaped suffix like u8 or f64 is part of the literal.
	for isIdentContinue(c.peek(0)) {
		c.advance()
	}

	lx := s.emit(KindLiteral, start)
	lx.Lit = lit
	lx.Terminated = true
	return lx
}

// eatDigitRun consumes digits of the active base plus "_" separators.
func (s *Scanner) eatDigitRun(digit func(rune) bool) {
	c := &s.cur
	for {
		ch := c.peek(0)
		if ch != '_' && !digit(ch) {
			return
		}
		c.advance()
	}
}

func (s *Scanner) eatExponent() bool {
	c := &s.cur
	if c.peek(0) != 'e' && c.peek(0) != 'E' {
		return false
	}
	k := 1
	if c.peek(1) == '+' || c.peek(1) == '-' {
		k = 2
	}
	if c.peek(k) != '_' && !isDigit(c.peek(k)) {
		return false
	}
	for i := 0; i < k; i++ {
		c.advance()
	}
	s.eatDigitRun(isDigit)
	return true
}
