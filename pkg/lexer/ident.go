package lexer

// scanIdent consumes an identifier and classifies it. For raw identifiers
// the "r#" prefix has already been consumed, and the name is never checked
// against the keyword table: r#match is an ordinary identifier. A lone "_"
// is the wildcard punctuation, not an identifier.
func (s *Scanner) scanIdent(start Pos, raw bool) Lexeme {
	c := &s.cur
	for isIdentContinue(c.peek(0)) {
		c.advance()
	}

	lx := s.emit(KindIdentifier, start)
	if raw {
		lx.Raw = true
		return lx
	}

	switch name := lx.Text; {
	case name == "_":
		lx.Kind = KindPunct
		lx.Sym = SymUnderscore
	case IsKeyword(name, s.ed):
		lx.Kind = KindKeyword
	case IsPrimitive(name):
		lx.Primitive = true
	}
	return lx
}
