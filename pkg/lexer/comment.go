package lexer

// scanComment handles both comment forms. The cursor sits on the leading
// slash, and the character after it is known to be '/' or '*'.
func (s *Scanner) scanComment(start Pos) Lexeme {
	c := &s.cur
	c.advance()
	if c.advance() == '/' {
		return s.scanLineComment(start)
	}
	return s.scanBlockComment(start)
}

// scanLineComment consumes through the end of the line, excluding the line
// terminator itself. "///" is an outer doc comment unless a fourth slash
// follows; "//!" is an inner doc comment.
func (s *Scanner) scanLineComment(start Pos) Lexeme {
	c := &s.cur
	doc := c.peek(0) == '!' || (c.peek(0) == '/' && c.peek(1) != '/')
	s.skipToLineEnd()
	lx := s.emit(KindLineComment, start)
	lx.Doc = doc
	return lx
}

// scanBlockComment consumes a possibly nested block comment. Only a "*/" at
// nesting depth zero closes it; reaching end of input while still open
// yields Terminated=false. "/**" is an outer doc comment unless the next
// character is '*' or '/' (which excludes "/***" and the empty "/**/");
// "/*!" is an inner doc comment.
func (s *Scanner) scanBlockComment(start Pos) Lexeme {
	c := &s.cur
	doc := c.peek(0) == '!' || (c.peek(0) == '*' && c.peek(1) != '*' && c.peek(1) != '/')

	depth := 1
	terminated := false
	for c.more() {
		ch := c.advance()
		if ch == '/' && c.peek(0) == '*' {
			c.advance()
			depth++
		} else if ch == '*' && c.peek(0) == '/' {
			c.advance()
			depth--
			if depth == 0 {
				terminated = true
				break
			}
		}
	}

	lx := s.emit(KindBlockComment, start)
	lx.Doc = doc
	lx.Terminated = terminated
	return lx
}
