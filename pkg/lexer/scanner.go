package lexer

// Scanner performs lexical analysis on one buffer of 2018-edition source.
// It is forward-only and single-pass: each call to Next consumes exactly one
// lexeme, and once KindEOF has been returned it is returned forever.
// Distinct Scanners share no state, so concurrent scans of different
// buffers are safe.
type Scanner struct {
	cur cursor
	ed  Edition
}

// NewScanner creates a scanner over source. Passing an unsupported edition
// is a configuration error, reported here before any scanning happens.
func NewScanner(source string, ed Edition) (*Scanner, error) {
	if !ed.valid() {
		return nil, ErrUnsupportedEdition
	}
	return &Scanner{cur: newCursor(source), ed: ed}, nil
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.cur = newCursor(source)
}

// Lexemize scans the whole source into an ordered lexeme slice, ending with
// a KindEOF lexeme. The slice covers the input completely: concatenating
// every Text field reproduces source byte-for-byte.
func Lexemize(source string, ed Edition) ([]Lexeme, error) {
	s, err := NewScanner(source, ed)
	if err != nil {
		return nil, err
	}
	var lexemes []Lexeme
	for {
		lx := s.Next()
		lexemes = append(lexemes, lx)
		if lx.Kind == KindEOF {
			return lexemes, nil
		}
	}
}

// Next returns the next lexeme from the source.
func (s *Scanner) Next() Lexeme {
	c := &s.cur
	start := c.pos()

	if !c.more() {
		return Lexeme{Kind: KindEOF, Span: Span{Start: start, End: start}}
	}

	ch := c.peek(0)

	// 1. A shebang line, only ever at the very first byte. "#![" is an
	// inner attribute, not a shebang.
	if start.Offset == 0 && ch == '#' && c.peek(1) == '!' && c.peek(2) != '[' {
		c.advance()
		c.advance()
		s.skipToLineEnd()
		return s.emit(KindLineComment, start)
	}

	// 2. Consecutive whitespace merges into a single lexeme.
	if isWhitespace(ch) {
		for isWhitespace(c.peek(0)) {
			c.advance()
		}
		return s.emit(KindWhitespace, start)
	}

	// 3. Line and block comments.
	if ch == '/' && (c.peek(1) == '/' || c.peek(1) == '*') {
		return s.scanComment(start)
	}

	// 4. Lifetimes and char literals share the single quote.
	if ch == '\'' {
		return s.scanQuote(start)
	}

	// 5. String-ish literals, including the b, r and br prefixes.
	if ch == '"' {
		return s.scanString(start, false)
	}
	if ch == 'b' {
		switch c.peek(1) {
		case '\'':
			c.advance()
			return s.scanChar(start, true)
		case '"':
			c.advance()
			return s.scanString(start, true)
		case 'r':
			if n, ok := s.rawStringAhead(2); ok {
				c.advance()
				return s.scanRawString(start, n, true)
			}
		}
	}
	if ch == 'r' {
		if n, ok := s.rawStringAhead(1); ok {
			return s.scanRawString(start, n, false)
		}
		if c.peek(1) == '#' && isIdentStart(c.peek(2)) {
			c.advance()
			c.advance()
			return s.scanIdent(start, true)
		}
	}

	// 6. Numbers.
	if isDigit(ch) {
		return s.scanNumber(start)
	}

	// 7. Identifiers and keywords.
	if isIdentStart(ch) {
		return s.scanIdent(start, false)
	}

	// 8. Operators and punctuation, longest match first.
	if lx, ok := s.scanSymbol(start); ok {
		return lx
	}

	// 9. Anything else is one Unknown character. The scan never aborts, so
	// the caller always receives a lexeme sequence covering the whole input.
	c.advance()
	return s.emit(KindUnknown, start)
}

// emit closes the lexeme that began at start, slicing its exact source text.
func (s *Scanner) emit(kind Kind, start Pos) Lexeme {
	end := s.cur.pos()
	return Lexeme{
		Kind: kind,
		Text: s.cur.slice(start.Offset),
		Span: Span{Start: start, End: end},
	}
}

// skipToLineEnd consumes up to, but not including, the next line terminator.
func (s *Scanner) skipToLineEnd() {
	c := &s.cur
	for c.more() {
		if ch := c.peek(0); ch == '\n' || (ch == '\r' && c.peek(1) == '\n') {
			return
		}
		c.advance()
	}
}

// rawStringAhead checks whether a raw string opener starts at runeOffset,
// which must point just past the "r". It returns the delimiter hash count,
// and false when the hashes are not followed by a double quote.
func (s *Scanner) rawStringAhead(runeOffset int) (int, bool) {
	c := &s.cur
	hashes := 0
	for c.peek(runeOffset+hashes) == '#' {
		hashes++
	}
	if c.peek(runeOffset+hashes) != '"' {
		return 0, false
	}
	return hashes, true
}

// scanSymbol attempts the longest-match operator and punctuation table,
// probing three bytes down to one. Every table entry is ASCII.
func (s *Scanner) scanSymbol(start Pos) (Lexeme, bool) {
	c := &s.cur
	for n := 3; n >= 1; n-- {
		if c.off+n > len(c.src) {
			continue
		}
		entry, ok := symbolTable[c.src[c.off:c.off+n]]
		if !ok {
			continue
		}
		for i := 0; i < n; i++ {
			c.advance()
		}
		lx := s.emit(entry.kind, start)
		lx.Sym = entry.sym
		return lx, true
	}
	return Lexeme{}, false
}
