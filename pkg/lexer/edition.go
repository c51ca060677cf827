package lexer

import "errors"

// Edition selects the grammar rules the scanner conforms to. Only the 2018
// edition is supported; anything else is a configuration error reported by
// NewScanner before any scanning begins.
type Edition uint8

const (
	Edition2018 Edition = iota
)

// ErrUnsupportedEdition is returned by NewScanner and Lexemize when asked
// for an edition the scanner does not implement.
var ErrUnsupportedEdition = errors.New("lexer: unsupported edition")

func (e Edition) String() string {
	if e == Edition2018 {
		return "2018"
	}
	return "unsupported"
}

func (e Edition) valid() bool {
	return e == Edition2018
}

// keywords2018 holds the strict and reserved keywords of the 2018 edition.
var keywords2018 = map[string]struct{}{
	"abstract": {}, "as": {}, "async": {}, "await": {}, "become": {},
	"box": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"do": {}, "dyn": {}, "else": {}, "enum": {}, "extern": {},
	"false": {}, "final": {}, "fn": {}, "for": {}, "if": {},
	"impl": {}, "in": {}, "let": {}, "loop": {}, "macro": {},
	"match": {}, "mod": {}, "move": {}, "mut": {}, "override": {},
	"priv": {}, "pub": {}, "ref": {}, "return": {}, "Self": {},
	"self": {}, "static": {}, "struct": {}, "super": {}, "trait": {},
	"true": {}, "try": {}, "type": {}, "typeof": {}, "union": {},
	"unsafe": {}, "unsized": {}, "use": {}, "virtual": {}, "where": {},
	"while": {}, "yield": {},
}

// IsKeyword reports whether name is a reserved word in the given edition.
// Raw identifiers (r#match) are never keywords.
func IsKeyword(name string, ed Edition) bool {
	if ed != Edition2018 {
		return false
	}
	_, ok := keywords2018[name]
	return ok
}

// primitives holds the built-in type names. They are not reserved words, so
// identifiers naming them keep KindIdentifier and just carry a flag.
var primitives = map[string]struct{}{
	"bool": {}, "char": {}, "str": {},
	"f32": {}, "f64": {},
	"i8": {}, "i16": {}, "i32": {}, "i64": {}, "i128": {}, "isize": {},
	"u8": {}, "u16": {}, "u32": {}, "u64": {}, "u128": {}, "usize": {},
}

// IsPrimitive reports whether name is a built-in primitive type name.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}
