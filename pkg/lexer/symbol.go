package lexer

// Symbol enumerates every operator and punctuation sequence of the 2018
// grammar, so downstream matching can be exhaustive instead of comparing
// raw text.
type Symbol uint8

const (
	SymNone Symbol = iota

	// Three-character sequences.
	SymDotDotDot // ...
	SymDotDotEq  // ..=
	SymShlEq     // <<=
	SymShrEq     // >>=

	// Two-character sequences.
	SymEqEq      // ==
	SymNe        // !=
	SymLe        // <=
	SymGe        // >=
	SymAndAnd    // &&
	SymOrOr      // ||
	SymShl       // <<
	SymShr       // >>
	SymPlusEq    // +=
	SymMinusEq   // -=
	SymStarEq    // *=
	SymSlashEq   // /=
	SymPercentEq // %=
	SymCaretEq   // ^=
	SymAndEq     // &=
	SymOrEq      // |=
	SymDotDot    // ..
	SymPathSep   // ::
	SymRArrow    // ->
	SymFatArrow  // =>

	// Single characters.
	SymPlus         // +
	SymMinus        // -
	SymStar         // *
	SymSlash        // /
	SymPercent      // %
	SymCaret        // ^
	SymNot          // !
	SymAnd          // &
	SymOr           // |
	SymLt           // <
	SymGt           // >
	SymEq           // =
	SymDot          // .
	SymComma        // ,
	SymSemi         // ;
	SymColon        // :
	SymPound        // #
	SymDollar       // $
	SymQuestion     // ?
	SymAt           // @
	SymUnderscore   // _
	SymOpenParen    // (
	SymCloseParen   // )
	SymOpenBracket  // [
	SymCloseBracket // ]
	SymOpenBrace    // {
	SymCloseBrace   // }
)

type symbolEntry struct {
	sym  Symbol
	kind Kind
}

// symbolTable maps every operator and punctuation sequence to its Symbol.
// The matcher probes three characters down to one, so longest match always
// wins: "..=" is one lexeme, never ".." + "=".
var symbolTable = map[string]symbolEntry{
	"...": {SymDotDotDot, KindOperator},
	"..=": {SymDotDotEq, KindOperator},
	"<<=": {SymShlEq, KindOperator},
	">>=": {SymShrEq, KindOperator},

	"==": {SymEqEq, KindOperator},
	"!=": {SymNe, KindOperator},
	"<=": {SymLe, KindOperator},
	">=": {SymGe, KindOperator},
	"&&": {SymAndAnd, KindOperator},
	"||": {SymOrOr, KindOperator},
	"<<": {SymShl, KindOperator},
	">>": {SymShr, KindOperator},
	"+=": {SymPlusEq, KindOperator},
	"-=": {SymMinusEq, KindOperator},
	"*=": {SymStarEq, KindOperator},
	"/=": {SymSlashEq, KindOperator},
	"%=": {SymPercentEq, KindOperator},
	"^=": {SymCaretEq, KindOperator},
	"&=": {SymAndEq, KindOperator},
	"|=": {SymOrEq, KindOperator},
	"..": {SymDotDot, KindOperator},
	"::": {SymPathSep, KindPunct},
	"->": {SymRArrow, KindPunct},
	"=>": {SymFatArrow, KindPunct},

	"+": {SymPlus, KindOperator},
	"-": {SymMinus, KindOperator},
	"*": {SymStar, KindOperator},
	"/": {SymSlash, KindOperator},
	"%": {SymPercent, KindOperator},
	"^": {SymCaret, KindOperator},
	"!": {SymNot, KindOperator},
	"&": {SymAnd, KindOperator},
	"|": {SymOr, KindOperator},
	"<": {SymLt, KindOperator},
	">": {SymGt, KindOperator},
	"=": {SymEq, KindOperator},
	".": {SymDot, KindPunct},
	",": {SymComma, KindPunct},
	";": {SymSemi, KindPunct},
	":": {SymColon, KindPunct},
	"#": {SymPound, KindPunct},
	"$": {SymDollar, KindPunct},
	"?": {SymQuestion, KindPunct},
	"@": {SymAt, KindPunct},
	"_": {SymUnderscore, KindPunct},
	"(": {SymOpenParen, KindPunct},
	")": {SymCloseParen, KindPunct},
	"[": {SymOpenBracket, KindPunct},
	"]": {SymCloseBracket, KindPunct},
	"{": {SymOpenBrace, KindPunct},
	"}": {SymCloseBrace, KindPunct},
}

var symbolText = func() map[Symbol]string {
	m := make(map[Symbol]string, len(symbolTable))
	for text, entry := range symbolTable {
		m[entry.sym] = text
	}
	return m
}()

// String returns the source text of the symbol, eg ">>=" for SymShrEq.
func (s Symbol) String() string {
	if text, ok := symbolText[s]; ok {
		return text
	}
	return ""
}
