package token

import (
	"strconv"
)

// Token is the set of lexical tokens understood by the parser.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binary binding power of t, or 0 if t is not a
// binary operator. When in is false the `in` operator is not treated as
// binary (for-loop initializers).
func (t Token) Precedence(in bool) int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 7
	case In:
		if in {
			return 7
		}
		return 0
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 11
	}
	return 0
}

// IsAssign reports whether t is an assignment operator.
func (t Token) IsAssign() bool {
	switch t {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, QuotientAssign, RemainderAssign:
		return true
	}
	return false
}

// Binary returns the binary operator a compound assignment applies,
// e.g. Plus for AddAssign. Assign and non-assignment tokens map to 0.
func (t Token) Binary() Token {
	switch t {
	case AddAssign:
		return Plus
	case SubtractAssign:
		return Minus
	case MultiplyAssign:
		return Multiply
	case QuotientAssign:
		return Slash
	case RemainderAssign:
		return Remainder
	}
	return 0
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
	strict        bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword token. If the literal is a future keyword
// (class, enum, ...), or 0 if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, k.strict
		}
		return k.token, false
	}
	return 0, false
}

// ID ...
func ID(token Token) bool {
	return token >= Identifier
}
