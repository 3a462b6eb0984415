package parser

import "github.com/fieldbook/intrusive/token"

// Precedence represents operator binding power for Pratt parsing.
//
// Even values are left-associative. The loop breaks when lbp <= minBP and
// the recursive call passes lbp ^ 1 as the new minimum, so operators of the
// same level bind to the left.
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 14 // ||
	PrecedenceLogicalAnd Precedence = 16 // &&
	PrecedenceEquals     Precedence = 24 // == != === !==
	PrecedenceCompare    Precedence = 26 // < > <= >= instanceof in
	PrecedenceAdd        Precedence = 30 // + -
	PrecedenceMultiply   Precedence = 32 // * / %
)

// tokenPrecedence maps each token kind to its left binding power.
// Zero means the token is not a binary operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.StrictEqual] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.StrictNotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.InstanceOf] = PrecedenceCompare
	tokenPrecedence[token.In] = PrecedenceCompare
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
	tokenPrecedence[token.Remainder] = PrecedenceMultiply
}

// kindToPrecedence returns the left binding power for a token kind.
func kindToPrecedence(kind token.Token) Precedence {
	return tokenPrecedence[kind]
}
