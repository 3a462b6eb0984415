package scanner

import "github.com/fieldbook/intrusive/token"

// punctuators is ordered longest spelling first so that the first prefix
// match is the maximal munch.
var punctuators = []struct {
	text string
	kind token.Token
}{
	{"===", token.StrictEqual},
	{"!==", token.StrictNotEqual},
	{"==", token.Equal},
	{"!=", token.NotEqual},
	{"<=", token.LessOrEqual},
	{">=", token.GreaterOrEqual},
	{"&&", token.LogicalAnd},
	{"||", token.LogicalOr},
	{"++", token.Increment},
	{"--", token.Decrement},
	{"+=", token.AddAssign},
	{"-=", token.SubtractAssign},
	{"*=", token.MultiplyAssign},
	{"/=", token.QuotientAssign},
	{"%=", token.RemainderAssign},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Multiply},
	{"/", token.Slash},
	{"%", token.Remainder},
	{"<", token.Less},
	{">", token.Greater},
	{"=", token.Assign},
	{"!", token.Not},
	{"~", token.BitwiseNot},
	{"(", token.LeftParenthesis},
	{")", token.RightParenthesis},
	{"[", token.LeftBracket},
	{"]", token.RightBracket},
	{"{", token.LeftBrace},
	{"}", token.RightBrace},
	{",", token.Comma},
	{".", token.Period},
	{";", token.Semicolon},
	{":", token.Colon},
	{"?", token.QuestionMark},
}

func (s *Scanner) scanPunctuator() token.Token {
	rest := s.src[s.pos:]
	for _, p := range punctuators {
		if len(rest) >= len(p.text) && rest[:len(p.text)] == p.text {
			s.pos += len(p.text)
			return p.kind
		}
	}
	s.pos++
	return token.Illegal
}
