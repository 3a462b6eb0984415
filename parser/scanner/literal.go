package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fieldbook/intrusive/token"
)

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\ufeff' || unicode.Is(unicode.Zs, r)
}

func hexValue(b byte) rune {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0')
	case 'a' <= b && b <= 'f':
		return rune(b - 'a' + 10)
	default:
		return rune(b - 'A' + 10)
	}
}

func (s *Scanner) scanNumber() {
	start := s.pos
	if s.src[s.pos] == '0' && s.pos+1 < len(s.src) {
		switch s.src[s.pos+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			s.pos += 2
			for s.pos < len(s.src) && (isHexDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
				s.pos++
			}
			s.finishNumber(start)
			return
		}
	}
	s.digits()
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		s.digits()
	}
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		s.digits()
	}
	s.finishNumber(start)
}

func (s *Scanner) digits() {
	for s.pos < len(s.src) && (isDecimalDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
		s.pos++
	}
}

func (s *Scanner) finishNumber(start int) {
	if s.pos < len(s.src) {
		r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
		if isIdentifierStart(r) {
			s.error(&Error{Message: "Identifier directly after number", Start: s.idx(start), End: s.idx(s.pos + 1)})
		}
	}
	s.Token.Kind = token.Number
	s.Token.Value = s.src[start:s.pos]
}

func (s *Scanner) scanString(quote byte) {
	start := s.pos
	s.pos++
	var str strings.Builder
	for {
		if s.pos >= len(s.src) {
			s.error(unterminatedString(s.idx(start), s.idx(s.pos)))
			s.Token.Kind = token.Illegal
			return
		}
		b := s.src[s.pos]
		switch b {
		case quote:
			s.pos++
			s.Token.Kind = token.String
			s.Token.Value = str.String()
			return
		case '\n', '\r':
			s.error(unterminatedString(s.idx(start), s.idx(s.pos)))
			s.Token.Kind = token.Illegal
			return
		case '\\':
			escStart := s.pos
			if !s.stringEscape(&str) {
				s.error(invalidEscape(s.idx(escStart), s.idx(s.pos)))
			}
		default:
			str.WriteByte(b)
			s.pos++
		}
	}
}

// stringEscape decodes one escape sequence starting at the backslash.
func (s *Scanner) stringEscape(str *strings.Builder) bool {
	s.pos++
	if s.pos >= len(s.src) {
		return false
	}
	b := s.src[s.pos]
	s.pos++
	switch b {
	case 'n':
		str.WriteByte('\n')
	case 't':
		str.WriteByte('\t')
	case 'r':
		str.WriteByte('\r')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'v':
		str.WriteByte('\v')
	case '0':
		str.WriteByte(0)
	case '\r':
		if s.pos < len(s.src) && s.src[s.pos] == '\n' {
			s.pos++
		}
	case '\n':
		// line continuation
	case 'x':
		if s.pos+2 > len(s.src) || !isHexDigit(s.src[s.pos]) || !isHexDigit(s.src[s.pos+1]) {
			return false
		}
		str.WriteRune(hexValue(s.src[s.pos])<<4 | hexValue(s.src[s.pos+1]))
		s.pos += 2
	case 'u':
		r, ok := s.hexEscape()
		if !ok {
			return false
		}
		str.WriteRune(r)
	default:
		str.WriteByte(b)
	}
	return true
}

// hexEscape decodes the digits of a \u escape; the position is just after
// the `u`.
func (s *Scanner) hexEscape() (rune, bool) {
	if s.pos < len(s.src) && s.src[s.pos] == '{' {
		s.pos++
		var value rune
		n := 0
		for s.pos < len(s.src) && isHexDigit(s.src[s.pos]) {
			value = value<<4 | hexValue(s.src[s.pos])
			s.pos++
			n++
		}
		if n == 0 || s.pos >= len(s.src) || s.src[s.pos] != '}' || value > utf8.MaxRune {
			return 0, false
		}
		s.pos++
		return value, true
	}
	if s.pos+4 > len(s.src) {
		return 0, false
	}
	var value rune
	for i := 0; i < 4; i++ {
		if !isHexDigit(s.src[s.pos+i]) {
			return 0, false
		}
		value = value<<4 | hexValue(s.src[s.pos+i])
	}
	s.pos += 4
	return value, true
}
