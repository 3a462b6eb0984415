package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/fieldbook/intrusive/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

var (
	idStart    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinue = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr >= 0 && asciiStart[chr]
	}
	return unicode.Is(idStart, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr >= 0 && asciiContinue[chr]
	}
	// ZWNJ and ZWJ
	return chr == '\u200c' || chr == '\u200d' || unicode.Is(idContinue, chr)
}

// IsIdentifierName reports whether name can be written as a bare
// identifier (and therefore as a dotted property name).
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentifierStart(r) || i > 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func (s *Scanner) scanIdentifier() {
	start := s.pos
	var str *strings.Builder
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		if b < utf8.RuneSelf && asciiContinue[b] {
			if str != nil {
				str.WriteByte(b)
			}
			s.pos++
			continue
		}
		if b == '\\' {
			if str == nil {
				str = &strings.Builder{}
				str.WriteString(s.src[start:s.pos])
			}
			escStart := s.pos
			r, ok := s.identifierEscape()
			if !ok || !isIdentifierPart(r) {
				s.error(invalidEscape(s.idx(escStart), s.idx(s.pos)))
				break
			}
			str.WriteRune(r)
			continue
		}
		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			if !isIdentifierPart(r) {
				break
			}
			if str != nil {
				str.WriteRune(r)
			}
			s.pos += size
			continue
		}
		break
	}

	name := s.src[start:s.pos]
	if str != nil {
		name = str.String()
		s.Token.Kind = token.Identifier
		s.Token.Value = name
		return
	}
	s.Token.Value = name
	if kind, _ := token.LiteralKeyword(name); kind != 0 {
		s.Token.Kind = kind
		return
	}
	s.Token.Kind = token.Identifier
}

// identifierEscape decodes `\uXXXX` or `\u{X...}` at the current position.
func (s *Scanner) identifierEscape() (rune, bool) {
	if s.pos+1 >= len(s.src) || s.src[s.pos+1] != 'u' {
		s.pos++
		return 0, false
	}
	s.pos += 2
	return s.hexEscape()
}
