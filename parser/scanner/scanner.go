package scanner

import (
	"errors"
	"unicode/utf8"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

type Scanner struct {
	Token Token

	src string
	pos int

	errors *error
}

// NewScanner returns a scanner over src. Lexical errors are joined into
// *errs.
func NewScanner(src string, errs *error) *Scanner {
	return &Scanner{
		src:    src,
		errors: errs,
	}
}

// Next scans the next token into s.Token.
func (s *Scanner) Next() {
	onNewLine := s.skipTrivia()
	s.Token = Token{OnNewLine: onNewLine, Idx0: s.idx(s.pos)}
	if s.pos >= len(s.src) {
		s.Token.Kind = token.Eof
		s.Token.Idx1 = s.Token.Idx0
		return
	}

	b := s.src[s.pos]
	switch {
	case asciiStart[b] || b == '\\':
		s.scanIdentifier()
	case b >= utf8.RuneSelf:
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if isIdentifierStart(r) {
			s.scanIdentifier()
		} else {
			s.pos += size
			s.error(invalidCharacter(r, s.Token.Idx0, s.idx(s.pos)))
			s.Token.Kind = token.Illegal
		}
	case isDecimalDigit(b) || b == '.' && s.pos+1 < len(s.src) && isDecimalDigit(s.src[s.pos+1]):
		s.scanNumber()
	case b == '"' || b == '\'':
		s.scanString(b)
	default:
		s.Token.Kind = s.scanPunctuator()
		if s.Token.Kind == token.Illegal {
			s.error(invalidCharacter(rune(b), s.Token.Idx0, s.idx(s.pos)))
		}
	}
	s.Token.Idx1 = s.idx(s.pos)
}

type Checkpoint struct {
	pos int
	tok Token
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{pos: s.pos, tok: s.Token}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.pos = c.pos
	s.Token = c.tok
}

// Offset returns the index of the next unread character.
func (s *Scanner) Offset() ast.Idx {
	return s.idx(s.pos)
}

// Slice returns the source between two indexes.
func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src[from-1 : to-1]
}

func (s *Scanner) idx(offset int) ast.Idx {
	return ast.Idx(1 + offset)
}

func (s *Scanner) error(err *Error) {
	*s.errors = errors.Join(*s.errors, err)
}

// skipTrivia skips whitespace and comments and reports whether a line
// terminator was crossed.
func (s *Scanner) skipTrivia() bool {
	newline := false
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch b {
		case ' ', '\t', '\v', '\f', '\r':
			s.pos++
		case '\n':
			newline = true
			s.pos++
		case '/':
			if s.pos+1 >= len(s.src) {
				return newline
			}
			switch s.src[s.pos+1] {
			case '/':
				for s.pos < len(s.src) && s.src[s.pos] != '\n' {
					s.pos++
				}
			case '*':
				start := s.pos
				end := indexFrom(s.src, "*/", s.pos+2)
				if end < 0 {
					s.pos = len(s.src)
					s.error(unterminatedComment(s.idx(start), s.idx(s.pos)))
					return newline
				}
				for _, c := range s.src[s.pos:end] {
					if c == '\n' || c == '\u2028' || c == '\u2029' {
						newline = true
					}
				}
				s.pos = end + 2
			default:
				return newline
			}
		default:
			if b < utf8.RuneSelf {
				return newline
			}
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			switch {
			case r == '\u2028' || r == '\u2029':
				newline = true
			case isWhitespace(r):
			default:
				return newline
			}
			s.pos += size
		}
	}
	return newline
}

func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
