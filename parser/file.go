package parser

import (
	"fmt"
	"sort"

	"github.com/fieldbook/intrusive/ast"
)

// File maps source indexes to line and column positions.
type File struct {
	src        string
	lineStarts []int
}

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func NewFile(src string) *File {
	f := &File{src: src, lineStarts: []int{0}}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Position returns the position of idx. Synthesized indexes (zero) map to
// the zero Position.
func (f *File) Position(idx ast.Idx) Position {
	if idx <= 0 {
		return Position{}
	}
	offset := int(idx) - 1
	if offset > len(f.src) {
		offset = len(f.src)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	return Position{
		Line:   line + 1,
		Column: offset - f.lineStarts[line] + 1,
	}
}
