// internal/game/encode.go
package game

import (
	"fmt"
	"strings"
)

// 文本棋盘：'.' 空, 'B' 黑, 'W' 白；空白字符忽略
var cellRunes = map[Cell]byte{Empty: '.', Black: 'B', White: 'W'}

// String draws the board as indented rows, e.g. "    W W W W W".
func (b *Board) String() string {
	var sb strings.Builder
	widest := 0
	for r := 0; r < b.layout.Height(); r++ {
		widest = max(widest, b.layout.RowLength(r))
	}
	for r, row := range b.cells {
		sb.WriteString(strings.Repeat(" ", widest-len(row)))
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellRunes[cell])
		}
		if r < len(b.cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a classic-layout board from one string per row, in the
// format produced by String. Whitespace is ignored.
func ParseBoard(rows ...string) (*Board, error) {
	b := NewEmptyBoard(ClassicLayout())
	if len(rows) != b.layout.Height() {
		return nil, fmt.Errorf("want %d rows, got %d", b.layout.Height(), len(rows))
	}
	for r, text := range rows {
		text = strings.Join(strings.Fields(text), "")
		if len(text) != b.layout.RowLength(r) {
			return nil, fmt.Errorf("row %d: want %d cells, got %d", r, b.layout.RowLength(r), len(text))
		}
		for c := 0; c < len(text); c++ {
			switch text[c] {
			case '.':
				b.cells[r][c] = Empty
			case 'B':
				b.cells[r][c] = Black
			case 'W':
				b.cells[r][c] = White
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", r, c, text[c])
			}
		}
	}
	return b, nil
}
