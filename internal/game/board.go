package game

import (
	"errors"
)

// Cell 格子状态。Offboard 只会由 Get 对盘外坐标返回，不会存进棋盘
type Cell int8

const (
	Empty Cell = iota
	Black
	White
	Offboard
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Offboard"
}

// Opponent 对手颜色，非玩家返回 Empty
func Opponent(player Cell) Cell {
	switch player {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// IsPlayer 是否为黑或白
func (c Cell) IsPlayer() bool { return c == Black || c == White }

// PiecesPerPlayer 开局每方子数
const PiecesPerPlayer = 14

var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Board 按 Layout 排布的锯齿形格子
type Board struct {
	layout *Layout
	cells  [][]Cell // cells[行][列]
}

// NewEmptyBoard 创建全空棋盘
func NewEmptyBoard(l *Layout) *Board {
	b := &Board{
		layout: l,
		cells:  make([][]Cell, l.Height()),
	}
	for r := range b.cells {
		b.cells[r] = make([]Cell, l.RowLength(r))
	}
	return b
}

// NewBoard 标准开局：白子占第 0、1 行和第 2 行中间三格，黑子在 6-8 行对称摆放
func NewBoard() *Board {
	b := NewEmptyBoard(ClassicLayout())
	last := b.layout.Height() - 1
	for _, r := range []int{0, 1, 2, last - 2, last - 1, last} {
		piece := White
		if r > b.layout.Middle() {
			piece = Black
		}
		for c := range b.cells[r] {
			// 第 2、6 行只放中间三颗
			if (r == 2 || r == last-2) && (c < 2 || c > 4) {
				continue
			}
			b.cells[r][c] = piece
		}
	}
	return b
}

// Layout 棋盘几何
func (b *Board) Layout() *Layout { return b.layout }

// InBounds loc 是否在棋盘内
func (b *Board) InBounds(loc Location) bool { return b.layout.InBounds(loc) }

// Neighbor d 方向的相邻坐标，不保证在盘内
func (b *Board) Neighbor(loc Location, d Direction) Location { return b.layout.Neighbor(loc, d) }

// Get 返回 loc 的状态，越界返回 Offboard
func (b *Board) Get(loc Location) Cell {
	if !b.InBounds(loc) {
		return Offboard
	}
	return b.cells[loc.Row][loc.Col]
}

// Set 写入 loc，越界返回 ErrOutOfBounds
func (b *Board) Set(loc Location, c Cell) error {
	if !b.InBounds(loc) {
		return ErrOutOfBounds
	}
	b.cells[loc.Row][loc.Col] = c
	return nil
}

// set 不做越界检查，只用于已验证的坐标
func (b *Board) set(loc Location, c Cell) {
	b.cells[loc.Row][loc.Col] = c
}

// Column 从 start 沿 d 走到 end（两端都包含）。
// 走出棋盘或超过 MaxSelection 颗时 ok=false。
func (b *Board) Column(start, end Location, d Direction) ([]Location, bool) {
	if !b.InBounds(start) || !b.InBounds(end) {
		return nil, false
	}
	column := []Location{start}
	cur := start
	for cur != end {
		if len(column) == MaxSelection {
			return nil, false
		}
		cur = b.Neighbor(cur, d)
		if !b.InBounds(cur) {
			return nil, false
		}
		column = append(column, cur)
	}
	return column, true
}

// View 按行复制一份格子，供渲染使用
func (b *Board) View() [][]Cell {
	out := make([][]Cell, len(b.cells))
	for r, row := range b.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// AllLocations 按行优先返回所有坐标
func (b *Board) AllLocations() []Location {
	locs := make([]Location, 0, b.layout.Size())
	for r, row := range b.cells {
		for c := range row {
			locs = append(locs, Location{r, c})
		}
	}
	return locs
}

// Count 统计状态为 c 的格子数
func (b *Board) Count(c Cell) int {
	n := 0
	for _, row := range b.cells {
		for _, s := range row {
			if s == c {
				n++
			}
		}
	}
	return n
}

// Equal 两个棋盘格子完全相同
func (b *Board) Equal(o *Board) bool {
	if len(b.cells) != len(o.cells) {
		return false
	}
	for r := range b.cells {
		if len(b.cells[r]) != len(o.cells[r]) {
			return false
		}
		for c := range b.cells[r] {
			if b.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone 深拷贝，共享同一个 Layout
func (b *Board) Clone() *Board {
	return &Board{
		layout: b.layout,
		cells:  b.View(),
	}
}
