package game

// Direction 六个相邻方向之一
type Direction int

const (
	NW Direction = iota
	NE
	E
	SE
	SW
	W

	// NoDirection 单子选区没有方向
	NoDirection Direction = -1
)

// Directions 按固定顺序列出六个方向
var Directions = [6]Direction{NW, NE, E, SE, SW, W}

var directionNames = [6]string{"NW", "NE", "E", "SE", "SW", "W"}

func (d Direction) String() string {
	if !d.Valid() {
		return "-"
	}
	return directionNames[d]
}

// Valid 是否为六个真实方向之一
func (d Direction) Valid() bool { return d >= NW && d <= W }

// Opposite 同轴反方向
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return (d + 3) % 6
}

// SameAxis a、b 相同或相反时为 true。
// NoDirection 与任何方向都视为同轴。
func SameAxis(a, b Direction) bool {
	if !a.Valid() || !b.Valid() {
		return true
	}
	return a == b || a.Opposite() == b
}

// south 方向：SE / SW
func (d Direction) south() bool { return d == SE || d == SW }

func (d Direction) north() bool { return d == NW || d == NE }

func (d Direction) diagonal() bool { return d.north() || d.south() }

// forward 每条轴只取一个方向，枚举时每条线只数一次
func (d Direction) forward() bool { return d == E || d == SE || d == SW }

// Location 锯齿棋盘上的 (行, 列) 坐标
type Location struct {
	Row, Col int
}

// Layout 棋盘的固定几何：每行长度和上半盘的方向偏移，构造后不再修改
type Layout struct {
	rowLengths []int       // 每行格数
	middle     int         // 最长一行的下标
	deltas     [6]Location // 上半盘各方向的 (Δ行, Δ列)
}

// ClassicLayout 标准 61 格棋盘，行长 5..9..5
func ClassicLayout() *Layout {
	return &Layout{
		rowLengths: []int{5, 6, 7, 8, 9, 8, 7, 6, 5},
		middle:     4,
		deltas: [6]Location{
			NW: {-1, -1},
			NE: {-1, 0},
			E:  {0, 1},
			SE: {1, 1},
			SW: {1, 0},
			W:  {0, -1},
		},
	}
}

// Height 行数
func (l *Layout) Height() int { return len(l.rowLengths) }

// RowLength 第 r 行格数，r 越界时为 0
func (l *Layout) RowLength(r int) int {
	if r < 0 || r >= len(l.rowLengths) {
		return 0
	}
	return l.rowLengths[r]
}

// Middle 最长一行的下标
func (l *Layout) Middle() int { return l.middle }

// Size 总格数
func (l *Layout) Size() int {
	n := 0
	for _, w := range l.rowLengths {
		n += w
	}
	return n
}

// InBounds loc 是否在棋盘内
func (l *Layout) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < len(l.rowLengths) &&
		loc.Col >= 0 && loc.Col < l.rowLengths[loc.Row]
}

// Neighbor 返回 d 方向的相邻坐标，可能在棋盘外，由调用方检查 InBounds
func (l *Layout) Neighbor(loc Location, d Direction) Location {
	if !d.Valid() {
		return Location{-1, -1}
	}
	delta := l.deltas[d]
	// 行长先增后减，越过中线时斜向列偏移需要修正
	switch {
	case loc.Row == l.middle && d.south():
		delta.Col--
	case loc.Row > l.middle && d.diagonal():
		if d.north() {
			delta.Col++
		} else {
			delta.Col--
		}
	}
	return Location{loc.Row + delta.Row, loc.Col + delta.Col}
}
