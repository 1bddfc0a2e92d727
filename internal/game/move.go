package game

import "fmt"

// MoveKind 走法类型
type MoveKind int8

const (
	// Inline 沿选区自身轴线移动，可推子
	Inline MoveKind = iota
	// Sidestep 整体侧移进空格
	Sidestep
)

func (k MoveKind) String() string {
	if k == Sidestep {
		return "sidestep"
	}
	return "inline"
}

// Move 已验证的走法。
// 必须来自同一棋盘上的 LegalMoves，Apply 不再重复校验。
type Move struct {
	Selection Selection
	Direction Direction // 移动方向
	Kind      MoveKind
	Enemy     []Location // 被推的敌子，近的在前；侧移时为空
}

func (m Move) String() string {
	return fmt.Sprintf("%s %v %s push=%d", m.Kind, m.Selection.Column, m.Direction, len(m.Enemy))
}

// Pushes 是否推动敌子
func (m Move) Pushes() bool { return len(m.Enemy) > 0 }

// inlineColumn 按移动方向从前到后排列所有移动的子：先逆序的敌子，再是选区
func (m Move) inlineColumn() []Location {
	col := make([]Location, 0, len(m.Enemy)+m.Selection.Len())
	for i := len(m.Enemy) - 1; i >= 0; i-- {
		col = append(col, m.Enemy[i])
	}
	sel := m.Selection.Column
	if m.Selection.Direction == m.Direction {
		for i := len(sel) - 1; i >= 0; i-- {
			col = append(col, sel[i])
		}
	} else {
		col = append(col, sel...)
	}
	return col
}

// Apply 在棋盘上执行 m，返回被推出棋盘的敌子数（0 或 1）
func (b *Board) Apply(m Move) int {
	if m.Kind == Sidestep {
		for _, loc := range m.Selection.Column {
			b.set(b.Neighbor(loc, m.Direction), m.Selection.Color)
			b.set(loc, Empty)
		}
		return 0
	}

	col := m.inlineColumn()
	displaced := 0
	lead := col[0]
	target := b.Neighbor(lead, m.Direction)
	if b.InBounds(target) {
		b.set(target, b.Get(lead))
	} else {
		displaced = 1
	}
	// 其余棋子依次前移一格，落点都在列内
	target = lead
	for _, loc := range col[1:] {
		b.set(target, b.Get(loc))
		target = loc
	}
	b.set(target, Empty)
	return displaced
}
