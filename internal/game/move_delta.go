package game

// Undo 撤销 Apply 过的走法，返回需要回退的分数变化（0 或 -1）。
// 必须传入同一个 Move：子被推出后，仅凭棋盘无法知道它原来的位置。
func (b *Board) Undo(m Move) int {
	if m.Kind == Sidestep {
		for _, loc := range m.Selection.Column {
			b.set(loc, m.Selection.Color)
			b.set(b.Neighbor(loc, m.Direction), Empty)
		}
		return 0
	}

	col := m.inlineColumn()
	// 逆序回滚：每颗子退回后一格
	for i := len(col) - 1; i > 0; i-- {
		b.set(col[i], b.Get(col[i-1]))
	}
	lead := col[0]
	target := b.Neighbor(lead, m.Direction)
	if b.InBounds(target) {
		b.set(lead, b.Get(target))
		b.set(target, Empty)
		return 0
	}
	// 被推出棋盘的只可能是敌子
	b.set(lead, Opponent(m.Selection.Color))
	return -1
}
