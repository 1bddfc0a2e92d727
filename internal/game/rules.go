package game

// ---------------- 走法验证 -----------------

// LegalMoves 返回选区的全部合法走法，每个方向至多一个，按方向顺序。
// 没有合法走法的方向直接缺席。
func LegalMoves(b *Board, sel Selection) []Move {
	if sel.Len() == 0 || sel.Len() > MaxSelection {
		return nil
	}
	moves := make([]Move, 0, len(Directions))
	for _, d := range Directions {
		if m, ok := checkMove(b, sel, d); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// MoveIn 选区在 d 方向的合法走法（如果有）
func MoveIn(b *Board, sel Selection, d Direction) (Move, bool) {
	if sel.Len() == 0 || sel.Len() > MaxSelection || !d.Valid() {
		return Move{}, false
	}
	return checkMove(b, sel, d)
}

// checkMove 同轴走 sumito 推子判定，否则按侧移判定
func checkMove(b *Board, sel Selection, d Direction) (Move, bool) {
	if SameAxis(sel.Direction, d) {
		enemy, ok := sumito(b, sel, d)
		if !ok {
			return Move{}, false
		}
		return Move{Selection: sel, Direction: d, Kind: Inline, Enemy: enemy}, true
	}

	// 侧移：每颗子的目标格都必须在盘内且为空
	for _, loc := range sel.Column {
		if b.Get(b.Neighbor(loc, d)) != Empty {
			return Move{}, false
		}
	}
	return Move{Selection: sel, Direction: d, Kind: Sidestep}, true
}

// sumito 从选区朝 d 的一端往前走，收集会被推动的敌子。
// 敌方串必须严格短于选区。
func sumito(b *Board, sel Selection, d Direction) ([]Location, bool) {
	edge := sel.Column[0]
	if sel.Direction == d {
		edge = sel.Column[sel.Len()-1]
	}
	enemyColor := Opponent(sel.Color)
	bound := sel.Len() - 1

	var enemy []Location
	cur := b.Neighbor(edge, d)
	for len(enemy) < bound {
		switch b.Get(cur) {
		case Offboard:
			// 顶着棋盘边缘，必须至少推着一颗敌子
			return enemy, len(enemy) > 0
		case Empty:
			return enemy, true
		case enemyColor:
			enemy = append(enemy, cur)
			cur = b.Neighbor(cur, d)
		default:
			return nil, false
		}
	}

	// 单子推不动任何子，只能走进空格
	if len(enemy) == 0 {
		return enemy, b.Get(cur) == Empty
	}
	// 敌方串已达上限，后面必须是空格或棋盘外
	switch b.Get(cur) {
	case Empty, Offboard:
		return enemy, true
	}
	return nil, false
}
