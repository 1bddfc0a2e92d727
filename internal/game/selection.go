package game

import (
	"errors"
	"iter"
)

// MaxSelection 一次最多移动的子数
const MaxSelection = 3

var ErrInvalidSelection = errors.New("invalid selection")

// Selection 同色连续 1-3 颗子。Column 从锚点开始沿 Direction 排列，单子为 NoDirection
type Selection struct {
	Column    []Location // 锚点在前
	Direction Direction  // 选区方向
	Color     Cell       // 选区颜色
}

// Len 选区子数
func (s Selection) Len() int { return len(s.Column) }

// Selectables 枚举能与 anchor 组成选区的终点及其方向。
// 先产出锚点本身（NoDirection）；锚点为空或越界时什么都不产出。
func Selectables(b *Board, anchor Location) iter.Seq2[Location, Direction] {
	return func(yield func(Location, Direction) bool) {
		color := b.Get(anchor)
		if !color.IsPlayer() {
			return
		}
		if !yield(anchor, NoDirection) {
			return
		}
		for _, d := range Directions {
			cur := anchor
			for dist := 1; dist < MaxSelection; dist++ {
				cur = b.Neighbor(cur, d)
				// Get 对越界返回 Offboard，颜色自然不同
				if b.Get(cur) != color {
					break
				}
				if !yield(cur, d) {
					return
				}
			}
		}
	}
}

// BuildSelection 构造 anchor 沿 d 到 endpoint 的选区。
// 单子选区传 endpoint == anchor，此时忽略 d。
func BuildSelection(b *Board, anchor, endpoint Location, d Direction) (Selection, error) {
	color := b.Get(anchor)
	if !color.IsPlayer() {
		return Selection{}, ErrInvalidSelection
	}
	if anchor == endpoint {
		return Selection{Column: []Location{anchor}, Direction: NoDirection, Color: color}, nil
	}
	if !d.Valid() {
		return Selection{}, ErrInvalidSelection
	}
	column, ok := b.Column(anchor, endpoint, d)
	if !ok {
		return Selection{}, ErrInvalidSelection
	}
	for _, loc := range column {
		if b.Get(loc) != color {
			return Selection{}, ErrInvalidSelection
		}
	}
	return Selection{Column: column, Direction: d, Color: color}, nil
}
