// internal/ui/animation.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"abalone_go/internal/game"
)

// PulseAnim 在某格上画一个逐渐消失的光圈，用来标出上一步动过的格子
type PulseAnim struct {
	Coord game.Location
	Start time.Time // 动画开始时间
	Dur   time.Duration
	Color color.RGBA
	Done  bool
}

func newPulse(loc game.Location, clr color.RGBA, delay time.Duration) *PulseAnim {
	return &PulseAnim{
		Coord: loc,
		Start: time.Now().Add(delay),
		Dur:   450 * time.Millisecond,
		Color: clr,
	}
}

// progress returns 0..1, or -1 before the animation has started.
func (a *PulseAnim) progress() float64 {
	elapsed := time.Since(a.Start)
	if elapsed < 0 {
		return -1
	}
	if elapsed >= a.Dur {
		a.Done = true
		return 1
	}
	return float64(elapsed) / float64(a.Dur)
}

func (a *PulseAnim) draw(dst *ebiten.Image, l *game.Layout, flipped bool) {
	p := a.progress()
	if p < 0 || a.Done {
		return
	}
	x, y := cellCenter(l, a.Coord, flipped)
	clr := a.Color
	clr.A = uint8(float64(clr.A) * (1 - p))
	r := float32(cellSize/2) * float32(0.8+0.4*p)
	vector.StrokeCircle(dst, float32(x), float32(y), r, 3, clr, true)
}

// addMoveAnims 为一步棋涉及的每个落点加光圈，被推的敌子稍晚一点
func (gs *GameScreen) addMoveAnims(m game.Move) {
	b := gs.state.Board
	for _, loc := range m.Selection.Column {
		gs.anims = append(gs.anims, newPulse(b.Neighbor(loc, m.Direction), color.RGBA{0xff, 0xc8, 0x3c, 0xff}, 0))
	}
	for _, loc := range m.Enemy {
		dst := b.Neighbor(loc, m.Direction)
		if !b.InBounds(dst) {
			// 被推出棋盘：在原位置闪红
			dst = loc
		}
		gs.anims = append(gs.anims, newPulse(dst, color.RGBA{0xe0, 0x40, 0x30, 0xff}, 120*time.Millisecond))
	}
}

// pruneAnims drops finished animations.
func (gs *GameScreen) pruneAnims() {
	alive := gs.anims[:0]
	for _, a := range gs.anims {
		if !a.Done {
			alive = append(alive, a)
		}
	}
	gs.anims = alive
}
