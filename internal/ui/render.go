// File /ui/render.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"abalone_go/internal/assets"
	"abalone_go/internal/game"
)

const (
	// 窗口尺寸
	WindowWidth  = 800
	WindowHeight = 600

	cellSize = 50.0
	boardCX  = 300.0
	boardCY  = 300.0

	panelX       = 560.0
	ringCX       = 670.0
	ringCY       = 290.0
	ringRadius   = 62.0
	buttonRadius = 20.0
)

var (
	rowStep     = cellSize * math.Sqrt(3) / 2
	background  = color.RGBA{0x2a, 0x1d, 0x12, 0xff}
	boardColor  = color.RGBA{0x8a, 0x62, 0x3d, 0xff}
	textColor   = color.RGBA{0xf0, 0xe8, 0xd8, 0xff}
	dimColor    = color.RGBA{0x70, 0x66, 0x5a, 0xff}
	buttonColor = color.RGBA{0x44, 0x33, 0x26, 0xff}
)

// dirAngle 屏幕坐标系下每个方向的角度（y 轴向下）
var dirAngle = map[game.Direction]float64{
	game.E:  0,
	game.NE: -math.Pi / 3,
	game.NW: -2 * math.Pi / 3,
	game.W:  math.Pi,
	game.SW: 2 * math.Pi / 3,
	game.SE: math.Pi / 3,
}

// cellCenter maps a board location to the pixel centre of its cell. A flipped
// board is rotated half a turn around the board centre.
func cellCenter(l *game.Layout, loc game.Location, flipped bool) (float64, float64) {
	n := l.RowLength(loc.Row)
	x := boardCX + (float64(loc.Col)-float64(n-1)/2)*cellSize
	y := boardCY + float64(loc.Row-l.Middle())*rowStep
	if flipped {
		x, y = 2*boardCX-x, 2*boardCY-y
	}
	return x, y
}

// pixelToLocation 把屏幕像素反算成棋盘格
func pixelToLocation(b *game.Board, fx, fy float64, flipped bool) (game.Location, bool) {
	const r2 = cellSize * cellSize / 4
	for _, loc := range b.AllLocations() {
		x, y := cellCenter(b.Layout(), loc, flipped)
		if (fx-x)*(fx-x)+(fy-y)*(fy-y) <= r2 {
			return loc, true
		}
	}
	return game.Location{}, false
}

// directionButtonCenter places the six move buttons on a ring, pointing the
// way the marbles would travel on screen.
func directionButtonCenter(d game.Direction, flipped bool) (float64, float64) {
	a := dirAngle[d]
	if flipped {
		a += math.Pi
	}
	return ringCX + ringRadius*math.Cos(a), ringCY + ringRadius*math.Sin(a)
}

// drawBoard 绘制底板、空格和棋子
func (gs *GameScreen) drawBoard(dst *ebiten.Image) {
	b := gs.state.Board
	flipped := gs.isFlipped()

	vector.DrawFilledCircle(dst, boardCX, boardCY, float32(5*cellSize), boardColor, true)

	view := b.View()
	for r, row := range view {
		for c, cell := range row {
			loc := game.Location{Row: r, Col: c}
			gs.drawSprite(dst, assets.SpriteSpace, loc, flipped)
			switch cell {
			case game.Black:
				gs.drawSprite(dst, assets.SpriteBlack, loc, flipped)
			case game.White:
				gs.drawSprite(dst, assets.SpriteWhite, loc, flipped)
			}
		}
	}

	// 选择提示
	switch {
	case gs.selection != nil:
		for _, loc := range gs.selection.Column {
			gs.drawSprite(dst, assets.SpriteSelected, loc, flipped)
		}
	case gs.anchor != nil:
		for loc := range gs.selectables {
			name := assets.SpriteSelectable
			if loc == *gs.anchor {
				name = assets.SpriteAnchor
			}
			gs.drawSprite(dst, name, loc, flipped)
		}
	}

	for _, a := range gs.anims {
		a.draw(dst, b.Layout(), flipped)
	}
}

func (gs *GameScreen) drawSprite(dst *ebiten.Image, name string, loc game.Location, flipped bool) {
	img, err := assets.LoadImage(name, int(cellSize))
	if err != nil {
		return
	}
	x, y := cellCenter(gs.state.Board.Layout(), loc, flipped)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-cellSize/2, y-cellSize/2)
	dst.DrawImage(img, op)
}

// drawPanel 绘制右侧状态栏、方向按钮和命令按钮
func (gs *GameScreen) drawPanel(dst *ebiten.Image) {
	st := gs.state.Status()

	status := fmt.Sprintf("%s to move", st.CurrentPlayer)
	if st.GameOver {
		status = fmt.Sprintf("%s wins!", st.Winner)
	}
	gs.drawText(dst, status, panelX, 40, textColor)
	gs.drawText(dst, fmt.Sprintf("Black: %d", st.BlackScore), panelX, 80, textColor)
	gs.drawText(dst, fmt.Sprintf("White: %d", st.WhiteScore), panelX, 100, textColor)
	if gs.flipEveryTurn {
		gs.drawText(dst, "flip every turn", panelX, 130, dimColor)
	}
	if gs.audioManager != nil && gs.audioManager.Muted {
		gs.drawText(dst, "muted (M)", panelX, 150, dimColor)
	}

	flipped := gs.isFlipped()
	for _, d := range game.Directions {
		x, y := directionButtonCenter(d, flipped)
		_, legal := gs.moves[d]
		fill, label := buttonColor, dimColor
		if legal {
			fill, label = assets.SelectedColor, textColor
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), buttonRadius, fill, true)
		name := d.String()
		gs.drawText(dst, name, x-float64(len(name))*3.5, y-7, label)
	}

	for _, btn := range commandButtons {
		enabled := gs.commandEnabled(btn.cmd)
		fill, label := buttonColor, dimColor
		if enabled {
			label = textColor
		}
		vector.DrawFilledRect(dst, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), fill, true)
		vector.StrokeRect(dst, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), 1, label, true)
		gs.drawText(dst, btn.label, btn.x+10, btn.y+9, label)
	}
}

func (gs *GameScreen) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, gs.face, op)
}
