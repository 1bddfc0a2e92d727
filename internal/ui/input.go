// File ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"abalone_go/internal/assets"
	"abalone_go/internal/game"
)

type command int

const (
	cmdUndo command = iota
	cmdRedo
	cmdRestart
	cmdFlip
	cmdMute
)

type commandButton struct {
	cmd        command
	label      string
	x, y, w, h float64
}

var commandButtons = []commandButton{
	{cmdUndo, "Undo (U)", panelX, 440, 100, 32},
	{cmdRedo, "Redo (R)", panelX + 110, 440, 100, 32},
	{cmdRestart, "Restart (N)", panelX, 485, 100, 32},
	{cmdFlip, "Flip (F)", panelX + 110, 485, 100, 32},
}

var commandKeys = map[ebiten.Key]command{
	ebiten.KeyU: cmdUndo,
	ebiten.KeyR: cmdRedo,
	ebiten.KeyN: cmdRestart,
	ebiten.KeyF: cmdFlip,
	ebiten.KeyM: cmdMute,
}

func commandAt(fx, fy float64) (command, bool) {
	for _, btn := range commandButtons {
		if fx >= btn.x && fx <= btn.x+btn.w && fy >= btn.y && fy <= btn.y+btn.h {
			return btn.cmd, true
		}
	}
	return 0, false
}

func directionAt(fx, fy float64, flipped bool) (game.Direction, bool) {
	for _, d := range game.Directions {
		x, y := directionButtonCenter(d, flipped)
		if (fx-x)*(fx-x)+(fy-y)*(fy-y) <= buttonRadius*buttonRadius {
			return d, true
		}
	}
	return game.NoDirection, false
}

// handleKeys 处理键盘快捷键
func (gs *GameScreen) handleKeys() {
	for key, cmd := range commandKeys {
		if inpututil.IsKeyJustPressed(key) {
			gs.runCommand(cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.clearSelection()
	}
}

// handleInput 处理鼠标点击：选锚点、补全选区、点方向按钮或命令按钮
func (gs *GameScreen) handleInput() {
	// 只在鼠标左键刚按下时响应
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if d, ok := directionAt(fx, fy, gs.isFlipped()); ok {
		gs.playDirection(d)
		return
	}
	if cmd, ok := commandAt(fx, fy); ok {
		gs.runCommand(cmd)
		return
	}
	loc, ok := pixelToLocation(gs.state.Board, fx, fy, gs.isFlipped())
	if !ok {
		gs.cancel()
		return
	}
	gs.clickCell(loc)
}

func (gs *GameScreen) clickCell(loc game.Location) {
	if gs.state.GameOver {
		gs.cancel()
		return
	}
	// 已有锚点：点中候选格即完成选区
	if gs.anchor != nil && gs.selection == nil {
		if d, ok := gs.selectables[loc]; ok {
			gs.completeSelection(loc, d)
			return
		}
	}
	// 被堵死的子不能当锚点
	if game.CanMove(gs.state.Board, gs.state.CurrentPlayer, loc) {
		gs.anchorAt(loc)
		return
	}
	gs.cancel()
}

func (gs *GameScreen) anchorAt(loc game.Location) {
	gs.clearSelection()
	gs.anchor = &loc
	gs.selectables = make(map[game.Location]game.Direction)
	for end, d := range gs.state.Selectables(loc) {
		gs.selectables[end] = d
	}
	// 只剩锚点本身时直接成为单子选区
	if len(gs.selectables) == 1 {
		gs.completeSelection(loc, game.NoDirection)
		return
	}
	gs.audioManager.Play(assets.SoundSelect)
}

func (gs *GameScreen) completeSelection(end game.Location, d game.Direction) {
	sel, err := game.BuildSelection(gs.state.Board, *gs.anchor, end, d)
	if err != nil {
		log.Debug().Err(err).Interface("anchor", *gs.anchor).Interface("end", end).Msg("selection rejected")
		gs.cancel()
		return
	}
	gs.selection = &sel
	gs.moves = make(map[game.Direction]game.Move)
	for _, m := range gs.state.LegalMoves(sel) {
		gs.moves[m.Direction] = m
	}
	gs.audioManager.Play(assets.SoundSelect)
}

func (gs *GameScreen) playDirection(d game.Direction) {
	m, ok := gs.moves[d]
	if !ok {
		gs.audioManager.Play(assets.SoundCancel)
		return
	}
	before := gs.state.Score(gs.state.CurrentPlayer)
	mover := gs.state.CurrentPlayer
	st, err := gs.state.MakeMove(m)
	if err != nil {
		log.Warn().Err(err).Stringer("move", m).Msg("move rejected")
		gs.cancel()
		return
	}
	gs.addMoveAnims(m)
	switch {
	case st.GameOver:
		gs.audioManager.Play(assets.SoundGameOver)
	case gs.state.Score(mover) > before:
		gs.audioManager.Play(assets.SoundPushOff)
	case m.Pushes():
		gs.audioManager.Play(assets.SoundPush)
	default:
		gs.audioManager.Play(assets.SoundMove)
	}
	gs.clearSelection()
}

func (gs *GameScreen) commandEnabled(cmd command) bool {
	switch cmd {
	case cmdUndo:
		return gs.state.CanUndo()
	case cmdRedo:
		return gs.state.CanRedo()
	}
	return true
}

func (gs *GameScreen) runCommand(cmd command) {
	// 按钮未启用时不调用，撤销/重做的前置条件由这里保证
	if !gs.commandEnabled(cmd) {
		gs.audioManager.Play(assets.SoundCancel)
		return
	}
	gs.clearSelection()
	switch cmd {
	case cmdUndo:
		if _, err := gs.state.Undo(); err != nil {
			log.Error().Err(err).Msg("undo failed")
			return
		}
		gs.audioManager.Play(assets.SoundUndo)
	case cmdRedo:
		if _, err := gs.state.Redo(); err != nil {
			log.Error().Err(err).Msg("redo failed")
			return
		}
		gs.audioManager.Play(assets.SoundMove)
	case cmdRestart:
		gs.state.Restart()
		gs.anims = nil
		log.Info().Str("match", gs.state.ID.String()).Msg("new match")
	case cmdFlip:
		gs.flipEveryTurn = !gs.flipEveryTurn
	case cmdMute:
		if gs.audioManager != nil {
			gs.audioManager.Muted = !gs.audioManager.Muted
			log.Debug().Bool("muted", gs.audioManager.Muted).Msg("sound toggled")
		}
	}
}

func (gs *GameScreen) cancel() {
	gs.clearSelection()
	gs.audioManager.Play(assets.SoundCancel)
}

func (gs *GameScreen) clearSelection() {
	gs.anchor = nil
	gs.selectables = nil
	gs.selection = nil
	gs.moves = nil
}
