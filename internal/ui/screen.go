// File /ui/screen.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"abalone_go/internal/assets"
	"abalone_go/internal/game"
)

// Options 控制界面行为
type Options struct {
	// FlipEveryTurn 让棋盘总是朝向当前行棋方
	FlipEveryTurn bool
	// Mute 启动时静音，运行中可用 M 键切换
	Mute bool
}

// GameScreen 实现 ebiten.Game 接口，管理游戏主循环和渲染。
// 选子分两步：先点锚点，再点候选终点（或自动成为单子选区），然后点方向按钮。
type GameScreen struct {
	state        *game.MatchState // 对局状态
	audioManager *assets.AudioManager
	face         text.Face

	flipEveryTurn bool

	anchor      *game.Location                   // 当前锚点
	selectables map[game.Location]game.Direction // 锚点可延伸到的终点
	selection   *game.Selection                  // 已完成的选区
	moves       map[game.Direction]game.Move     // 选区的合法走法
	anims       []*PulseAnim                     // 正在播放的动画列表
}

// NewGameScreen 构造并初始化游戏界面。ctx 为 nil 时没有音频。
func NewGameScreen(ctx *audio.Context, opts Options) (*GameScreen, error) {
	gs := &GameScreen{
		state:         game.NewMatchState(),
		face:          text.NewGoXFace(basicfont.Face7x13),
		flipEveryTurn: opts.FlipEveryTurn,
	}

	for _, name := range []string{
		assets.SpriteSpace, assets.SpriteBlack, assets.SpriteWhite,
		assets.SpriteAnchor, assets.SpriteSelectable, assets.SpriteSelected,
	} {
		if _, err := assets.LoadImage(name, int(cellSize)); err != nil {
			return nil, err
		}
	}

	if ctx != nil {
		am, err := assets.NewAudioManager(ctx)
		if err != nil {
			return nil, fmt.Errorf("初始化音频管理器失败: %w", err)
		}
		am.Muted = opts.Mute
		gs.audioManager = am
	}

	log.Info().Str("match", gs.state.ID.String()).Bool("flip", gs.flipEveryTurn).Bool("mute", opts.Mute).Msg("new match")
	return gs, nil
}

// isFlipped 翻转模式下白方行棋时棋盘旋转 180°
func (gs *GameScreen) isFlipped() bool {
	return gs.flipEveryTurn && gs.state.CurrentPlayer == game.White
}

// Update 每帧更新：处理键盘和鼠标输入
func (gs *GameScreen) Update() error {
	gs.audioManager.Update()
	gs.pruneAnims()
	gs.handleKeys()
	gs.handleInput()
	return nil
}

// Draw 渲染棋盘和右侧面板
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	gs.drawBoard(screen)
	gs.drawPanel(screen)
}

// Layout 固定逻辑分辨率
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}
