package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"abalone_go/internal/ui"
)

func main() {
	const sampleRate = 44100

	flip := flag.Bool("flip", false, "每回合翻转棋盘，让当前行棋方在下方")
	mute := flag.Bool("mute", false, "启动时静音（M 键切换）")
	debug := flag.Bool("debug", false, "输出调试日志")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := audio.NewContext(sampleRate)

	screen, err := ui.NewGameScreen(ctx, ui.Options{FlipEveryTurn: *flip, Mute: *mute})
	if err != nil {
		log.Fatal().Err(err).Msg("init game screen")
	}
	ebiten.SetTPS(30) // 每秒逻辑更新次数
	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Abalone")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
