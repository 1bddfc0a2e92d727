// selfplay 随机自对弈，用来长时间检查规则引擎：
// 子数守恒、每步可撤销、分数不越界。发现问题时以非零码退出。
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"abalone_go/internal/game"
)

type result struct {
	plies    int
	winner   game.Cell
	pushOffs int
}

func main() {
	// ───── 参数 ─────
	numGames := flag.Int("n", 1000, "目标总对局数")
	maxPlies := flag.Int("moves", 400, "每局最多步数")
	workers := flag.Int("workers", max(1, runtime.NumCPU()/2), "并发 worker 数")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "随机种子")
	undoEvery := flag.Bool("undo", false, "每步都做一次 undo/redo 往返")
	debug := flag.Bool("debug", false, "输出每步日志")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().Int("games", *numGames).Int("workers", *workers).Uint64("seed", *seed).Msg("starting self-play")

	// ───── 并发 worker 池 ─────
	jobs := make(chan int, *workers*2)
	var (
		wg        sync.WaitGroup
		failed    atomic.Int64
		plies     atomic.Int64
		decisive  atomic.Int64
		pushTotal atomic.Int64
	)
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(*seed + uint64(workerID))) // 独立随机源
			for id := range jobs {
				res, err := playOneGame(r, *maxPlies, *undoEvery)
				if err != nil {
					failed.Add(1)
					log.Error().Err(err).Int("game", id).Int("worker", workerID).Msg("invariant violated")
					continue
				}
				plies.Add(int64(res.plies))
				pushTotal.Add(int64(res.pushOffs))
				if res.winner != game.Empty {
					decisive.Add(1)
				}
			}
		}(i)
	}

	// ───── 投任务 ─────
	start := time.Now()
	for g := 0; g < *numGames; g++ {
		jobs <- g
		if (g+1)%100 == 0 {
			log.Info().Msgf("投放进度 %d/%d", g+1, *numGames)
		}
	}
	close(jobs)
	wg.Wait()

	log.Info().
		Int64("plies", plies.Load()).
		Int64("push_offs", pushTotal.Load()).
		Int64("decisive", decisive.Load()).
		Int64("failed", failed.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("self-play finished")
	if failed.Load() > 0 {
		os.Exit(1)
	}
}

// playOneGame 双方都从所有合法走法里随机选一步，直到分出胜负或达到步数上限
func playOneGame(r *rand.Rand, maxPlies int, undoEvery bool) (result, error) {
	ms := game.NewMatchState()
	var res result
	for res.plies = 0; res.plies < maxPlies && !ms.GameOver; res.plies++ {
		moves := game.GenerateMoves(ms.Board, ms.CurrentPlayer)
		if len(moves) == 0 {
			return res, fmt.Errorf("%s has no legal move at ply %d", ms.CurrentPlayer, res.plies)
		}
		m := moves[r.Intn(len(moves))]

		before := ms.Board.Clone()
		scoreBefore := ms.Score(ms.CurrentPlayer)
		if _, err := ms.MakeMove(m); err != nil {
			return res, fmt.Errorf("ply %d: %w", res.plies, err)
		}
		if ms.Score(m.Selection.Color) > scoreBefore {
			res.pushOffs++
		}
		if err := checkInvariants(ms); err != nil {
			return res, fmt.Errorf("ply %d after %s: %w", res.plies, m, err)
		}

		if undoEvery {
			after := ms.Board.Clone()
			if _, err := ms.Undo(); err != nil {
				return res, fmt.Errorf("ply %d undo: %w", res.plies, err)
			}
			if !ms.Board.Equal(before) {
				return res, fmt.Errorf("ply %d: undo of %s did not restore the board\n%s", res.plies, m, ms.Board)
			}
			if _, err := ms.Redo(); err != nil {
				return res, fmt.Errorf("ply %d redo: %w", res.plies, err)
			}
			if !ms.Board.Equal(after) {
				return res, fmt.Errorf("ply %d: redo of %s diverged\n%s", res.plies, m, ms.Board)
			}
		}
	}
	res.winner = ms.Winner
	log.Debug().Str("match", ms.ID.String()).Int("plies", res.plies).Stringer("winner", res.winner).Msg("game done")
	return res, nil
}

// checkInvariants 子数 + 对方得分恒为 14，分数不超过胜利线
func checkInvariants(ms *game.MatchState) error {
	blackScore, whiteScore := ms.GetScores()
	if n := ms.Board.Count(game.Black) + whiteScore; n != game.PiecesPerPlayer {
		return fmt.Errorf("black marbles not conserved: %d", n)
	}
	if n := ms.Board.Count(game.White) + blackScore; n != game.PiecesPerPlayer {
		return fmt.Errorf("white marbles not conserved: %d", n)
	}
	if blackScore > game.WinningScore || whiteScore > game.WinningScore {
		return fmt.Errorf("score out of range: %d-%d", blackScore, whiteScore)
	}
	return nil
}
