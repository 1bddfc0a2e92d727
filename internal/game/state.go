package game

import (
	"errors"
	"iter"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WinningScore is the number of pushed-off marbles that wins the match.
const WinningScore = 6

var (
	ErrGameOver      = errors.New("game is over")
	ErrNotYourTurn   = errors.New("selection does not belong to the current player")
	ErrNothingToUndo = errors.New("no move to undo")
	ErrNothingToRedo = errors.New("no move to redo")
)

// record is one entry of the move log.
type record struct {
	move      Move
	mover     Cell
	displaced int
}

// Status is what a collaborator needs to display after each command.
type Status struct {
	CurrentPlayer Cell
	BlackScore    int
	WhiteScore    int
	GameOver      bool
	Winner        Cell // Empty while the game is running
	CanUndo       bool
	CanRedo       bool
}

// MatchState holds the board, turn, scores and the undo/redo log of one match.
type MatchState struct {
	ID            uuid.UUID
	Board         *Board
	CurrentPlayer Cell
	GameOver      bool
	Winner        Cell

	scores  [2]int
	history []record
	cursor  int // history[:cursor] has been applied
}

// NewMatchState starts a match from the classic position with Black to move.
func NewMatchState() *MatchState {
	return &MatchState{
		ID:            uuid.New(),
		Board:         NewBoard(),
		CurrentPlayer: Black,
	}
}

func scoreIndex(player Cell) int {
	if player == White {
		return 1
	}
	return 0
}

// Score returns how many opponent marbles player has pushed off.
func (ms *MatchState) Score(player Cell) int { return ms.scores[scoreIndex(player)] }

// GetScores 返回当前双方的分数 (Black, White)
func (ms *MatchState) GetScores() (int, int) { return ms.scores[0], ms.scores[1] }

// CanUndo reports whether Undo would succeed.
func (ms *MatchState) CanUndo() bool { return ms.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (ms *MatchState) CanRedo() bool { return ms.cursor < len(ms.history) }

// Status snapshots the match for display.
func (ms *MatchState) Status() Status {
	return Status{
		CurrentPlayer: ms.CurrentPlayer,
		BlackScore:    ms.scores[0],
		WhiteScore:    ms.scores[1],
		GameOver:      ms.GameOver,
		Winner:        ms.Winner,
		CanUndo:       ms.CanUndo(),
		CanRedo:       ms.CanRedo(),
	}
}

// History returns the applied moves, oldest first.
func (ms *MatchState) History() []Move {
	moves := make([]Move, ms.cursor)
	for i, rec := range ms.history[:ms.cursor] {
		moves[i] = rec.move
	}
	return moves
}

// Selectables is Selectables on the match board.
func (ms *MatchState) Selectables(anchor Location) iter.Seq2[Location, Direction] {
	return Selectables(ms.Board, anchor)
}

// LegalMoves is LegalMoves on the match board.
func (ms *MatchState) LegalMoves(sel Selection) []Move {
	return LegalMoves(ms.Board, sel)
}

// MakeMove applies m for the current player, credits any pushed-off marble
// and passes the turn. Reaching WinningScore ends the match instead.
func (ms *MatchState) MakeMove(m Move) (Status, error) {
	if ms.GameOver {
		return ms.Status(), ErrGameOver
	}
	if m.Selection.Color != ms.CurrentPlayer {
		return ms.Status(), ErrNotYourTurn
	}
	rec := record{move: m, mover: ms.CurrentPlayer}
	rec.displaced = ms.Board.Apply(m)

	// 新走法覆盖掉 redo 尾巴
	ms.history = append(ms.history[:ms.cursor], rec)
	ms.cursor++
	ms.advance(rec)

	log.Debug().
		Str("match", ms.ID.String()).
		Stringer("player", rec.mover).
		Stringer("move", m).
		Int("displaced", rec.displaced).
		Msg("move made")
	return ms.Status(), nil
}

// Undo reverses the most recent applied move and gives the turn back to
// its mover.
func (ms *MatchState) Undo() (Status, error) {
	if !ms.CanUndo() {
		return ms.Status(), ErrNothingToUndo
	}
	ms.cursor--
	rec := ms.history[ms.cursor]
	ms.scores[scoreIndex(rec.mover)] += ms.Board.Undo(rec.move)
	ms.CurrentPlayer = rec.mover
	ms.GameOver = false
	ms.Winner = Empty

	log.Debug().
		Str("match", ms.ID.String()).
		Stringer("player", rec.mover).
		Stringer("move", rec.move).
		Msg("move undone")
	return ms.Status(), nil
}

// Redo re-applies the move after the cursor with the same effects as MakeMove.
func (ms *MatchState) Redo() (Status, error) {
	if !ms.CanRedo() {
		return ms.Status(), ErrNothingToRedo
	}
	rec := ms.history[ms.cursor]
	ms.Board.Apply(rec.move)
	ms.cursor++
	ms.advance(rec)

	log.Debug().
		Str("match", ms.ID.String()).
		Stringer("player", rec.mover).
		Stringer("move", rec.move).
		Msg("move redone")
	return ms.Status(), nil
}

// Restart throws the match away and starts over from the classic position.
func (ms *MatchState) Restart() Status {
	*ms = *NewMatchState()
	log.Debug().Str("match", ms.ID.String()).Msg("match restarted")
	return ms.Status()
}

// advance credits the mover and either ends the match or passes the turn.
func (ms *MatchState) advance(rec record) {
	i := scoreIndex(rec.mover)
	ms.scores[i] += rec.displaced
	if ms.scores[i] >= WinningScore {
		ms.GameOver = true
		ms.Winner = rec.mover
		log.Info().Str("match", ms.ID.String()).Stringer("winner", rec.mover).Msg("game over")
		return
	}
	ms.CurrentPlayer = Opponent(rec.mover)
}
