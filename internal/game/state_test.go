// 文件：game/state_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// firstMove 返回当前玩家可走的第一步
func firstMove(t *testing.T, ms *MatchState) Move {
	t.Helper()
	moves := GenerateMoves(ms.Board, ms.CurrentPlayer)
	require.NotEmpty(t, moves)
	return moves[0]
}

func TestNewMatchState(t *testing.T) {
	ms := NewMatchState()
	st := ms.Status()
	require.Equal(t, Black, st.CurrentPlayer)
	require.Zero(t, st.BlackScore)
	require.Zero(t, st.WhiteScore)
	require.False(t, st.GameOver)
	require.Equal(t, Empty, st.Winner)
	require.False(t, st.CanUndo)
	require.False(t, st.CanRedo)
	require.True(t, NewBoard().Equal(ms.Board))
}

func TestMakeMoveSwitchesTurn(t *testing.T) {
	ms := NewMatchState()
	st, err := ms.MakeMove(firstMove(t, ms))
	require.NoError(t, err)
	require.Equal(t, White, st.CurrentPlayer)
	require.True(t, st.CanUndo)
	require.False(t, st.CanRedo)
	require.Len(t, ms.History(), 1)
}

func TestMakeMoveWrongPlayer(t *testing.T) {
	ms := NewMatchState()
	m := GenerateMoves(ms.Board, White)[0]
	_, err := ms.MakeMove(m)
	require.ErrorIs(t, err, ErrNotYourTurn)
	require.True(t, NewBoard().Equal(ms.Board), "rejected move must not touch the board")
	require.Equal(t, Black, ms.CurrentPlayer)
}

func TestUndoRedo(t *testing.T) {
	ms := NewMatchState()
	start := ms.Board.Clone()

	_, err := ms.MakeMove(firstMove(t, ms))
	require.NoError(t, err)
	afterBlack := ms.Board.Clone()
	_, err = ms.MakeMove(firstMove(t, ms))
	require.NoError(t, err)
	afterWhite := ms.Board.Clone()

	st, err := ms.Undo()
	require.NoError(t, err)
	require.Equal(t, White, st.CurrentPlayer)
	require.True(t, afterBlack.Equal(ms.Board))
	require.True(t, st.CanRedo)

	st, err = ms.Undo()
	require.NoError(t, err)
	require.Equal(t, Black, st.CurrentPlayer)
	require.True(t, start.Equal(ms.Board))
	require.False(t, st.CanUndo)

	_, err = ms.Undo()
	require.ErrorIs(t, err, ErrNothingToUndo)

	_, err = ms.Redo()
	require.NoError(t, err)
	st, err = ms.Redo()
	require.NoError(t, err)
	require.True(t, afterWhite.Equal(ms.Board))
	require.Equal(t, Black, st.CurrentPlayer)
	require.False(t, st.CanRedo)

	_, err = ms.Redo()
	require.ErrorIs(t, err, ErrNothingToRedo)
}

func TestNewMoveTruncatesRedo(t *testing.T) {
	ms := NewMatchState()
	moves := GenerateMoves(ms.Board, Black)
	require.GreaterOrEqual(t, len(moves), 2)

	_, err := ms.MakeMove(moves[0])
	require.NoError(t, err)
	_, err = ms.Undo()
	require.NoError(t, err)
	require.True(t, ms.CanRedo())

	_, err = ms.MakeMove(moves[1])
	require.NoError(t, err)
	require.False(t, ms.CanRedo())
	require.Len(t, ms.History(), 1)
	require.Equal(t, moves[1], ms.History()[0])
}

// winningPosition 黑方差一颗即胜，(4,4)-(4,6) 向 E 推出一颗白子
func winningPosition(t *testing.T) (*MatchState, Move) {
	t.Helper()
	ms := NewMatchState()
	ms.Board = place(t,
		[]Location{{4, 4}, {4, 5}, {4, 6}},
		[]Location{{4, 7}, {4, 8}, {0, 0}},
	)
	ms.scores = [2]int{WinningScore - 1, 0}
	sel := mustSelect(t, ms.Board, Location{4, 4}, Location{4, 6}, E)
	m, ok := MoveIn(ms.Board, sel, E)
	require.True(t, ok)
	return ms, m
}

func TestWinTrigger(t *testing.T) {
	ms, m := winningPosition(t)

	st, err := ms.MakeMove(m)
	require.NoError(t, err)
	require.Equal(t, WinningScore, st.BlackScore)
	require.True(t, st.GameOver)
	require.Equal(t, Black, st.Winner)
	require.Equal(t, Black, st.CurrentPlayer, "turn does not pass once the match is won")

	_, err = ms.MakeMove(m)
	require.ErrorIs(t, err, ErrGameOver)

	st, err = ms.Undo()
	require.NoError(t, err)
	require.Equal(t, WinningScore-1, st.BlackScore)
	require.False(t, st.GameOver)
	require.Equal(t, Empty, st.Winner)
	require.Equal(t, Black, st.CurrentPlayer)

	st, err = ms.Redo()
	require.NoError(t, err)
	require.True(t, st.GameOver)
	require.Equal(t, WinningScore, st.BlackScore)
}

func TestRestart(t *testing.T) {
	ms, m := winningPosition(t)
	_, err := ms.MakeMove(m)
	require.NoError(t, err)
	oldID := ms.ID

	st := ms.Restart()
	require.Equal(t, Black, st.CurrentPlayer)
	require.Zero(t, st.BlackScore)
	require.False(t, st.GameOver)
	require.False(t, st.CanUndo)
	require.NotEqual(t, oldID, ms.ID)
	require.True(t, NewBoard().Equal(ms.Board))
}

func TestScoreAccessors(t *testing.T) {
	ms, m := winningPosition(t)
	_, err := ms.MakeMove(m)
	require.NoError(t, err)
	b, w := ms.GetScores()
	require.Equal(t, WinningScore, b)
	require.Zero(t, w)
	require.Equal(t, b, ms.Score(Black))
}
