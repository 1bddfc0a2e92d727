package game

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSelect(t *testing.T, b *Board, anchor, end Location, d Direction) Selection {
	t.Helper()
	sel, err := BuildSelection(b, anchor, end, d)
	require.NoError(t, err)
	return sel
}

func moveIn(moves []Move, d Direction) (Move, bool) {
	for _, m := range moves {
		if m.Direction == d {
			return m, true
		}
	}
	return Move{}, false
}

func TestSumitoPushesShorterColumn(t *testing.T) {
	cases := []struct {
		name  string
		black []Location
		white []Location
		enemy []Location
	}{
		{
			name:  "three push two off the edge",
			black: []Location{{4, 4}, {4, 5}, {4, 6}},
			white: []Location{{4, 7}, {4, 8}},
			enemy: []Location{{4, 7}, {4, 8}},
		},
		{
			name:  "three push one into space",
			black: []Location{{4, 2}, {4, 3}, {4, 4}},
			white: []Location{{4, 5}},
			enemy: []Location{{4, 5}},
		},
		{
			name:  "three push two into space",
			black: []Location{{4, 1}, {4, 2}, {4, 3}},
			white: []Location{{4, 4}, {4, 5}},
			enemy: []Location{{4, 4}, {4, 5}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := place(t, c.black, c.white)
			sel := mustSelect(t, b, c.black[0], c.black[len(c.black)-1], E)
			m, ok := MoveIn(b, sel, E)
			require.True(t, ok)
			require.Equal(t, Inline, m.Kind)
			require.Equal(t, c.enemy, m.Enemy)
		})
	}

	t.Run("two push one", func(t *testing.T) {
		b := place(t, []Location{{4, 2}, {4, 3}}, []Location{{4, 4}})
		sel := mustSelect(t, b, Location{4, 2}, Location{4, 3}, E)
		m, ok := MoveIn(b, sel, E)
		require.True(t, ok)
		require.Equal(t, []Location{{4, 4}}, m.Enemy)
	})
}

func TestSumitoRejectsEqualOrLonger(t *testing.T) {
	cases := []struct {
		name  string
		black []Location
		white []Location
	}{
		{"two against two", []Location{{4, 5}, {4, 6}}, []Location{{4, 7}, {4, 8}}},
		{"three against three", []Location{{4, 3}, {4, 4}, {4, 5}}, []Location{{4, 6}, {4, 7}, {4, 8}}},
		{"two against three", []Location{{4, 1}, {4, 2}}, []Location{{4, 3}, {4, 4}, {4, 5}}},
		{"one against one", []Location{{4, 4}}, []Location{{4, 5}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := place(t, c.black, c.white)
			sel := mustSelect(t, b, c.black[0], c.black[len(c.black)-1], E)
			_, ok := MoveIn(b, sel, E)
			require.False(t, ok)
		})
	}
}

func TestSumitoBlockedCases(t *testing.T) {
	t.Run("sandwiched enemy", func(t *testing.T) {
		b := place(t, []Location{{4, 2}, {4, 3}, {4, 5}}, []Location{{4, 4}})
		sel := mustSelect(t, b, Location{4, 2}, Location{4, 3}, E)
		_, ok := MoveIn(b, sel, E)
		require.False(t, ok)
	})
	t.Run("own marble ahead", func(t *testing.T) {
		b := place(t, []Location{{4, 2}, {4, 3}, {4, 4}, {4, 5}}, nil)
		sel := mustSelect(t, b, Location{4, 2}, Location{4, 4}, E)
		_, ok := MoveIn(b, sel, E)
		require.False(t, ok)
	})
	t.Run("bare edge", func(t *testing.T) {
		b := place(t, []Location{{4, 7}, {4, 8}}, nil)
		sel := mustSelect(t, b, Location{4, 7}, Location{4, 8}, E)
		_, ok := MoveIn(b, sel, E)
		require.False(t, ok)
	})
	t.Run("single marble at the edge", func(t *testing.T) {
		b := place(t, []Location{{4, 8}}, nil)
		sel := mustSelect(t, b, Location{4, 8}, Location{4, 8}, NoDirection)
		_, ok := MoveIn(b, sel, E)
		require.False(t, ok)
	})
}

func TestInlineUsesFacingEdge(t *testing.T) {
	// 选区方向为 E，向 W 推时从近端出发
	b := place(t, []Location{{4, 4}, {4, 5}, {4, 6}}, []Location{{4, 3}})
	sel := mustSelect(t, b, Location{4, 4}, Location{4, 6}, E)

	m, ok := MoveIn(b, sel, W)
	require.True(t, ok)
	require.Equal(t, Inline, m.Kind)
	require.Equal(t, []Location{{4, 3}}, m.Enemy)

	m, ok = MoveIn(b, sel, E)
	require.True(t, ok)
	require.Empty(t, m.Enemy)
}

func TestSingletonMovesEverywhereEmpty(t *testing.T) {
	b := place(t, []Location{{4, 4}}, nil)
	sel := mustSelect(t, b, Location{4, 4}, Location{4, 4}, NoDirection)
	moves := LegalMoves(b, sel)
	require.Len(t, moves, 6)
	for i, m := range moves {
		require.Equal(t, Directions[i], m.Direction)
		require.Equal(t, Inline, m.Kind)
		require.Empty(t, m.Enemy)
	}
}

func TestSidestep(t *testing.T) {
	black := []Location{{4, 3}, {4, 4}}

	t.Run("into empty cells", func(t *testing.T) {
		b := place(t, black, nil)
		sel := mustSelect(t, b, Location{4, 3}, Location{4, 4}, E)
		moves := LegalMoves(b, sel)

		m, ok := moveIn(moves, NE)
		require.True(t, ok)
		require.Equal(t, Sidestep, m.Kind)
		require.Empty(t, m.Enemy)

		// E/W in line, NW/NE/SE/SW sidesteps
		require.Len(t, moves, 6)
	})

	for _, blocker := range []Cell{Black, White} {
		t.Run("blocked by "+blocker.String(), func(t *testing.T) {
			b := place(t, black, nil)
			require.NoError(t, b.Set(Location{3, 4}, blocker))
			sel := mustSelect(t, b, Location{4, 3}, Location{4, 4}, E)
			_, ok := moveIn(LegalMoves(b, sel), NE)
			require.False(t, ok)
		})
	}

	t.Run("off the board", func(t *testing.T) {
		b := place(t, []Location{{0, 1}, {0, 2}}, nil)
		sel := mustSelect(t, b, Location{0, 1}, Location{0, 2}, E)
		moves := LegalMoves(b, sel)
		_, ok := moveIn(moves, NW)
		require.False(t, ok)
		_, ok = moveIn(moves, NE)
		require.False(t, ok)
		_, ok = moveIn(moves, SE)
		require.True(t, ok)
	})
}

func TestLegalMovesNeverPushEqualColumns(t *testing.T) {
	b := NewBoard()
	for _, player := range []Cell{Black, White} {
		for _, m := range GenerateMoves(b, player) {
			require.Equal(t, player, m.Selection.Color)
			require.Less(t, len(m.Enemy), m.Selection.Len())
			if m.Kind == Sidestep {
				require.Empty(t, m.Enemy)
			}
		}
	}
}

func TestGenerateMovesHasNoDuplicates(t *testing.T) {
	b := NewBoard()
	moves := GenerateMoves(b, Black)
	require.NotEmpty(t, moves)

	type key struct {
		cells [MaxSelection]Location
		dir   Direction
	}
	seen := map[key]bool{}
	for _, m := range moves {
		// 同一直线从哪端建都算同一组
		k := key{dir: m.Direction}
		copy(k.cells[:], sortedLocations(m.Selection.Column))
		require.False(t, seen[k], "duplicate move %v", m)
		seen[k] = true
	}
}

func TestCanMove(t *testing.T) {
	b := NewBoard()
	require.True(t, CanMove(b, Black, Location{6, 2}))
	require.False(t, CanMove(b, White, Location{6, 2}))
	require.False(t, CanMove(b, Black, Location{4, 4}))

	// 三面被白子围住，单子无路可走
	b = place(t, []Location{{0, 0}}, []Location{{0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, b.Set(Location{0, 2}, White))
	require.False(t, CanMove(b, Black, Location{0, 0}))
}

// 能当锚点的子一定出现在某个生成的走法里；每个生成走法的首子都能当锚点
func TestCanMoveAgreesWithGenerateMoves(t *testing.T) {
	boards := map[string]*Board{
		"start": NewBoard(),
		"blocked": place(t,
			[]Location{{0, 0}, {4, 4}},
			[]Location{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		),
	}
	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			for _, player := range []Cell{Black, White} {
				moves := GenerateMoves(b, player)
				inSomeMove := make(map[Location]bool)
				for _, m := range moves {
					require.True(t, CanMove(b, player, m.Selection.Column[0]), "%v", m)
					for _, loc := range m.Selection.Column {
						inSomeMove[loc] = true
					}
				}
				for _, loc := range b.AllLocations() {
					if CanMove(b, player, loc) {
						require.True(t, inSomeMove[loc], "%s at %v", player, loc)
					}
				}
			}
		})
	}

	b := boards["blocked"]
	require.False(t, CanMove(b, Black, Location{0, 0}))
	require.True(t, CanMove(b, Black, Location{4, 4}))
}

func sortedLocations(locs []Location) []Location {
	out := slices.Clone(locs)
	slices.SortFunc(out, func(a, b Location) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}
