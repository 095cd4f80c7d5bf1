package main

import (
	"errors"
	"testing"
)

// board with a fixed mine layout, mines already placed
func testBoard(t *testing.T, width, height int, mines [][2]int) *Board {
	t.Helper()

	board, err := NewBoard(width, height, len(mines))
	if err != nil {
		t.Fatalf("NewBoard(%d, %d, %d) failed: %v", width, height, len(mines), err)
	}

	for _, m := range mines {
		board.Mines[m[0]][m[1]] = true
	}
	board.updateCounts()
	board.state = GameStateInProgress

	return board
}

func countMines(board *Board) int {
	count := 0
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Mines[x][y] {
			count++
		}
	}
	return count
}

func boardsEqual(a, b *Board) bool {
	if a.Width != b.Width || a.Height != b.Height || a.state != b.state {
		return false
	}
	iter := NewBoardIterator(0, 0, a.Width-1, a.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if a.Mines[x][y] != b.Mines[x][y] ||
			a.Revealed[x][y] != b.Revealed[x][y] ||
			a.Flags[x][y] != b.Flags[x][y] {
			return false
		}
	}
	return true
}

func TestNewBoardInvalidConfig(t *testing.T) {
	testCases := []struct {
		width, height, mineCount int
	}{
		{5, 5, 25}, // mine count equals cell count
		{5, 5, 30},
		{0, 5, 1},
		{5, 0, 1},
		{-3, 5, 1},
		{5, 5, -1},
		{1, 1, 1},
	}

	for _, tc := range testCases {
		_, err := NewBoard(tc.width, tc.height, tc.mineCount)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewBoard(%d, %d, %d): expected ErrInvalidConfig, got %v",
				tc.width, tc.height, tc.mineCount, err)
		}
	}

	if _, err := NewBoard(5, 5, 24); err != nil {
		t.Errorf("NewBoard(5, 5, 24) should succeed, got %v", err)
	}
}

func TestOutOfBounds(t *testing.T) {
	board, _ := NewBoard(4, 4, 3)

	positions := [][2]int{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100},
	}

	for _, pos := range positions {
		if _, err := board.Reveal(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Reveal(%d, %d): expected ErrOutOfBounds, got %v", pos[0], pos[1], err)
		}
		if err := board.ToggleFlag(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ToggleFlag(%d, %d): expected ErrOutOfBounds, got %v", pos[0], pos[1], err)
		}
		if _, err := board.CellAt(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%d, %d): expected ErrOutOfBounds, got %v", pos[0], pos[1], err)
		}
	}
}

func TestMineCountAfterPlacement(t *testing.T) {
	testCases := []struct {
		width, height, mineCount int
	}{
		{9, 9, 10},
		{16, 16, 40},
		{30, 16, 99},
		{2, 2, 3},
	}

	for _, tc := range testCases {
		board, err := NewBoard(tc.width, tc.height, tc.mineCount)
		if err != nil {
			t.Fatalf("NewBoard(%d, %d, %d) failed: %v", tc.width, tc.height, tc.mineCount, err)
		}
		board.Seed(1)

		if board.State() != GameStateNotStarted {
			t.Errorf("fresh board should be NotStarted, got %v", board.State())
		}
		if got := countMines(board); got != 0 {
			t.Errorf("mines should not be placed before the first reveal, found %d", got)
		}

		board.Reveal(0, 0)

		if got := countMines(board); got != tc.mineCount {
			t.Errorf("%d x %d board: expected %d mines, got %d",
				tc.width, tc.height, tc.mineCount, got)
		}
	}
}

func TestFirstRevealNeverMine(t *testing.T) {
	// every cell of a nearly full board, many seeds
	for seed := int64(0); seed < 30; seed++ {
		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				board, _ := NewBoard(3, 3, 8)
				board.Seed(seed)

				outcome, err := board.Reveal(x, y)
				if err != nil {
					t.Fatalf("Reveal(%d, %d) failed: %v", x, y, err)
				}
				if board.Mines[x][y] {
					t.Fatalf("seed %d: first reveal at (%d, %d) landed on a mine", seed, x, y)
				}
				// 8 mines on 9 cells, the only safe cell is the revealed one
				if outcome != RevealWon {
					t.Fatalf("seed %d: expected RevealWon, got %v", seed, outcome)
				}
			}
		}
	}

	for seed := int64(0); seed < 30; seed++ {
		board, _ := NewBoard(9, 9, 10)
		board.Seed(seed)

		outcome, _ := board.Reveal(4, 4)
		if outcome == RevealLost || board.Mines[4][4] {
			t.Fatalf("seed %d: first reveal landed on a mine", seed)
		}
	}
}

func TestNeighborMineCounts(t *testing.T) {
	board, _ := NewBoard(9, 9, 10)
	board.Seed(7)
	board.Reveal(4, 4)

	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			want := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if board.IsPosInBoard(nx, ny) && board.Mines[nx][ny] {
						want++
					}
				}
			}

			if board.Counts[x][y] != want {
				t.Errorf("cell (%d, %d): count is %d, expected %d", x, y, board.Counts[x][y], want)
			}
		}
	}
}

func TestFloodFillRevealsZeroComponent(t *testing.T) {
	// 3x3 board, 1 mine at (0,0), revealing (2,2) expands
	// over every non mine cell and wins
	board := testBoard(t, 3, 3, [][2]int{{0, 0}})

	outcome, err := board.Reveal(2, 2)
	if err != nil {
		t.Fatalf("Reveal(2, 2) failed: %v", err)
	}
	if outcome != RevealWon {
		t.Fatalf("expected RevealWon, got %v", outcome)
	}
	if board.State() != GameStateWon {
		t.Fatalf("expected Won state, got %v", board.State())
	}

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			isMine := x == 0 && y == 0
			if isMine && board.Revealed[x][y] {
				t.Errorf("flood fill revealed the mine at (0, 0)")
			}
			if !isMine && !board.Revealed[x][y] {
				t.Errorf("flood fill missed cell (%d, %d)", x, y)
			}
		}
	}
}

func TestFloodFillStopsAtNumbers(t *testing.T) {
	// a wall of mines at x = 2 splits the board,
	// flooding from the left side must not leak to the right
	board := testBoard(t, 5, 5, [][2]int{
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
	})

	outcome, err := board.Reveal(0, 2)
	if err != nil {
		t.Fatalf("Reveal(0, 2) failed: %v", err)
	}
	if outcome != RevealOpened {
		t.Fatalf("expected RevealOpened, got %v", outcome)
	}
	if board.State() != GameStateInProgress {
		t.Fatalf("expected InProgress, got %v", board.State())
	}

	for y := 0; y < 5; y++ {
		// zero column and the numbered border column get revealed
		if !board.Revealed[0][y] || !board.Revealed[1][y] {
			t.Errorf("left side cell in column 0 or 1 at y=%d not revealed", y)
		}
		// the wall and everything behind it stays covered
		for x := 2; x < 5; x++ {
			if board.Revealed[x][y] {
				t.Errorf("cell (%d, %d) should not be revealed", x, y)
			}
		}
	}
}

func TestRevealMineLoses(t *testing.T) {
	// same 3x3 board, stepping on (0,0) directly loses
	board := testBoard(t, 3, 3, [][2]int{{0, 0}})

	outcome, err := board.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal(0, 0) failed: %v", err)
	}
	if outcome != RevealLost {
		t.Fatalf("expected RevealLost, got %v", outcome)
	}
	if board.State() != GameStateLost {
		t.Fatalf("expected Lost state, got %v", board.State())
	}

	cell, _ := board.CellAt(0, 0)
	if !cell.Revealed || !cell.Mine || !cell.Hit {
		t.Errorf("the stepped on mine should be visible and marked as hit: %+v", cell)
	}
}

func TestAllMinesVisibleAfterLoss(t *testing.T) {
	board := testBoard(t, 4, 4, [][2]int{{0, 0}, {3, 3}, {1, 2}})

	board.Reveal(0, 0)

	for _, m := range [][2]int{{0, 0}, {3, 3}, {1, 2}} {
		cell, _ := board.CellAt(m[0], m[1])
		if !cell.Mine {
			t.Errorf("mine at (%d, %d) should be visible after loss", m[0], m[1])
		}
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	board := testBoard(t, 4, 4, [][2]int{{0, 0}})
	board.Reveal(0, 0) // lost

	snapshot := board.Copy()

	if outcome, err := board.Reveal(2, 2); outcome != RevealNone || err != nil {
		t.Errorf("Reveal after loss: outcome %v, err %v", outcome, err)
	}
	if err := board.ToggleFlag(3, 3); err != nil {
		t.Errorf("ToggleFlag after loss: %v", err)
	}

	if !boardsEqual(board, snapshot) {
		t.Errorf("board mutated after reaching a terminal state")
	}
}

func TestWinByRevealingAllNonMines(t *testing.T) {
	board, _ := NewBoard(9, 9, 10)
	board.Seed(42)
	board.Reveal(4, 4)

	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if !board.Mines[x][y] {
			board.Reveal(x, y)
		}
	}

	if board.State() != GameStateWon {
		t.Fatalf("expected Won after revealing every non mine cell, got %v", board.State())
	}
}

func TestToggleFlag(t *testing.T) {
	board := testBoard(t, 3, 3, [][2]int{{0, 0}})

	if err := board.ToggleFlag(1, 1); err != nil {
		t.Fatalf("ToggleFlag failed: %v", err)
	}
	if !board.Flags[1][1] {
		t.Errorf("cell (1, 1) should be flagged")
	}

	// flagged cells can't be revealed
	if outcome, _ := board.Reveal(1, 1); outcome != RevealNone {
		t.Errorf("revealing a flagged cell should be a no-op, got %v", outcome)
	}
	if board.Revealed[1][1] {
		t.Errorf("flagged cell (1, 1) got revealed")
	}

	board.ToggleFlag(1, 1)
	if board.Flags[1][1] {
		t.Errorf("second toggle should unflag (1, 1)")
	}

	// flagging a revealed cell is a no-op
	board.Reveal(1, 1)
	board.ToggleFlag(1, 1)
	if board.Flags[1][1] {
		t.Errorf("revealed cell (1, 1) should not be flaggable")
	}
}

func TestRemainingMines(t *testing.T) {
	board := testBoard(t, 4, 4, [][2]int{{0, 0}, {1, 0}, {2, 0}})

	if got := board.RemainingMines(); got != 3 {
		t.Errorf("expected 3 remaining, got %d", got)
	}

	board.ToggleFlag(0, 0)
	board.ToggleFlag(3, 3)
	if got := board.RemainingMines(); got != 1 {
		t.Errorf("expected 1 remaining, got %d", got)
	}

	// over flagging goes negative, no clamping
	board.ToggleFlag(0, 1)
	board.ToggleFlag(1, 1)
	board.ToggleFlag(2, 1)
	if got := board.RemainingMines(); got != -2 {
		t.Errorf("expected -2 remaining, got %d", got)
	}
}

func TestSeedDeterminism(t *testing.T) {
	layout := func(seed int64) [][]bool {
		board, _ := NewBoard(9, 9, 10)
		board.Seed(seed)
		board.Reveal(4, 4)
		return board.Mines
	}

	a := layout(123)
	b := layout(123)

	for x := range a {
		for y := range a[x] {
			if a[x][y] != b[x][y] {
				t.Fatalf("same seed produced different layouts at (%d, %d)", x, y)
			}
		}
	}
}

func TestBoardIterator(t *testing.T) {
	visited := New2DArray[int](4, 3)

	iter := NewBoardIterator(0, 0, 3, 2)
	for iter.HasNext() {
		x, y := iter.GetNext()
		visited[x][y]++
	}

	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if visited[x][y] != 1 {
				t.Errorf("cell (%d, %d) visited %d times", x, y, visited[x][y])
			}
		}
	}

	iter.Reset()
	if !iter.HasNext() {
		t.Errorf("iterator should have cells again after Reset")
	}
}
