package main

import (
	"errors"
	"fmt"
	"math/rand"
)

//==============================================
// BOARD STUFFS
//==============================================

var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrOutOfBounds   = errors.New("position out of bounds")
)

type GameState int

const (
	GameStateNotStarted GameState = iota
	GameStateInProgress
	GameStateWon
	GameStateLost
)

var gameStateStrs = [...]string{
	"NotStarted",
	"InProgress",
	"Won",
	"Lost",
}

func (gs GameState) String() string {
	return gameStateStrs[gs]
}

// Won and Lost are terminal, the board never mutates after reaching them.
func (gs GameState) IsTerminal() bool {
	return gs == GameStateWon || gs == GameStateLost
}

type RevealOutcome int

const (
	RevealNone RevealOutcome = iota // nothing changed
	RevealOpened
	RevealWon
	RevealLost
)

// CellView is what the drawing code gets to see.
// Mine is only true once the cell is actually visible as a mine.
// Hit marks the mine the player stepped on.
type CellView struct {
	Revealed bool
	Flagged  bool
	Mine     bool
	Hit      bool
	Count    int
}

type Board struct {
	Width  int
	Height int

	MineCount int

	Mines    [][]bool
	Revealed [][]bool
	Flags    [][]bool
	Counts   [][]int

	state GameState

	hitX, hitY int

	rng *rand.Rand
}

// Mines are not placed here. They are placed on the first Reveal call,
// excluding the revealed cell, so the first click never lands on a mine.
func NewBoard(width int, height int, mineCount int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board is %d x %d", ErrInvalidConfig, width, height)
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, fmt.Errorf(
			"%w: %d mines on a %d x %d board", ErrInvalidConfig, mineCount, width, height)
	}

	board := new(Board)

	board.Width = width
	board.Height = height
	board.MineCount = mineCount

	board.Mines = New2DArray[bool](width, height)
	board.Revealed = New2DArray[bool](width, height)
	board.Flags = New2DArray[bool](width, height)
	board.Counts = New2DArray[int](width, height)

	board.hitX = -1
	board.hitY = -1

	return board, nil
}

// Seed makes mine placement deterministic.
// Without it placement comes from the process wide source.
func (board *Board) Seed(seed int64) {
	board.rng = rand.New(rand.NewSource(seed))
}

func (board *Board) State() GameState {
	return board.state
}

func (board *Board) IsPosInBoard(posX int, posY int) bool {
	return posX >= 0 && posX < board.Width && posY >= 0 && posY < board.Height
}

func (board *Board) PlaceMines(exceptX, exceptY int) {
	maxCount := board.Width*board.Height - 1
	count := min(board.MineCount, maxCount)

	minePlaces := make([][2]int, 0, maxCount)
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if !(x == exceptX && y == exceptY) {
			minePlaces = append(minePlaces, [2]int{x, y})
		}
	}

	shuffle := rand.Shuffle
	if board.rng != nil {
		shuffle = board.rng.Shuffle
	}
	shuffle(len(minePlaces), func(i, j int) {
		minePlaces[i], minePlaces[j] = minePlaces[j], minePlaces[i]
	})

	for i := 0; i < count; i++ {
		board.Mines[minePlaces[i][0]][minePlaces[i][1]] = true
	}

	board.updateCounts()
}

// counts are computed once after mine placement and never change afterwards
func (board *Board) updateCounts() {
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		board.Counts[x][y] = board.NeighborMineCount(x, y)
	}
}

func (board *Board) Reveal(posX int, posY int) (RevealOutcome, error) {
	if !board.IsPosInBoard(posX, posY) {
		return RevealNone, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, posX, posY)
	}

	if board.state.IsTerminal() {
		return RevealNone, nil
	}
	if board.Revealed[posX][posY] || board.Flags[posX][posY] {
		return RevealNone, nil
	}

	if board.state == GameStateNotStarted {
		board.PlaceMines(posX, posY)
		board.state = GameStateInProgress
	}

	if board.Mines[posX][posY] {
		board.Revealed[posX][posY] = true
		board.hitX = posX
		board.hitY = posY
		board.revealAllMines()
		board.state = GameStateLost
		return RevealLost, nil
	}

	board.SpreadSafeArea(posX, posY)

	if board.CheckWin() {
		board.state = GameStateWon
		return RevealWon, nil
	}

	return RevealOpened, nil
}

// SpreadSafeArea reveals posX, posY and, if it has no neighboring mines,
// keeps expanding through the 8 neighbor graph until it hits numbered cells.
// Revealed doubles as the visited marker so every cell is visited at most once.
func (board *Board) SpreadSafeArea(posX int, posY int) {
	var frontier Queue[[2]int]
	frontier.Enqueue([2]int{posX, posY})

	for !frontier.IsEmpty() {
		pos := frontier.Dequeue()
		x, y := pos[0], pos[1]

		if board.Revealed[x][y] || board.Mines[x][y] {
			continue
		}

		board.Revealed[x][y] = true
		// remove flags where it's revealed
		board.Flags[x][y] = false

		if board.Counts[x][y] > 0 {
			continue
		}

		iter := NewBoardIterator(x-1, y-1, x+1, y+1)
		for iter.HasNext() {
			nx, ny := iter.GetNext()
			if board.IsPosInBoard(nx, ny) && !board.Revealed[nx][ny] {
				frontier.Enqueue([2]int{nx, ny})
			}
		}
	}
}

func (board *Board) ToggleFlag(posX int, posY int) error {
	if !board.IsPosInBoard(posX, posY) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, posX, posY)
	}

	if board.state.IsTerminal() || board.Revealed[posX][posY] {
		return nil
	}

	board.Flags[posX][posY] = !board.Flags[posX][posY]
	return nil
}

func (board *Board) CellAt(posX int, posY int) (CellView, error) {
	if !board.IsPosInBoard(posX, posY) {
		return CellView{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, posX, posY)
	}

	return CellView{
		Revealed: board.Revealed[posX][posY],
		Flagged:  board.Flags[posX][posY],
		Mine:     board.Mines[posX][posY] && board.Revealed[posX][posY],
		Hit:      posX == board.hitX && posY == board.hitY,
		Count:    board.Counts[posX][posY],
	}, nil
}

func (board *Board) NeighborMineCount(posX int, posY int) int {
	var mineCount int = 0
	for x := max(posX-1, 0); x < min(posX+2, board.Width); x++ {
		for y := max(posY-1, 0); y < min(posY+2, board.Height); y++ {
			if !(x == posX && y == posY) && board.Mines[x][y] {
				mineCount += 1
			}
		}
	}

	return mineCount
}

func (board *Board) NeighborFlagCount(posX int, posY int) int {
	var flagCount int = 0
	for x := max(posX-1, 0); x < min(posX+2, board.Width); x++ {
		for y := max(posY-1, 0); y < min(posY+2, board.Height); y++ {
			if board.Flags[x][y] {
				flagCount += 1
			}
		}
	}

	return flagCount
}

func (board *Board) FlagCount() int {
	var flagCount int = 0
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Flags[x][y] {
			flagCount += 1
		}
	}

	return flagCount
}

// may go negative when the player over flags, that is on purpose
func (board *Board) RemainingMines() int {
	return board.MineCount - board.FlagCount()
}

func (board *Board) CheckWin() bool {
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if !board.Mines[x][y] && !board.Revealed[x][y] {
			return false
		}
	}

	return true
}

func (board *Board) revealAllMines() {
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Mines[x][y] {
			board.Revealed[x][y] = true
		}
	}
}

func (board *Board) Copy() *Board {
	copied, _ := NewBoard(board.Width, board.Height, board.MineCount)

	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()

		copied.Mines[x][y] = board.Mines[x][y]
		copied.Revealed[x][y] = board.Revealed[x][y]
		copied.Flags[x][y] = board.Flags[x][y]
		copied.Counts[x][y] = board.Counts[x][y]
	}

	copied.state = board.state
	copied.hitX = board.hitX
	copied.hitY = board.hitY

	return copied
}

//==============================================
// board iterator
//==============================================

type BoardIterator struct {
	MinX int
	MinY int
	MaxX int
	MaxY int

	CurrentX int
	CurrentY int
}

// inclusive
func NewBoardIterator(x1 int, y1 int, x2 int, y2 int) BoardIterator {
	iterator := BoardIterator{
		MinX: min(x1, x2),
		MinY: min(y1, y2),

		MaxX: max(x1, x2),
		MaxY: max(y1, y2),
	}

	iterator.CurrentX = iterator.MinX
	iterator.CurrentY = iterator.MinY

	return iterator
}

func (bi *BoardIterator) HasNext() bool {
	return bi.CurrentY <= bi.MaxY
}

func (bi *BoardIterator) GetNext() (int, int) {
	x := bi.CurrentX
	y := bi.CurrentY

	bi.CurrentX++
	if bi.CurrentX > bi.MaxX {
		bi.CurrentX = bi.MinX
		bi.CurrentY++
	}

	return x, y
}

func (bi *BoardIterator) Reset() {
	bi.CurrentX = bi.MinX
	bi.CurrentY = bi.MinY
}
