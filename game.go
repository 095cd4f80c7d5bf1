package main

import (
	"image/color"
	"math/rand"
	"strconv"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

//==============================================
// GAME
//==============================================
// Game owns one Board and turns pointer input
// into Reveal and ToggleFlag calls.
// Drawing reads CellViews, nothing else.

type Game struct {
	Board *Board

	BoardTileWidth  int
	BoardTileHeight int
	MineCount       int

	// where the board is drawn, set by GameUI every frame
	Rect FRectangle

	// seed of the current board, shareable via clipboard
	CurrentSeed int64

	playStarted time.Duration
	playEnded   time.Duration
}

func NewGame(boardTileWidth, boardTileHeight, mineCount int) *Game {
	g := new(Game)

	g.BoardTileWidth = boardTileWidth
	g.BoardTileHeight = boardTileHeight
	g.MineCount = mineCount

	g.ResetBoard()

	return g
}

func (g *Game) SetResetParameter(boardTileWidth, boardTileHeight, mineCount int) {
	g.BoardTileWidth = boardTileWidth
	g.BoardTileHeight = boardTileHeight
	g.MineCount = mineCount
}

// ResetBoard replaces the board with a fresh one using a new seed.
func (g *Game) ResetBoard() {
	g.ResetBoardWithSeed(rand.Int63())
}

func (g *Game) ResetBoardWithSeed(seed int64) {
	board, err := NewBoard(g.BoardTileWidth, g.BoardTileHeight, g.MineCount)
	if err != nil {
		// reset parameters come from the difficulty presets
		ErrorLogger.Fatalf("failed to create board : %v", err)
	}
	board.Seed(seed)

	g.Board = board
	g.CurrentSeed = seed
	g.playStarted = 0
	g.playEnded = 0
}

func (g *Game) Update() {
	cursor := CursorFPt()

	boardX, boardY, onBoard := BoardPosAtPoint(
		g.Rect, g.Board.Width, g.Board.Height, cursor)

	if onBoard && !g.Board.State().IsTerminal() {
		if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
			prevState := g.Board.State()

			outcome, err := g.Board.Reveal(boardX, boardY)
			if err != nil {
				ErrorLogger.Printf("reveal failed : %v", err)
			}

			if prevState == GameStateNotStarted && g.Board.State() == GameStateInProgress {
				g.playStarted = GlobalTimerNow()
			}
			if outcome == RevealWon || outcome == RevealLost {
				g.playEnded = GlobalTimerNow()
			}
		}

		if IsMouseButtonJustPressed(eb.MouseButtonRight) {
			if err := g.Board.ToggleFlag(boardX, boardY); err != nil {
				ErrorLogger.Printf("toggle flag failed : %v", err)
			}
		}
	}

	if IsKeyJustPressed(ResetBoardKey) {
		g.ResetBoard()
	}

	// share boards by passing seeds around
	if IsKeyJustPressed(CopySeedKey) {
		ClipboardWriteText(strconv.FormatInt(g.CurrentSeed, 10))
		InfoLogger.Printf("copied seed %d", g.CurrentSeed)
	}
	if IsKeyJustPressed(PasteSeedKey) {
		if seed, err := strconv.ParseInt(ClipboardReadText(), 10, 64); err == nil {
			g.ResetBoardWithSeed(seed)
			InfoLogger.Printf("starting board with seed %d", seed)
		}
	}

	DebugPrint("Seed", strconv.FormatInt(g.CurrentSeed, 10))
	DebugPrint("State", g.Board.State().String())
}

// PlayTime is how long the current board has been played.
// Frozen once the game is over, zero before the first reveal.
func (g *Game) PlayTime() time.Duration {
	if g.playStarted == 0 {
		return 0
	}
	if g.playEnded != 0 {
		return g.playEnded - g.playStarted
	}
	return TimeSinceNow(g.playStarted)
}

func (g *Game) RemainingMines() int {
	return g.Board.RemainingMines()
}

func (g *Game) Draw(dst *eb.Image) {
	cursor := CursorFPt()
	hoverX, hoverY, hovering := BoardPosAtPoint(
		g.Rect, g.Board.Width, g.Board.Height, cursor)

	if g.Board.State().IsTerminal() {
		hovering = false
	}

	iter := NewBoardIterator(0, 0, g.Board.Width-1, g.Board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()

		cell, _ := g.Board.CellAt(x, y)
		tileRect := TileRect(g.Rect, g.Board.Width, g.Board.Height, x, y)

		fill := tileFillColor(cell, x, y)
		if hovering && x == hoverX && y == hoverY && !cell.Revealed {
			fill = LerpColorRGB(fill, ColorTable[ColorTileRevealed1], 0.25)
		}

		DrawFilledRect(dst, tileRect, fill, false)
		StrokeRect(dst, tileRect, 1, ColorTable[ColorTileStroke], false)

		switch {
		case cell.Mine:
			drawMine(dst, tileRect)
		case cell.Flagged:
			drawFlag(dst, tileRect)
		case cell.Revealed && cell.Count > 0:
			DrawTextCentered(
				dst,
				strconv.Itoa(cell.Count),
				BoldFace(tileRect.Dy()*0.55),
				tileRect.Center(),
				NumberColors[cell.Count-1],
			)
		}
	}
}

func tileFillColor(cell CellView, x, y int) color.NRGBA {
	checker := (x+y)%2 == 0

	if cell.Hit {
		return ColorTable[ColorMineBg]
	}
	if cell.Revealed {
		if checker {
			return ColorTable[ColorTileRevealed1]
		}
		return ColorTable[ColorTileRevealed2]
	}
	if checker {
		return ColorTable[ColorTileNormal1]
	}
	return ColorTable[ColorTileNormal2]
}

func drawMine(dst *eb.Image, tileRect FRectangle) {
	center := tileRect.Center()
	radius := min(tileRect.Dx(), tileRect.Dy()) * 0.25

	DrawFilledCircle(dst, center.X, center.Y, radius, ColorTable[ColorMine], true)

	// spikes
	for i := 0; i < 4; i++ {
		var dx, dy float64
		switch i {
		case 0:
			dx, dy = 1, 0
		case 1:
			dx, dy = 0, 1
		case 2:
			dx, dy = 1, 1
		case 3:
			dx, dy = 1, -1
		}
		length := radius * 1.45
		if i >= 2 {
			length = radius * 1.2
		}
		StrokeLine(dst,
			center.X-dx*length, center.Y-dy*length,
			center.X+dx*length, center.Y+dy*length,
			max(radius*0.18, 1),
			ColorTable[ColorMine],
			true,
		)
	}
}

func drawFlag(dst *eb.Image, tileRect FRectangle) {
	w := tileRect.Dx()
	h := tileRect.Dy()

	poleX := tileRect.Min.X + w*0.38
	poleTop := tileRect.Min.Y + h*0.2
	poleBottom := tileRect.Min.Y + h*0.8

	StrokeLine(dst,
		poleX, poleTop, poleX, poleBottom,
		max(w*0.06, 1),
		ColorTable[ColorTopUIText],
		true,
	)

	var path ebv.Path
	path.MoveTo(f32(poleX), f32(poleTop))
	path.LineTo(f32(poleX+w*0.34), f32(poleTop+h*0.15))
	path.LineTo(f32(poleX), f32(poleTop+h*0.3))
	path.Close()

	DrawFilledPath(dst, path, ColorTable[ColorFlag], true)
}

//==============================================
// board geometry
//==============================================

// TileRect is the screen rectangle of the tile at x, y.
func TileRect(boardRect FRectangle, boardTileWidth, boardTileHeight, x, y int) FRectangle {
	tileW := boardRect.Dx() / f64(boardTileWidth)
	tileH := boardRect.Dy() / f64(boardTileHeight)

	return FRect(
		boardRect.Min.X+f64(x)*tileW,
		boardRect.Min.Y+f64(y)*tileH,
		boardRect.Min.X+f64(x+1)*tileW,
		boardRect.Min.Y+f64(y+1)*tileH,
	)
}

// BoardPosAtPoint maps a screen point to a tile position.
// Reports false when the point is outside the board rect.
func BoardPosAtPoint(
	boardRect FRectangle,
	boardTileWidth, boardTileHeight int,
	pos FPoint,
) (int, int, bool) {
	if boardRect.Dx() <= 0 || boardRect.Dy() <= 0 {
		return 0, 0, false
	}
	if !pos.In(boardRect) {
		return 0, 0, false
	}

	x := int((pos.X - boardRect.Min.X) / boardRect.Dx() * f64(boardTileWidth))
	y := int((pos.Y - boardRect.Min.Y) / boardRect.Dy() * f64(boardTileHeight))

	// pos at the exact max edge still counts as the last tile
	x = Clamp(x, 0, boardTileWidth-1)
	y = Clamp(y, 0, boardTileHeight-1)

	return x, y, true
}
