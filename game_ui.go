package main

import (
	"fmt"
	"image"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultySize
)

var DifficultyStrs = [DifficultySize]string{
	"Easy",
	"Medium",
	"Hard",
}

// the classic presets
var (
	DifficultyMineCounts = [DifficultySize]int{10, 40, 99}

	DifficultyBoardSizes = [DifficultySize]image.Point{
		image.Pt(9, 9), image.Pt(16, 16), image.Pt(30, 16),
	}
)

var DifficultyKeys = [DifficultySize]eb.Key{
	DifficultyEasyKey,
	DifficultyMediumKey,
	DifficultyHardKey,
}

type GameUI struct {
	Game *Game

	Difficulty Difficulty

	TopUIHeight    float64 // constant, relative to ScreenHeight
	BoardSizeRatio float64 // constant
	BoardMargin    float64 // constant

	DifficultyButtons [DifficultySize]*TextButton
	ResetButton       *TextButton
}

func NewGameUI(difficulty Difficulty, seed int64) *GameUI {
	gu := new(GameUI)

	// set constants
	gu.TopUIHeight = 0.09
	gu.BoardSizeRatio = 0.95
	gu.BoardMargin = 10

	gu.Difficulty = difficulty

	boardSize := DifficultyBoardSizes[difficulty]
	gu.Game = NewGame(boardSize.X, boardSize.Y, DifficultyMineCounts[difficulty])
	if seed != 0 {
		gu.Game.ResetBoardWithSeed(seed)
	}

	for d := DifficultyEasy; d < DifficultySize; d++ {
		gu.DifficultyButtons[d] = &TextButton{
			Text:    DifficultyStrs[d],
			OnClick: func() { gu.SetDifficulty(d) },
		}
	}
	gu.ResetButton = &TextButton{
		Text:    "New",
		OnClick: func() { gu.Game.ResetBoard() },
	}

	return gu
}

func (gu *GameUI) SetDifficulty(difficulty Difficulty) {
	gu.Difficulty = difficulty

	boardSize := DifficultyBoardSizes[difficulty]
	gu.Game.SetResetParameter(boardSize.X, boardSize.Y, DifficultyMineCounts[difficulty])
	gu.Game.ResetBoard()
}

func (gu *GameUI) Update() {
	gu.Game.Rect = gu.BoardRect()

	for d := DifficultyEasy; d < DifficultySize; d++ {
		if IsKeyJustPressed(DifficultyKeys[d]) {
			gu.SetDifficulty(d)
		}
	}

	buttonRects := gu.buttonRects()
	for d := DifficultyEasy; d < DifficultySize; d++ {
		gu.DifficultyButtons[d].Rect = buttonRects[d]
		gu.DifficultyButtons[d].Selected = d == gu.Difficulty
		gu.DifficultyButtons[d].Update()
	}
	gu.ResetButton.Rect = buttonRects[DifficultySize]
	gu.ResetButton.Update()

	gu.Game.Update()
}

func (gu *GameUI) Draw(dst *eb.Image) {
	gu.Game.Draw(dst)
	gu.drawTopUI(dst)

	if gu.Game.Board.State().IsTerminal() {
		gu.drawBanner(dst)
	}
}

func (gu *GameUI) drawTopUI(dst *eb.Image) {
	topRect := gu.TopUIRect()

	DrawFilledRect(dst, topRect, ColorTable[ColorTopUIBg], false)

	for d := DifficultyEasy; d < DifficultySize; d++ {
		gu.DifficultyButtons[d].Draw(dst)
	}
	gu.ResetButton.Draw(dst)

	face := RegularFace(topRect.Dy() * 0.42)

	mineStr := fmt.Sprintf("Mines: %d", gu.Game.RemainingMines())
	DrawTextCentered(
		dst, mineStr, face,
		FPt(topRect.Max.X-topRect.Dy()*4.2, topRect.Center().Y),
		ColorTable[ColorTopUIText],
	)

	playTime := gu.Game.PlayTime().Round(time.Second)
	timeStr := fmt.Sprintf("%02d:%02d",
		int(playTime.Minutes()), int(playTime.Seconds())%60)
	DrawTextCentered(
		dst, timeStr, face,
		FPt(topRect.Max.X-topRect.Dy()*1.5, topRect.Center().Y),
		ColorTable[ColorTopUIText],
	)
}

func (gu *GameUI) drawBanner(dst *eb.Image) {
	boardRect := gu.Game.Rect

	var bannerStr string
	var bannerColor = ColorTable[ColorBannerLost]

	switch gu.Game.Board.State() {
	case GameStateWon:
		bannerStr = "You won!"
		bannerColor = ColorTable[ColorBannerWon]
	case GameStateLost:
		bannerStr = "Boom!"
	}

	bannerRect := FRect(
		boardRect.Min.X,
		boardRect.Center().Y-boardRect.Dy()*0.12,
		boardRect.Max.X,
		boardRect.Center().Y+boardRect.Dy()*0.12,
	)

	DrawFilledRect(dst, bannerRect, ColorFade(ColorTable[ColorBg], 0.75), false)

	center := bannerRect.Center()
	DrawTextCentered(
		dst, bannerStr,
		BoldFace(bannerRect.Dy()*0.45),
		FPt(center.X, center.Y-bannerRect.Dy()*0.12),
		bannerColor,
	)
	DrawTextCentered(
		dst, "press R to play again",
		RegularFace(bannerRect.Dy()*0.22),
		FPt(center.X, center.Y+bannerRect.Dy()*0.28),
		ColorTable[ColorTopUIText],
	)
}

func (gu *GameUI) TopUIRect() FRectangle {
	return FRect(0, 0, ScreenWidth, ScreenHeight*gu.TopUIHeight)
}

// BoardRect centers the board below the top bar keeping tiles square.
func (gu *GameUI) BoardRect() FRectangle {
	boardSize := DifficultyBoardSizes[gu.Difficulty]

	avail := FRect(
		0, ScreenHeight*gu.TopUIHeight,
		ScreenWidth, ScreenHeight,
	).Inset(gu.BoardMargin)

	tileSize := min(
		avail.Dx()/f64(boardSize.X),
		avail.Dy()/f64(boardSize.Y),
	) * gu.BoardSizeRatio

	boardW := tileSize * f64(boardSize.X)
	boardH := tileSize * f64(boardSize.Y)

	center := avail.Center()

	return FRect(
		center.X-boardW*0.5, center.Y-boardH*0.5,
		center.X+boardW*0.5, center.Y+boardH*0.5,
	)
}

func (gu *GameUI) buttonRects() [DifficultySize + 1]FRectangle {
	topRect := gu.TopUIRect()

	var rects [DifficultySize + 1]FRectangle

	buttonH := topRect.Dy() * 0.7
	buttonW := buttonH * 2.4
	gap := buttonH * 0.25

	x := topRect.Min.X + gap
	y := topRect.Center().Y - buttonH*0.5

	for i := range rects {
		rects[i] = FRect(x, y, x+buttonW, y+buttonH)
		x += buttonW + gap
	}

	return rects
}

//==============================================
// text button
//==============================================

type TextButton struct {
	Rect FRectangle
	Text string

	Selected bool

	OnClick func()

	hovering bool
}

func (tb *TextButton) Update() {
	tb.hovering = CursorFPt().In(tb.Rect)

	if tb.hovering && IsMouseButtonJustPressed(eb.MouseButtonLeft) && tb.OnClick != nil {
		tb.OnClick()
	}
}

func (tb *TextButton) Draw(dst *eb.Image) {
	fill := ColorTable[ColorTopUIButton]
	if tb.hovering {
		fill = ColorTable[ColorTopUIButtonHover]
	}
	if tb.Selected {
		fill = LerpColorRGB(fill, ColorTable[ColorFlag], 0.35)
	}

	DrawFilledRect(dst, tb.Rect, fill, false)
	StrokeRect(dst, tb.Rect, 1, ColorTable[ColorTileStroke], false)

	DrawTextCentered(
		dst, tb.Text,
		RegularFace(tb.Rect.Dy()*0.45),
		tb.Rect.Center(),
		ColorTable[ColorTopUIText],
	)
}
