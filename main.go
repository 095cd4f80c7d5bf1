package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 900
	ScreenHeight float64 = 700
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagPProf bool
var FlagSeed int64
var FlagDifficulty string

func init() {
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.Int64Var(&FlagSeed, "seed", 0, "mine placement seed, 0 picks a random one")
	flag.StringVar(&FlagDifficulty, "difficulty", "easy", "easy, medium or hard")
}

type App struct {
	ShowDebugConsole bool
	GameUI           *GameUI
}

func NewApp() *App {
	a := new(App)

	difficulty := DifficultyEasy
	for d := DifficultyEasy; d < DifficultySize; d++ {
		if strings.EqualFold(DifficultyStrs[d], FlagDifficulty) {
			difficulty = d
		}
	}

	a.GameUI = NewGameUI(difficulty, FlagSeed)
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Minesweeper FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	a.GameUI.Update()

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	dst.Fill(ColorTable[ColorBg])

	a.GameUI.Draw(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	LoadAssets()

	app := NewApp()

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Minesweeper")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
