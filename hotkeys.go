package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	ResetBoardKey eb.Key = eb.KeyR

	CopySeedKey  eb.Key = eb.KeyC
	PasteSeedKey eb.Key = eb.KeyV

	DifficultyEasyKey   eb.Key = eb.Key1
	DifficultyMediumKey eb.Key = eb.Key2
	DifficultyHardKey   eb.Key = eb.Key3
)
