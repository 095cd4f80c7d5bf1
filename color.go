package main

import (
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

//==============================================
// COLOR TABLE
//==============================================

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorTopUIBg
	ColorTopUIText
	ColorTopUIButton
	ColorTopUIButtonHover

	ColorTileNormal1
	ColorTileNormal2
	ColorTileStroke

	ColorTileRevealed1
	ColorTileRevealed2

	ColorMine
	ColorMineBg
	ColorFlag

	ColorBannerWon
	ColorBannerLost

	ColorTableSize
)

// defined as css color strings so tweaking the theme
// doesn't require thinking in NRGBA
var colorTableStrs = [ColorTableSize]string{
	ColorBg: "#1a1a1a",

	ColorTopUIBg:          "#262626",
	ColorTopUIText:        "#f0f0f0",
	ColorTopUIButton:      "#404040",
	ColorTopUIButtonHover: "#5a5a5a",

	ColorTileNormal1: "#2e2e2e",
	ColorTileNormal2: "#383838",
	ColorTileStroke:  "#969696",

	ColorTileRevealed1: "#e8e8e8",
	ColorTileRevealed2: "#dcdcdc",

	ColorMine:   "#0a0a0a",
	ColorMineBg: "crimson",
	ColorFlag:   "tomato",

	ColorBannerWon:  "mediumseagreen",
	ColorBannerLost: "crimson",
}

// classic number colors
var numberColorStrs = [8]string{
	"royalblue",
	"seagreen",
	"crimson",
	"navy",
	"maroon",
	"teal",
	"black",
	"dimgray",
}

var ColorTable [ColorTableSize]color.NRGBA
var NumberColors [8]color.NRGBA

func LoadColorTable() {
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		clr, err := ParseColorString(colorTableStrs[i])
		if err != nil {
			ErrorLogger.Fatalf("failed to parse color %q: %v", colorTableStrs[i], err)
		}
		ColorTable[i] = clr
	}

	for i, str := range numberColorStrs {
		clr, err := ParseColorString(str)
		if err != nil {
			ErrorLogger.Fatalf("failed to parse color %q: %v", str, err)
		}
		NumberColors[i] = clr
	}
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}

func ColorToNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func LerpColorRGB(c1, c2 color.Color, t float64) color.NRGBA {
	n1 := ColorToNRGBA(c1)
	n2 := ColorToNRGBA(c2)

	return color.NRGBA{
		R: uint8(Lerp(f64(n1.R), f64(n2.R), t)),
		G: uint8(Lerp(f64(n1.G), f64(n2.G), t)),
		B: uint8(Lerp(f64(n1.B), f64(n2.B), t)),
		A: n1.A,
	}
}

func ColorFade(clr color.Color, a float64) color.NRGBA {
	c := ColorToNRGBA(clr)
	c.A = uint8(f64(c.A) * Clamp(a, 0, 1))
	return c
}
