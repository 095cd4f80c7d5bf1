package main

import (
	"bytes"
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces come from gofont so the binary stays self contained.
var (
	RegularFaceSource *ebt.GoTextFaceSource
	BoldFaceSource    *ebt.GoTextFaceSource
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(RectWH(3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

func LoadAssets() {
	{
		faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			ErrorLogger.Fatalf("failed to load font : %v", err)
		}
		RegularFaceSource = faceSource
	}
	{
		faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			ErrorLogger.Fatalf("failed to load font : %v", err)
		}
		BoldFaceSource = faceSource
	}

	LoadColorTable()
}

func RegularFace(size float64) *ebt.GoTextFace {
	return &ebt.GoTextFace{
		Source: RegularFaceSource,
		Size:   size,
	}
}

func BoldFace(size float64) *ebt.GoTextFace {
	return &ebt.GoTextFace{
		Source: BoldFaceSource,
		Size:   size,
	}
}
