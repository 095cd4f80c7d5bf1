package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

func DrawFilledRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		antialias,
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		antialias,
	)
}

func StrokeLine(
	dst *eb.Image,
	x0, y0, x1, y1 float64,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeLine(
		dst, f32(x0), f32(y0), f32(x1), f32(y1), f32(strokeWidth), clr, antialias)
}

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, antialias)
}

// WritePixels based white image is better than Fill
// in term of automatic texture packing.
func DrawFilledPath(dst *eb.Image, path ebv.Path, clr color.Color, antialias bool) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)

	nc := ColorToNRGBA(clr)
	r := f32(nc.R) / 255
	g := f32(nc.G) / 255
	b := f32(nc.B) / 255
	a := f32(nc.A) / 255

	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r * a
		vs[i].ColorG = g * a
		vs[i].ColorB = b * a
		vs[i].ColorA = a
	}

	op := &eb.DrawTrianglesOptions{}
	op.ColorScaleMode = eb.ColorScaleModePremultipliedAlpha
	op.AntiAlias = antialias
	dst.DrawTriangles(vs, is, WhiteImage, op)
}

func DrawTextCentered(
	dst *eb.Image,
	str string,
	face ebt.Face,
	center FPoint,
	clr color.Color,
) {
	op := &ebt.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = ebt.AlignCenter
	op.SecondaryAlign = ebt.AlignCenter

	ebt.Draw(dst, str, face, op)
}

func DrawTextAt(
	dst *eb.Image,
	str string,
	face ebt.Face,
	pos FPoint,
	clr color.Color,
) {
	op := &ebt.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)

	ebt.Draw(dst, str, face, op)
}
