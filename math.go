package main

import (
	"image"

	"golang.org/x/exp/constraints"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

func RectWH(w, h int) image.Rectangle {
	return image.Rect(0, 0, w, h)
}

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) In(r FRectangle) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// =================================
// FRectangle
// =================================

type FRectangle struct {
	Min, Max FPoint
}

func FRect(x0, y0, x1, y1 float64) FRectangle {
	return FRectangle{
		Min: FPt(x0, y0),
		Max: FPt(x1, y1),
	}
}

func FRectWH(w, h float64) FRectangle {
	return FRectangle{
		Max: FPt(w, h),
	}
}

func (r FRectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

func (r FRectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

func (r FRectangle) Center() FPoint {
	return FPoint{
		X: (r.Min.X + r.Max.X) * 0.5,
		Y: (r.Min.Y + r.Max.Y) * 0.5,
	}
}

func (r FRectangle) Add(p FPoint) FRectangle {
	return FRectangle{
		FPoint{r.Min.X + p.X, r.Min.Y + p.Y},
		FPoint{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

func (r FRectangle) Inset(n float64) FRectangle {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}
