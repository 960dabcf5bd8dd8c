package turtle

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// DefaultPathColor is the draw color a path-drawing actor starts with and
// returns to on reset.
var DefaultPathColor = ColorGreen

// RGB8 returns a Color from 8-bit channel values with full opacity.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Bytes returns the color as 8-bit channels, clamped to [0, 255].
func (c Color) Bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// RGBA converts the color to a premultiplied color.RGBA suitable for
// image and ebiten drawing calls.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions and pivots throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Segment is one traced line of a path-drawing actor.
type Segment struct {
	From, To Vec2
	Color    Color
}

// ResourceKind names a depletable resource capability.
type ResourceKind uint8

const (
	Stamina ResourceKind = iota // consumed by Run
	Oxygen                      // consumed by Swim
)

// String returns the lowercase resource name.
func (k ResourceKind) String() string {
	switch k {
	case Stamina:
		return "stamina"
	case Oxygen:
		return "oxygen"
	default:
		return "unknown"
	}
}
