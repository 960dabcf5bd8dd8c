package stage

import (
	"time"

	"github.com/phanxgames/turtle"
)

// Layout defaults.
const (
	defaultWidth      = 1024
	defaultHeight     = 720
	defaultPanelWidth = 260
	minPanelWidth     = 100
	topBarHeight      = 32
	buttonWidth       = 100
	buttonHeight      = 24
	buttonGap         = 8
	lineHeight        = 16
	margin            = 8
)

// RunConfig configures the window and host behavior. Zero fields fall back
// to defaults.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// PanelWidth is the width of the program panel on the left.
	PanelWidth int

	// TweenDuration is how long, in seconds, the displayed actor takes to
	// catch up with the model after a command. Zero snaps immediately.
	TweenDuration float32

	// RunBudget bounds a single Run press. Zero means no limit.
	RunBudget time.Duration

	// ScreenshotDir receives PNGs captured by Screenshot and by scripts.
	ScreenshotDir string

	// ClearColor fills the window behind the panels.
	ClearColor turtle.Color
	// CanvasColor fills the drawing region.
	CanvasColor turtle.Color
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "Turtlepreter"
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.PanelWidth <= 0 {
		c.PanelWidth = defaultPanelWidth
	}
	if c.PanelWidth < minPanelWidth {
		c.PanelWidth = minPanelWidth
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.ClearColor == (turtle.Color{}) {
		c.ClearColor = turtle.Color{R: 0.118, G: 0.118, B: 0.157, A: 1}
	}
	if c.CanvasColor == (turtle.Color{}) {
		c.CanvasColor = turtle.RGB8(60, 60, 60)
	}
	return c
}

// CanvasRegion returns the rectangle the actor is drawn in. Actor
// coordinates are relative to its top-left corner.
func (c RunConfig) CanvasRegion() turtle.Rect {
	c = c.withDefaults()
	x := float64(c.PanelWidth + 2*margin)
	y := float64(topBarHeight + margin)
	return turtle.Rect{
		X:      x,
		Y:      y,
		Width:  float64(c.Width) - x - margin,
		Height: float64(c.Height) - y - margin,
	}
}

// PanelRegion returns the rectangle of the program panel.
func (c RunConfig) PanelRegion() turtle.Rect {
	c = c.withDefaults()
	y := float64(topBarHeight + margin)
	return turtle.Rect{
		X:      margin,
		Y:      y,
		Width:  float64(c.PanelWidth),
		Height: float64(c.Height) - y - margin,
	}
}
