package stage

import "github.com/phanxgames/turtle"

// minCanvasWidth keeps part of the canvas visible however far the splitter
// is dragged.
const minCanvasWidth = 100

// SplitterRegion returns the strip between the program panel and the canvas
// that can be dragged to resize the panel.
func (c RunConfig) SplitterRegion() turtle.Rect {
	c = c.withDefaults()
	panel := c.PanelRegion()
	return turtle.Rect{
		X:      panel.X + panel.Width,
		Y:      panel.Y,
		Width:  margin,
		Height: panel.Height,
	}
}

// clampPanelWidth bounds w to [minPanelWidth, room left by the canvas].
func (c RunConfig) clampPanelWidth(w int) int {
	maxW := c.Width - minCanvasWidth - 3*margin
	if w > maxW {
		w = maxW
	}
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w
}

// splitter tracks a drag on the panel splitter.
type splitter struct {
	dragging bool
	grab     float64 // pointer offset from the splitter's left edge
}

// dragSplitter resizes the panel while the left button is held after a
// press on the splitter. Reports whether the pointer is owned by a drag, in
// which case the press must not reach the buttons.
func (s *Stage) dragSplitter(x, y float64, justPressed, pressed bool) bool {
	if justPressed {
		if r := s.cfg.SplitterRegion(); r.Contains(x, y) {
			s.split.dragging = true
			s.split.grab = x - r.X
		}
	}
	if !pressed {
		s.split.dragging = false
		return false
	}
	if !s.split.dragging {
		return false
	}
	s.cfg.PanelWidth = s.cfg.clampPanelWidth(int(x-s.split.grab) - margin)
	return true
}
