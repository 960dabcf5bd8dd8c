package turtle

// Path is the path-drawing capability: the segments an actor has traced and
// the color used for the next one.
type Path struct {
	segments []Segment
	color    Color
}

func newPath() *Path {
	return &Path{color: DefaultPathColor}
}

// Color returns the color applied to newly added segments.
func (p *Path) Color() Color { return p.color }

// SetColor changes the color applied to newly added segments. Existing
// segments keep their color.
func (p *Path) SetColor(c Color) { p.color = c }

// add appends a segment tagged with the current color.
func (p *Path) add(from, to Vec2) {
	p.segments = append(p.segments, Segment{From: from, To: to, Color: p.color})
}

// SegmentCount returns the number of recorded segments.
func (p *Path) SegmentCount() int { return len(p.segments) }

// SegmentPoints returns the start and end point of segment i. Out of range
// indices return zero points.
func (p *Path) SegmentPoints(i int) (from, to Vec2) {
	if i < 0 || i >= len(p.segments) {
		return Vec2{}, Vec2{}
	}
	s := p.segments[i]
	return s.From, s.To
}

// SegmentColor returns the color of segment i. Out of range indices return
// the zero Color.
func (p *Path) SegmentColor(i int) Color {
	if i < 0 || i >= len(p.segments) {
		return Color{}
	}
	return p.segments[i].Color
}

// Segments returns the recorded segments. The returned slice MUST NOT be
// mutated by the caller. It stays valid across a reset.
func (p *Path) Segments() []Segment {
	return p.segments
}

// clear drops every segment and restores the default color.
func (p *Path) clear() {
	p.segments = nil
	p.color = DefaultPathColor
}
