package stage

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/turtle"
)

const (
	pathThickness  = 1
	markerSize     = 20
	headingLength  = 18
	panelTextInset = 4
)

var (
	buttonColor   = turtle.RGB8(80, 80, 80)
	disabledColor = turtle.RGB8(45, 45, 45)
	panelColor    = turtle.RGB8(40, 40, 48)
	currentColor  = turtle.RGB8(70, 110, 160)
	markerColor   = turtle.RGB8(80, 180, 255)
	splitterColor = turtle.RGB8(128, 128, 128)
	draggingColor = turtle.RGB8(230, 230, 230)
)

// --- Top bar ---

func (s *Stage) drawButtons(screen *ebiten.Image) {
	for _, b := range s.buttons {
		clr := buttonColor
		if b.Action == ActionStep && s.interp.IsFinished() {
			clr = disabledColor
		}
		fillRect(screen, b.Bounds, clr)
		ebitenutil.DebugPrintAt(screen, b.Label, int(b.Bounds.X)+panelTextInset, int(b.Bounds.Y)+panelTextInset)
	}
	status := fmt.Sprintf("executed: %d", s.interp.Executed())
	if s.interp.IsFinished() {
		status += " (finished)"
	}
	x := margin + len(s.buttons)*(buttonWidth+buttonGap)
	ebitenutil.DebugPrintAt(screen, status, x, (topBarHeight-lineHeight)/2)
}

// --- Program panel ---

// panelLines renders the program tree as indented node strings and reports
// which line holds the interpreter's current node (-1 when none).
func panelLines(root, current *turtle.Node) ([]string, int) {
	if root == nil {
		return nil, -1
	}
	var lines []string
	highlight := -1
	root.Walk(func(n *turtle.Node, depth int) {
		if n == current {
			highlight = len(lines)
		}
		lines = append(lines, strings.Repeat("  ", depth)+n.String())
	})
	return lines, highlight
}

func (s *Stage) drawPanel(screen *ebiten.Image) {
	region := s.cfg.PanelRegion()
	fillRect(screen, region, panelColor)

	lines, highlight := panelLines(s.interp.Root(), s.interp.Current())
	for i, line := range lines {
		y := region.Y + float64(panelTextInset+i*lineHeight)
		if y+lineHeight > region.Y+region.Height {
			break
		}
		if i == highlight {
			fillRect(screen, turtle.Rect{X: region.X, Y: y, Width: region.Width, Height: lineHeight}, currentColor)
		}
		ebitenutil.DebugPrintAt(screen, line, int(region.X)+panelTextInset, int(y))
	}
}

func (s *Stage) drawSplitter(screen *ebiten.Image) {
	clr := splitterColor
	if s.split.dragging {
		clr = draggingColor
	}
	fillRect(screen, s.cfg.SplitterRegion(), clr)
}

// --- Canvas ---

func (s *Stage) drawCanvas(screen *ebiten.Image) {
	region := s.cfg.CanvasRegion()
	fillRect(screen, region, s.cfg.CanvasColor)

	canvas := screen.SubImage(rectToImage(region)).(*ebiten.Image)
	drawPath(canvas, region, s.actor)
	drawActor(canvas, region, s.displayTransform(), s.sprite)
	s.drawResources(screen, region)
}

// displayTransform is the actor transform with the follower's eased
// translation and rotation.
func (s *Stage) displayTransform() turtle.Transform {
	t := *s.actor.Transform()
	t.Translation.Set(turtle.Vec2{X: s.follower.X, Y: s.follower.Y})
	if t.Rotation.IsSet() || s.follower.Rotation != 0 {
		t.Rotation.Set(s.follower.Rotation)
	}
	return t
}

// drawPath strokes every traced segment, offset by the region origin.
func drawPath(dst *ebiten.Image, region turtle.Rect, a *turtle.Actor) {
	for i := 0; i < a.SegmentCount(); i++ {
		from, to := a.SegmentPoints(i)
		vector.StrokeLine(dst,
			float32(region.X+from.X), float32(region.Y+from.Y),
			float32(region.X+to.X), float32(region.Y+to.Y),
			pathThickness, a.SegmentColor(i).RGBA(), true)
	}
}

// drawActor draws the sprite centered on the transform's translation, or a
// square marker with a heading line when there is no sprite.
func drawActor(dst *ebiten.Image, region turtle.Rect, t turtle.Transform, sprite *ebiten.Image) {
	m := t.Matrix()
	var geo ebiten.GeoM
	geo.SetElement(0, 0, m[0])
	geo.SetElement(1, 0, m[1])
	geo.SetElement(0, 1, m[2])
	geo.SetElement(1, 1, m[3])
	geo.SetElement(0, 2, m[4]+region.X)
	geo.SetElement(1, 2, m[5]+region.Y)

	if sprite != nil {
		w, h := sprite.Bounds().Dx(), sprite.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Concat(geo)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(sprite, op)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(markerSize, markerSize)
	op.GeoM.Translate(-markerSize/2, -markerSize/2)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(markerColor.RGBA())
	dst.DrawImage(whitePixel(), op)

	pos := t.Position()
	angle := t.Angle()
	vector.StrokeLine(dst,
		float32(region.X+pos.X), float32(region.Y+pos.Y),
		float32(region.X+pos.X+headingLength*math.Cos(angle)),
		float32(region.Y+pos.Y+headingLength*math.Sin(angle)),
		2, turtle.ColorWhite.RGBA(), true)
}

// drawResources prints the remaining amount of every resource in the
// canvas' top-left corner.
func (s *Stage) drawResources(screen *ebiten.Image, region turtle.Rect) {
	y := int(region.Y) + panelTextInset
	for _, r := range s.actor.Resources() {
		line := fmt.Sprintf("%s: %d/%d", r.Kind(), r.Remaining(), r.Full())
		ebitenutil.DebugPrintAt(screen, line, int(region.X)+panelTextInset, y)
		y += lineHeight
	}
}

// --- Helpers ---

var whitePixelImage *ebiten.Image

// whitePixel returns a lazily created 1x1 white image used for solid fills.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(turtle.ColorWhite.RGBA())
	}
	return whitePixelImage
}

func rectToImage(r turtle.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}

// fillRect draws a solid rectangle by stretching the white pixel.
func fillRect(dst *ebiten.Image, r turtle.Rect, c turtle.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(whitePixel(), op)
}
