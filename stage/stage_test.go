package stage

import (
	"strings"
	"testing"

	"github.com/phanxgames/turtle"
)

// newTestStage builds a stage around a square walk with no sprite.
func newTestStage() *Stage {
	a := turtle.NewTurtle("t", 10, 10)
	root := turtle.NewSequence(
		turtle.NewLeaf(turtle.Jump(110, 10)),
		turtle.NewSequence(
			turtle.NewLeaf(turtle.Jump(110, 110)),
			turtle.NewLeaf(turtle.Rotate(1.5)),
		),
		turtle.NewLeaf(turtle.Jump(10, 110)),
	)
	return New(a, turtle.NewInterpreter(root), nil, RunConfig{})
}

func TestStageStep(t *testing.T) {
	s := newTestStage()
	if !s.Step() {
		t.Fatal("first Step() = false, want true")
	}
	if got := s.Actor().Position(); got != (turtle.Vec2{X: 110, Y: 10}) {
		t.Errorf("position = %v, want (110, 10)", got)
	}
	if got := s.Actor().SegmentCount(); got != 1 {
		t.Errorf("SegmentCount() = %d, want 1", got)
	}
}

func TestStageRunResetsFirst(t *testing.T) {
	s := newTestStage()
	s.Step()
	s.Step()
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := s.Interpreter().Executed(); got != 4 {
		t.Errorf("Executed() = %d, want 4", got)
	}
	if got := s.Actor().SegmentCount(); got != 3 {
		t.Errorf("SegmentCount() = %d, want 3 (no leftovers from earlier steps)", got)
	}
	if !s.Interpreter().IsFinished() {
		t.Error("interpreter should be finished after Run")
	}
	if s.Step() {
		t.Error("Step() after Run = true, want false")
	}
}

func TestStageReset(t *testing.T) {
	s := newTestStage()
	s.Step()
	s.Step()
	s.Reset()
	if got := s.Actor().Position(); got != (turtle.Vec2{X: 10, Y: 10}) {
		t.Errorf("position = %v, want (10, 10)", got)
	}
	if s.Actor().SegmentCount() != 0 {
		t.Errorf("SegmentCount() = %d, want 0", s.Actor().SegmentCount())
	}
	if s.Interpreter().Executed() != 0 {
		t.Errorf("Executed() = %d, want 0", s.Interpreter().Executed())
	}
	if f := s.Follower(); f.X != 10 || f.Y != 10 || !f.Done {
		t.Errorf("follower = (%v, %v) done=%v, want snapped to (10, 10)", f.X, f.Y, f.Done)
	}
}

func TestTickAppliesInputAndRetargets(t *testing.T) {
	s := newTestStage()
	s.cfg.TweenDuration = 0
	s.follower.Duration = 0

	s.tick(0, ActionStep)
	if s.Interpreter().Executed() != 1 {
		t.Errorf("Executed() = %d, want 1", s.Interpreter().Executed())
	}
	if f := s.Follower(); f.X != 110 || f.Y != 10 {
		t.Errorf("follower = (%v, %v), want (110, 10)", f.X, f.Y)
	}
	if len(s.pending) != 0 {
		t.Errorf("pending = %v, want empty", s.pending)
	}
}

func TestQueueIgnoresNone(t *testing.T) {
	s := newTestStage()
	s.Queue(ActionNone)
	if len(s.pending) != 0 {
		t.Errorf("pending = %v, want empty", s.pending)
	}
}

func TestPanelLinesHighlightsCurrent(t *testing.T) {
	s := newTestStage()
	s.Step()

	lines, highlight := panelLines(s.Interpreter().Root(), s.Interpreter().Current())
	if len(lines) != 6 {
		t.Fatalf("len(lines) = %d, want 6", len(lines))
	}
	if highlight != 3 {
		t.Fatalf("highlight = %d, want 3", highlight)
	}
	if !strings.HasPrefix(lines[3], "    Command: Jump to [110;110]") {
		t.Errorf("lines[3] = %q", lines[3])
	}
	if !strings.HasPrefix(lines[0], "No command") {
		t.Errorf("lines[0] = %q", lines[0])
	}
}

func TestPanelLinesNilRoot(t *testing.T) {
	lines, highlight := panelLines(nil, nil)
	if lines != nil || highlight != -1 {
		t.Errorf("panelLines(nil) = %v, %d", lines, highlight)
	}
}

func TestDisplayTransformUsesFollower(t *testing.T) {
	s := newTestStage()
	s.follower.X, s.follower.Y, s.follower.Rotation = 42, 43, 0.5
	tr := s.displayTransform()
	if got := tr.Position(); got != (turtle.Vec2{X: 42, Y: 43}) {
		t.Errorf("Position() = %v, want (42, 43)", got)
	}
	if tr.Angle() != 0.5 {
		t.Errorf("Angle() = %v, want 0.5", tr.Angle())
	}
	if s.Actor().Transform().Angle() != 0 {
		t.Error("displayTransform must not modify the actor")
	}
}

func TestLayout(t *testing.T) {
	s := newTestStage()
	w, h := s.Layout(1, 1)
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}
}
