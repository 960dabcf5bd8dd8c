package turtle

import "testing"

// --- Construction ---

func TestNewActorCapturesInitialTranslation(t *testing.T) {
	a := NewActor("a", 320, 320)
	if a.Position() != (Vec2{320, 320}) {
		t.Errorf("Position = %v, want {320 320}", a.Position())
	}
	if a.InitialTranslation() != (Vec2{320, 320}) {
		t.Errorf("InitialTranslation = %v, want {320 320}", a.InitialTranslation())
	}
	if a.Transform().Rotation.IsSet() {
		t.Error("rotation should start unset")
	}
}

func TestActorCapabilityComposition(t *testing.T) {
	tests := []struct {
		name    string
		actor   *Actor
		path    bool
		stamina bool
		oxygen  bool
		caps    string
	}{
		{"base", NewActor("base", 0, 0), false, false, false, "base"},
		{"turtle", NewTurtle("t", 0, 0), true, false, false, "path"},
		{"tortoise", NewTortoise("t", 0, 0, 3), true, true, false, "path+stamina"},
		{"swimmer", NewActor("s", 0, 0, WithOxygen(2)), false, false, true, "oxygen"},
		{"both", NewActor("b", 0, 0, WithStamina(1), WithOxygen(1)), false, true, true, "stamina+oxygen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.actor.HasPath(); got != tt.path {
				t.Errorf("HasPath = %v, want %v", got, tt.path)
			}
			if got := tt.actor.HasResource(Stamina); got != tt.stamina {
				t.Errorf("HasResource(Stamina) = %v, want %v", got, tt.stamina)
			}
			if got := tt.actor.HasResource(Oxygen); got != tt.oxygen {
				t.Errorf("HasResource(Oxygen) = %v, want %v", got, tt.oxygen)
			}
			if got := tt.actor.Capabilities(); got != tt.caps {
				t.Errorf("Capabilities = %q, want %q", got, tt.caps)
			}
		})
	}
}

func TestWithResourceTwiceReplacesCapacity(t *testing.T) {
	a := NewActor("a", 0, 0, WithStamina(1), WithStamina(5))
	if len(a.Resources()) != 1 {
		t.Fatalf("Resources = %d, want 1", len(a.Resources()))
	}
	if a.Resource(Stamina).Full() != 5 {
		t.Errorf("Full = %d, want 5", a.Resource(Stamina).Full())
	}
}

// --- Resources ---

func TestResourceNeverBelowZero(t *testing.T) {
	a := NewActor("a", 0, 0, WithStamina(2))
	r := a.Resource(Stamina)
	for range 5 {
		r.Consume()
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
	if r.Has() {
		t.Error("Has should be false when empty")
	}
	r.Refill()
	if r.Remaining() != 2 {
		t.Errorf("Remaining after Refill = %d, want 2", r.Remaining())
	}
}

func TestNegativeCapacityClampsToZero(t *testing.T) {
	a := NewActor("a", 0, 0, WithOxygen(-4))
	if a.Resource(Oxygen).Full() != 0 || a.Resource(Oxygen).Has() {
		t.Error("negative capacity should clamp to an empty resource")
	}
}

// --- Path ---

func TestJumpAndMoveTraceSegments(t *testing.T) {
	a := NewTurtle("t", 10, 10)
	a.Jump(20, 30)
	a.SetColor(ColorRed)
	a.Move(5)

	if a.SegmentCount() != 2 {
		t.Fatalf("SegmentCount = %d, want 2", a.SegmentCount())
	}
	from, to := a.SegmentPoints(0)
	if from != (Vec2{10, 10}) || to != (Vec2{20, 30}) {
		t.Errorf("segment 0 = %v -> %v", from, to)
	}
	from, to = a.SegmentPoints(1)
	if from != (Vec2{20, 30}) || to != (Vec2{25, 30}) {
		t.Errorf("segment 1 = %v -> %v", from, to)
	}
	if a.SegmentColor(0) != DefaultPathColor {
		t.Errorf("segment 0 color = %v, want default", a.SegmentColor(0))
	}
	if a.SegmentColor(1) != ColorRed {
		t.Errorf("segment 1 color = %v, want red", a.SegmentColor(1))
	}
}

func TestSegmentOutOfRange(t *testing.T) {
	a := NewTurtle("t", 0, 0)
	from, to := a.SegmentPoints(3)
	if from != (Vec2{}) || to != (Vec2{}) {
		t.Error("out of range points should be zero")
	}
	if a.SegmentColor(-1) != (Color{}) {
		t.Error("out of range color should be zero")
	}
}

func TestActorWithoutPathMovesWithoutSegments(t *testing.T) {
	a := NewActor("a", 0, 0)
	a.Jump(4, 4)
	a.SetColor(ColorRed)
	if a.Position() != (Vec2{4, 4}) {
		t.Errorf("Position = %v, want {4 4}", a.Position())
	}
	if a.SegmentCount() != 0 || a.Path() != nil {
		t.Error("actor without path should record nothing")
	}
}

func TestRelocateDoesNotTrace(t *testing.T) {
	a := NewTurtle("t", 0, 0)
	a.Relocate(50, 60)
	if a.SegmentCount() != 0 {
		t.Errorf("SegmentCount = %d, want 0", a.SegmentCount())
	}
	if a.Position() != (Vec2{50, 60}) {
		t.Errorf("Position = %v, want {50 60}", a.Position())
	}
}

// --- Reset ---

func TestResetToInitial(t *testing.T) {
	a := NewTortoise("t", 320, 320, 2)
	a.Jump(1, 2)
	a.Rotate(1.5)
	a.SetColor(ColorBlue)
	a.Transform().Scale.Set(4)
	a.Resource(Stamina).Consume()
	a.Resource(Stamina).Consume()

	a.ResetToInitial()

	if a.Position() != (Vec2{320, 320}) {
		t.Errorf("Position = %v, want initial", a.Position())
	}
	if a.Transform().Rotation.IsSet() {
		t.Error("rotation should be unset after reset")
	}
	if a.Transform().Factor() != 1 {
		t.Errorf("Factor = %v, want 1", a.Transform().Factor())
	}
	if a.SegmentCount() != 0 {
		t.Errorf("SegmentCount = %d, want 0", a.SegmentCount())
	}
	if a.Path().Color() != DefaultPathColor {
		t.Errorf("path color = %v, want default", a.Path().Color())
	}
	if a.Resource(Stamina).Remaining() != 2 {
		t.Errorf("stamina = %d, want 2", a.Resource(Stamina).Remaining())
	}
	if a.Capabilities() != "path+stamina" {
		t.Errorf("Capabilities changed to %q", a.Capabilities())
	}
}

func TestResetLeavesHeldSegmentsIntact(t *testing.T) {
	a := NewTurtle("t", 0, 0)
	a.Jump(1, 1)
	held := a.Path().Segments()

	a.ResetToInitial()
	a.Jump(9, 9)

	if held[0].To != (Vec2{1, 1}) {
		t.Errorf("held[0].To = %v, want {1 1}", held[0].To)
	}
	if _, to := a.SegmentPoints(0); to != (Vec2{9, 9}) {
		t.Errorf("SegmentPoints(0) to = %v, want {9 9}", to)
	}
}

// --- Color ---

func TestColorBytesAndRGB8(t *testing.T) {
	c := RGB8(255, 0, 128)
	r, g, b, a := c.Bytes()
	if r != 255 || g != 0 || b != 128 || a != 255 {
		t.Errorf("Bytes = %d,%d,%d,%d", r, g, b, a)
	}
	half := Color{1, 1, 1, 0.5}.RGBA()
	if half.A != 128 || half.R != 128 {
		t.Errorf("premultiplied RGBA = %+v", half)
	}
}
