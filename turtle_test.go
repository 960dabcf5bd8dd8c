package turtle

import (
	"image/color"
	"testing"
)

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	if got := (Rect{10, 20, 100, 50}).Center(); got != (Vec2{60, 45}) {
		t.Errorf("Center() = %v, want {60 45}", got)
	}
}

// --- Vec2 ---

func TestVec2Add(t *testing.T) {
	if got := (Vec2{1, 2}).Add(Vec2{3, -5}); got != (Vec2{4, -3}) {
		t.Errorf("Add = %v, want {4 -3}", got)
	}
}

// --- Color ---

func TestRGB8RoundTrip(t *testing.T) {
	r, g, b, a := RGB8(255, 128, 0).Bytes()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("Bytes() = %d,%d,%d,%d, want 255,128,0,255", r, g, b, a)
	}
}

func TestColorBytesClamps(t *testing.T) {
	r, g, _, _ := Color{R: 2, G: -1}.Bytes()
	if r != 255 || g != 0 {
		t.Errorf("Bytes() = %d,%d, want 255,0", r, g)
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
}

// --- ResourceKind ---

func TestResourceKindString(t *testing.T) {
	if Stamina.String() != "stamina" || Oxygen.String() != "oxygen" {
		t.Errorf("String() = %q, %q", Stamina.String(), Oxygen.String())
	}
}
