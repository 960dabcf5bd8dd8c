package turtle

import "math"

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Component is one independently settable part of a Transform. A component
// is either unset, in which case readers fall back to a default, or holds a
// value. Each component may also carry a pivot point.
type Component[T any] struct {
	value    T
	hasValue bool
	pivot    Vec2
	hasPivot bool
}

// Value returns the component value and whether it is set.
func (c Component[T]) Value() (T, bool) {
	return c.value, c.hasValue
}

// ValueOr returns the component value, or def when unset.
func (c Component[T]) ValueOr(def T) T {
	if !c.hasValue {
		return def
	}
	return c.value
}

// IsSet reports whether the component holds a value.
func (c Component[T]) IsSet() bool {
	return c.hasValue
}

// Set assigns the component value.
func (c *Component[T]) Set(v T) {
	c.value = v
	c.hasValue = true
}

// Unset clears the component value.
func (c *Component[T]) Unset() {
	var zero T
	c.value = zero
	c.hasValue = false
}

// Pivot returns the component pivot and whether it is set.
func (c Component[T]) Pivot() (Vec2, bool) {
	return c.pivot, c.hasPivot
}

// PivotOr returns the pivot, or def when unset.
func (c Component[T]) PivotOr(def Vec2) Vec2 {
	if !c.hasPivot {
		return def
	}
	return c.pivot
}

// SetPivot assigns the component pivot.
func (c *Component[T]) SetPivot(p Vec2) {
	c.pivot = p
	c.hasPivot = true
}

// UnsetPivot clears the component pivot.
func (c *Component[T]) UnsetPivot() {
	c.pivot = Vec2{}
	c.hasPivot = false
}

// Transform is the 2D placement of an actor: translation, rotation in
// radians and uniform scale, each independently settable.
type Transform struct {
	Translation Component[Vec2]
	Rotation    Component[float64]
	Scale       Component[float64]
}

// Position returns the translation, or the origin when unset.
func (t *Transform) Position() Vec2 {
	return t.Translation.ValueOr(Vec2{})
}

// Angle returns the rotation, or 0 when unset.
func (t *Transform) Angle() float64 {
	return t.Rotation.ValueOr(0)
}

// Factor returns the scale, or 1 when unset.
func (t *Transform) Factor() float64 {
	return t.Scale.ValueOr(1)
}

// Matrix computes the affine matrix [a, b, c, d, tx, ty] for the transform.
// The pivot of the rotation and scale components is the origin of the
// rotation and scaling; unset components contribute the identity.
//
// Composition order:
//
//	Translate(-pivot) -> Scale -> Rotate -> Translate(pivot) -> Translate(position)
func (t *Transform) Matrix() [6]float64 {
	m := identityMatrix

	s := t.Factor()
	if s != 1 {
		p := t.Scale.PivotOr(Vec2{})
		m = multiplyAffine(aroundPivot([6]float64{s, 0, 0, s, 0, 0}, p), m)
	}

	if r := t.Angle(); r != 0 {
		sin, cos := math.Sincos(r)
		p := t.Rotation.PivotOr(Vec2{})
		m = multiplyAffine(aroundPivot([6]float64{cos, sin, -sin, cos, 0, 0}, p), m)
	}

	pos := t.Position()
	m[4] += pos.X
	m[5] += pos.Y
	return m
}

// aroundPivot conjugates a linear map so that it is applied around p.
func aroundPivot(m [6]float64, p Vec2) [6]float64 {
	if p == (Vec2{}) {
		return m
	}
	pre := [6]float64{1, 0, 0, 1, -p.X, -p.Y}
	post := [6]float64{1, 0, 0, 1, p.X, p.Y}
	return multiplyAffine(post, multiplyAffine(m, pre))
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// TransformPoint applies an affine matrix to a point.
func TransformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
