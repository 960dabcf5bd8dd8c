package turtle

import "strings"

// Actor is the stateful entity a command tree operates on. Every actor has a
// Transform; the path-drawing and resource capabilities are optional and are
// chosen at construction. Capability composition never changes afterwards.
type Actor struct {
	Name string

	transform Transform
	initial   Vec2

	path      *Path
	resources []*Resource
}

// ActorOption configures a capability on a new Actor.
type ActorOption func(*Actor)

// WithPath gives the actor the path-drawing capability.
func WithPath() ActorOption {
	return func(a *Actor) {
		if a.path == nil {
			a.path = newPath()
		}
	}
}

// WithResource gives the actor a named resource with the given capacity.
// Passing the same kind twice replaces the earlier capacity.
func WithResource(kind ResourceKind, full int) ActorOption {
	return func(a *Actor) {
		for i, r := range a.resources {
			if r.kind == kind {
				a.resources[i] = newResource(kind, full)
				return
			}
		}
		a.resources = append(a.resources, newResource(kind, full))
	}
}

// WithStamina is shorthand for WithResource(Stamina, full).
func WithStamina(full int) ActorOption { return WithResource(Stamina, full) }

// WithOxygen is shorthand for WithResource(Oxygen, full).
func WithOxygen(full int) ActorOption { return WithResource(Oxygen, full) }

// NewActor creates an actor whose translation, and reset position, is (x, y).
func NewActor(name string, x, y float64, opts ...ActorOption) *Actor {
	a := &Actor{Name: name, initial: Vec2{x, y}}
	a.transform.Translation.Set(a.initial)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTurtle creates a path-drawing actor.
func NewTurtle(name string, x, y float64) *Actor {
	return NewActor(name, x, y, WithPath())
}

// NewTortoise creates a path-drawing actor that also carries stamina.
func NewTortoise(name string, x, y float64, stamina int) *Actor {
	return NewActor(name, x, y, WithPath(), WithStamina(stamina))
}

// Transform returns the actor's transform for reading and writing.
func (a *Actor) Transform() *Transform {
	return &a.transform
}

// InitialTranslation returns the position captured at construction.
func (a *Actor) InitialTranslation() Vec2 {
	return a.initial
}

// Position returns the current translation.
func (a *Actor) Position() Vec2 {
	return a.transform.Position()
}

// --- Capabilities ---

// HasPath reports whether the actor exposes the path-drawing capability.
func (a *Actor) HasPath() bool {
	return a.path != nil
}

// Path returns the path-drawing capability, or nil when absent.
func (a *Actor) Path() *Path {
	return a.path
}

// HasResource reports whether the actor exposes the named resource.
func (a *Actor) HasResource(kind ResourceKind) bool {
	return a.Resource(kind) != nil
}

// Resource returns the named resource, or nil when absent.
func (a *Actor) Resource(kind ResourceKind) *Resource {
	for _, r := range a.resources {
		if r.kind == kind {
			return r
		}
	}
	return nil
}

// Resources returns every resource in the order they were configured.
// The returned slice MUST NOT be mutated by the caller.
func (a *Actor) Resources() []*Resource {
	return a.resources
}

// Capabilities returns a short description such as "path+stamina", used in
// log fields. An actor with no capabilities reports "base".
func (a *Actor) Capabilities() string {
	var parts []string
	if a.path != nil {
		parts = append(parts, "path")
	}
	for _, r := range a.resources {
		parts = append(parts, r.kind.String())
	}
	if len(parts) == 0 {
		return "base"
	}
	return strings.Join(parts, "+")
}

// --- Movement ---

// Move advances the actor by distance along the X axis and traces a segment
// when the actor draws its path.
func (a *Actor) Move(distance float64) {
	from := a.Position()
	a.moveTo(from, Vec2{from.X + distance, from.Y})
}

// Jump moves the actor to (x, y) and traces a segment when the actor draws
// its path.
func (a *Actor) Jump(x, y float64) {
	a.moveTo(a.Position(), Vec2{x, y})
}

// Relocate moves the actor to (x, y) without tracing a segment.
func (a *Actor) Relocate(x, y float64) {
	a.transform.Translation.Set(Vec2{x, y})
}

func (a *Actor) moveTo(from, to Vec2) {
	if a.path != nil {
		a.path.add(from, to)
	}
	a.transform.Translation.Set(to)
}

// Rotate sets the actor's rotation to angle radians.
func (a *Actor) Rotate(angle float64) {
	a.transform.Rotation.Set(angle)
}

// SetColor changes the draw color. No-op for actors without a path.
func (a *Actor) SetColor(c Color) {
	if a.path != nil {
		a.path.SetColor(c)
	}
}

// --- Path enumeration ---

// SegmentCount returns the number of traced segments, 0 without a path.
func (a *Actor) SegmentCount() int {
	if a.path == nil {
		return 0
	}
	return a.path.SegmentCount()
}

// SegmentPoints returns the endpoints of segment i.
func (a *Actor) SegmentPoints(i int) (from, to Vec2) {
	if a.path == nil {
		return Vec2{}, Vec2{}
	}
	return a.path.SegmentPoints(i)
}

// SegmentColor returns the color of segment i.
func (a *Actor) SegmentColor(i int) Color {
	if a.path == nil {
		return Color{}
	}
	return a.path.SegmentColor(i)
}

// --- Reset ---

// ResetToInitial restores the initial translation, clears rotation, scale
// and pivots, drops the traced path and refills every resource. The set of
// capabilities is unchanged.
func (a *Actor) ResetToInitial() {
	a.transform = Transform{}
	a.transform.Translation.Set(a.initial)
	if a.path != nil {
		a.path.clear()
	}
	for _, r := range a.resources {
		r.Refill()
	}
}
