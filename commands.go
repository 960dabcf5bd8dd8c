package turtle

import "fmt"

// --- Path-drawing commands ---

// pathCommand is embedded by commands that need the path-drawing capability.
type pathCommand struct{}

// CanExecute reports whether a draws its path.
func (pathCommand) CanExecute(a *Actor) bool {
	return a.HasPath()
}

// MoveCommand moves the actor along X by Distance.
type MoveCommand struct {
	pathCommand
	Distance float64
}

// Move returns a command that moves the actor by distance.
func Move(distance float64) *MoveCommand {
	return &MoveCommand{Distance: distance}
}

func (c *MoveCommand) Execute(a *Actor) { a.Move(c.Distance) }

func (c *MoveCommand) Describe() string {
	return fmt.Sprintf("Move by %g", c.Distance)
}

func (c *MoveCommand) Listing() string {
	return fmt.Sprintf("move(%g)", c.Distance)
}

// JumpCommand moves the actor to an absolute position.
type JumpCommand struct {
	pathCommand
	X, Y float64
}

// Jump returns a command that jumps the actor to (x, y).
func Jump(x, y float64) *JumpCommand {
	return &JumpCommand{X: x, Y: y}
}

func (c *JumpCommand) Execute(a *Actor) { a.Jump(c.X, c.Y) }

func (c *JumpCommand) Describe() string {
	return fmt.Sprintf("Jump to [%g;%g]", c.X, c.Y)
}

func (c *JumpCommand) Listing() string {
	return fmt.Sprintf("jump(%g,%g)", c.X, c.Y)
}

// RotateCommand sets the actor rotation, in radians.
type RotateCommand struct {
	pathCommand
	Angle float64
}

// Rotate returns a command that rotates the actor to angle radians.
func Rotate(angle float64) *RotateCommand {
	return &RotateCommand{Angle: angle}
}

func (c *RotateCommand) Execute(a *Actor) { a.Rotate(c.Angle) }

func (c *RotateCommand) Describe() string {
	return fmt.Sprintf("Rotate by %g radians", c.Angle)
}

func (c *RotateCommand) Listing() string {
	return fmt.Sprintf("rotate(%g)", c.Angle)
}

// SetColorCommand changes the color of segments traced afterwards.
type SetColorCommand struct {
	pathCommand
	Color Color
}

// SetColor returns a command that switches the draw color.
func SetColor(c Color) *SetColorCommand {
	return &SetColorCommand{Color: c}
}

func (c *SetColorCommand) Execute(a *Actor) { a.SetColor(c.Color) }

func (c *SetColorCommand) Describe() string {
	r, g, b, al := c.Color.Bytes()
	return fmt.Sprintf("Set color (%d,%d,%d,%d)", r, g, b, al)
}

func (c *SetColorCommand) Listing() string {
	r, g, b, _ := c.Color.Bytes()
	return fmt.Sprintf("setColor(%d,%d,%d)", r, g, b)
}

// --- Resource-gated commands ---

// ResourceJumpCommand relocates the actor to Dest and spends one unit of
// Kind. The guard only requires the actor to carry the resource; an empty
// resource turns Execute into a no-op.
type ResourceJumpCommand struct {
	Kind ResourceKind
	Dest Vec2
	verb string
}

// Run returns a stamina-consuming jump to (x, y).
func Run(x, y float64) *ResourceJumpCommand {
	return &ResourceJumpCommand{Kind: Stamina, Dest: Vec2{x, y}, verb: "run"}
}

// Swim returns an oxygen-consuming jump to (x, y).
func Swim(x, y float64) *ResourceJumpCommand {
	return &ResourceJumpCommand{Kind: Oxygen, Dest: Vec2{x, y}, verb: "swim"}
}

// CanExecute reports whether a carries the resource, regardless of how much
// of it remains.
func (c *ResourceJumpCommand) CanExecute(a *Actor) bool {
	return a.HasResource(c.Kind)
}

func (c *ResourceJumpCommand) Execute(a *Actor) {
	r := a.Resource(c.Kind)
	if r == nil || !r.Has() {
		return
	}
	a.Relocate(c.Dest.X, c.Dest.Y)
	r.Consume()
}

func (c *ResourceJumpCommand) Describe() string {
	switch c.Kind {
	case Stamina:
		return fmt.Sprintf("Run to (%g;%g)", c.Dest.X, c.Dest.Y)
	case Oxygen:
		return fmt.Sprintf("Swim to (%g;%g)", c.Dest.X, c.Dest.Y)
	default:
		return fmt.Sprintf("Spend %s to reach (%g;%g)", c.Kind, c.Dest.X, c.Dest.Y)
	}
}

func (c *ResourceJumpCommand) Listing() string {
	verb := c.verb
	if verb == "" {
		verb = c.Kind.String()
	}
	return fmt.Sprintf("%s(%g,%g)", verb, c.Dest.X, c.Dest.Y)
}
