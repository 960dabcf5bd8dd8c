// Package programs holds the built-in demo programs the command line can
// run by name.
package programs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/phanxgames/turtle"
)

// ErrUnknownProgram is returned by Build for a name not in the catalog.
var ErrUnknownProgram = errors.New("unknown program")

// Options override a program's defaults. Zero values keep the default.
type Options struct {
	StartX, StartY *float64
	Stamina        int
	Oxygen         int
}

// Program is one catalog entry.
type Program struct {
	Name        string
	Description string

	x, y  float64
	actor func(x, y float64, o Options) *turtle.Actor
	tree  func() *turtle.Node
}

var catalog = map[string]Program{
	"turtle": {
		Name:        "turtle",
		Description: "path-drawing turtle: three jumps, a color change and a turn",
		x:           320,
		y:           320,
		actor: func(x, y float64, _ Options) *turtle.Actor {
			return turtle.NewTurtle("turtle", x, y)
		},
		tree: func() *turtle.Node {
			return turtle.NewSequence(
				turtle.NewLeaf(turtle.Jump(220, 220)),
				turtle.NewLeaf(turtle.SetColor(turtle.ColorRed)),
				turtle.NewLeaf(turtle.Jump(120, 220)),
				turtle.NewLeaf(turtle.Jump(120, 320)),
				turtle.NewLeaf(turtle.Rotate(1.57)),
			)
		},
	},
	"square": {
		Name:        "square",
		Description: "nested sequences tracing a colored square with moves",
		x:           100,
		y:           100,
		actor: func(x, y float64, _ Options) *turtle.Actor {
			return turtle.NewTurtle("square", x, y)
		},
		tree: func() *turtle.Node {
			side := func(c turtle.Color, x, y float64) *turtle.Node {
				return turtle.NewSequence(
					turtle.NewLeaf(turtle.SetColor(c)),
					turtle.NewLeaf(turtle.Jump(x, y)),
				)
			}
			return turtle.NewSequence(
				turtle.NewLeaf(turtle.Move(150)),
				side(turtle.ColorRed, 250, 250),
				side(turtle.ColorBlue, 100, 250),
				side(turtle.ColorWhite, 100, 100),
				turtle.NewSequence(),
			)
		},
	},
	"tortoise": {
		Name:        "tortoise",
		Description: "path plus stamina: runs until it is exhausted",
		x:           200,
		y:           200,
		actor: func(x, y float64, o Options) *turtle.Actor {
			stamina := o.Stamina
			if stamina == 0 {
				stamina = 2
			}
			return turtle.NewTortoise("tortoise", x, y, stamina)
		},
		tree: func() *turtle.Node {
			return turtle.NewSequence(
				turtle.NewLeaf(turtle.Jump(300, 200)),
				turtle.NewLeaf(turtle.Run(300, 300)),
				turtle.NewLeaf(turtle.Run(200, 300)),
				turtle.NewLeaf(turtle.Run(200, 200)),
				turtle.NewLeaf(turtle.Swim(0, 0)),
			)
		},
	},
	"swimmer": {
		Name:        "swimmer",
		Description: "oxygen only: swims while it can breathe, cannot draw",
		x:           150,
		y:           150,
		actor: func(x, y float64, o Options) *turtle.Actor {
			oxygen := o.Oxygen
			if oxygen == 0 {
				oxygen = 3
			}
			return turtle.NewActor("swimmer", x, y, turtle.WithOxygen(oxygen))
		},
		tree: func() *turtle.Node {
			return turtle.NewSequence(
				turtle.NewLeaf(turtle.Swim(250, 150)),
				turtle.NewLeaf(turtle.Swim(250, 250)),
				turtle.NewLeaf(turtle.Jump(0, 0)),
				turtle.NewLeaf(turtle.Swim(150, 250)),
				turtle.NewLeaf(turtle.Swim(150, 150)),
			)
		},
	},
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Program, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Build creates a fresh actor and a fresh command tree for the named
// program. Every call returns new nodes, so trees are never shared.
func Build(name string, o Options) (*turtle.Actor, *turtle.Node, error) {
	p, ok := catalog[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	x, y := p.x, p.y
	if o.StartX != nil {
		x = *o.StartX
	}
	if o.StartY != nil {
		y = *o.StartY
	}
	return p.actor(x, y, o), p.tree(), nil
}
