package turtle

import "github.com/sirupsen/logrus"

// Command is a unit of behavior bound to a leaf node.
//
// CanExecute checks only that the actor exposes the capabilities the command
// needs. Execute mutates the actor and never validates; callers go through
// ExecuteGuarded instead of calling Execute directly.
type Command interface {
	Execute(a *Actor)
	CanExecute(a *Actor) bool
	Describe() string
}

// Lister is implemented by commands that can render themselves as a single
// script line, e.g. "jump(220,220)".
type Lister interface {
	Listing() string
}

// ExecuteGuarded runs cmd against a when the guard allows it. A failed guard
// is reported on the package logger and is not an error. Returns whether
// Execute was called.
func ExecuteGuarded(cmd Command, a *Actor) bool {
	if cmd.CanExecute(a) {
		cmd.Execute(a)
		return true
	}
	logger.WithFields(logrus.Fields{
		"command": cmd.Describe(),
		"actor":   a.Name,
		"caps":    a.Capabilities(),
	}).Warn("turtle: command cannot be executed on this actor, skipped")
	return false
}

// AnyActor can be embedded in a command that applies to every actor.
type AnyActor struct{}

// CanExecute always returns true.
func (AnyActor) CanExecute(*Actor) bool { return true }

// CommandFunc adapts a plain function into a Command that applies to every
// actor. Name is returned by Describe.
type CommandFunc struct {
	AnyActor
	Name string
	Fn   func(a *Actor)
}

// Execute calls Fn when set.
func (c *CommandFunc) Execute(a *Actor) {
	if c.Fn != nil {
		c.Fn(a)
	}
}

// Describe returns Name.
func (c *CommandFunc) Describe() string {
	return c.Name
}
