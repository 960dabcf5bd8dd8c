package turtle

import (
	"context"
	"fmt"
)

// StepEvent describes one command visited by the interpreter.
type StepEvent struct {
	Node     *Node
	Command  Command
	Actor    *Actor
	Skipped  bool // the guard rejected the actor; Execute was not called
	Executed int  // executed-command count including this step
}

// Observer is the optional bridge notified after every visited command.
type Observer interface {
	OnStep(event StepEvent)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(event StepEvent)

// OnStep calls f(event).
func (f ObserverFunc) OnStep(event StepEvent) { f(event) }

// Interpreter walks a command tree one command at a time. It holds the node
// to visit next and the number of commands visited since the last reset.
//
// The interpreter does not own the tree or the actor. It is not safe for
// concurrent use.
type Interpreter struct {
	root     *Node
	current  *Node
	executed int
	observer Observer
}

// NewInterpreter creates an interpreter positioned at root.
func NewInterpreter(root *Node) *Interpreter {
	return &Interpreter{root: root, current: root}
}

// SetObserver sets the optional step observer. Pass nil to remove it.
func (it *Interpreter) SetObserver(o Observer) {
	it.observer = o
}

// Root returns the program root.
func (it *Interpreter) Root() *Node {
	return it.root
}

// Current returns the node the next Step starts from, or nil when finished.
// After at least one Step this is the next leaf to execute; right after
// construction or Reset it is the root.
func (it *Interpreter) Current() *Node {
	return it.current
}

// Executed returns the number of commands visited since the last reset,
// including commands whose guard rejected the actor.
func (it *Interpreter) Executed() int {
	return it.executed
}

// IsFinished reports whether traversal has ended.
func (it *Interpreter) IsFinished() bool {
	return it.current == nil
}

// HasExecutedAnything reports whether at least one command was visited
// since the last reset.
func (it *Interpreter) HasExecutedAnything() bool {
	return it.executed > 0
}

// Step advances past exactly one command, executing it against a through
// ExecuteGuarded. Sequence nodes on the way are skipped without counting,
// both before the command and after it, so the interpreter is finished as
// soon as the last command has run. A command rejected by its guard still
// counts as executed. Returns false when there was no command left to
// visit. Step on a finished interpreter is a no-op.
func (it *Interpreter) Step(a *Actor) bool {
	if it.current == nil {
		return false
	}

	it.settle()
	if it.current == nil {
		return false
	}

	node := it.current
	ran := ExecuteGuarded(node.command, a)
	it.executed++
	it.current = node.cursor.Next()
	it.settle()

	if it.observer != nil {
		it.observer.OnStep(StepEvent{
			Node:     node,
			Command:  node.command,
			Actor:    a,
			Skipped:  !ran,
			Executed: it.executed,
		})
	}
	return true
}

// settle advances through sequence nodes until current is a leaf or nil.
// Each visited node's cursor is asked exactly once.
func (it *Interpreter) settle() {
	for it.current != nil && it.current.command == nil {
		it.current = it.current.cursor.Next()
	}
}

// RunToCompletion steps until the interpreter is finished.
func (it *Interpreter) RunToCompletion(a *Actor) {
	for it.current != nil {
		it.Step(a)
	}
}

// RunContext steps until the interpreter is finished or ctx is done. The
// context is checked before every step; on cancellation the interpreter is
// left where it stopped and can be resumed.
func (it *Interpreter) RunContext(ctx context.Context, a *Actor) error {
	for it.current != nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("turtle: run interrupted after %d commands: %w", it.executed, err)
		}
		it.Step(a)
	}
	return nil
}

// Reset moves back to the root, rewinds every cursor in the tree and clears
// the executed count. The actor is not touched; callers reset it separately.
func (it *Interpreter) Reset() {
	it.current = it.root
	it.executed = 0
	if it.root == nil {
		return
	}
	it.root.Walk(func(n *Node, _ int) {
		n.cursor.Reset()
	})
}
