// Package turtle is a small steppable interpreter for programs that drive a
// 2D actor.
//
// A program is a tree of [Node] values. Leaves are bound to a [Command];
// sequence nodes only order their children. An [Interpreter] walks the tree
// one command at a time against an [Actor], can run to completion, and can
// be reset to start over.
//
// # Quick start
//
//	actor := turtle.NewTurtle("turtle", 320, 320)
//	root := turtle.NewSequence(
//		turtle.NewLeaf(turtle.Jump(220, 220)),
//		turtle.NewLeaf(turtle.SetColor(turtle.ColorRed)),
//		turtle.NewLeaf(turtle.Jump(120, 220)),
//	)
//	it := turtle.NewInterpreter(root)
//	it.Step(actor)           // one command
//	it.RunToCompletion(actor) // the rest
//
//	actor.ResetToInitial()
//	it.Reset()
//
// # Actors and capabilities
//
// Every actor has a [Transform]. Extra capabilities are selected at
// construction with options: [WithPath] records traced segments,
// [WithStamina] and [WithOxygen] add depletable [Resource] counters. An
// actor may carry any combination of them.
//
// A command's CanExecute checks only that the actor exposes what the
// command needs. The interpreter always goes through [ExecuteGuarded]: a
// rejected command is logged and skipped, but still counts as a step.
// Resource commands such as [Run] and [Swim] pass the guard for any actor
// carrying the resource and do nothing once it is empty.
//
// # Traversal
//
// Each node owns a [Cursor]. A leaf's cursor returns to the parent; a
// sequence's cursor hands out each child once and then returns to the
// parent. Step skips sequence nodes transparently, so every call visits
// exactly one command until the tree is exhausted.
//
// The stage sub-package renders an actor with Ebitengine and provides the
// Run / Step / Reset host loop.
package turtle
