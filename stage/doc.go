// Package stage hosts a turtle program in an ebiten window.
//
// The window has three regions: a top bar with Run, Step and Reset buttons,
// a program panel that lists the command tree with the interpreter's next
// node highlighted, and a canvas where the actor and its traced path are
// drawn. Coordinates in the model are relative to the canvas' top-left
// corner.
//
//	actor := turtle.NewTurtle("turtle", 120, 120)
//	root := turtle.NewSequence(turtle.NewLeaf(turtle.Move(100)))
//	st := stage.New(actor, turtle.NewInterpreter(root), nil, stage.RunConfig{})
//	if err := stage.Run(st); err != nil {
//		log.Fatal(err)
//	}
//
// Keys: R runs, S or Space steps, Backspace or Escape resets.
//
// # Automation
//
// A [Script] replays actions frame by frame and can capture screenshots,
// which makes visual checks reproducible without a user at the keyboard.
package stage
