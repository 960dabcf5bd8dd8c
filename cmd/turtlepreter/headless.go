package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/turtle"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newHeadlessCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the program without a window and print the final actor state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative")
			}

			actor, root, err := a.build()
			if err != nil {
				return err
			}
			it := turtle.NewInterpreter(root)
			it.SetObserver(stepLogger(a.log))

			if steps == 0 {
				if err := it.RunContext(cmd.Context(), actor); err != nil {
					return err
				}
			} else {
				for i := 0; i < steps; i++ {
					if !it.Step(actor) {
						break
					}
				}
			}
			return writeReport(cmd.OutOrStdout(), a.cfg.Program, actor, it)
		},
	}
	cmd.Flags().IntP("steps", "n", 0, "Number of commands to execute (0 runs to completion)")
	return cmd
}

// stepLogger logs every executed command at debug level.
func stepLogger(log *logrus.Logger) turtle.Observer {
	return turtle.ObserverFunc(func(ev turtle.StepEvent) {
		log.WithFields(logrus.Fields{
			"step":    ev.Executed,
			"command": ev.Command.Describe(),
			"skipped": ev.Skipped,
		}).Debug("step")
	})
}

// writeReport prints the interpreter progress and the actor's final state.
func writeReport(w io.Writer, program string, a *turtle.Actor, it *turtle.Interpreter) error {
	pos := a.Position()
	lines := []string{
		fmt.Sprintf("program:  %s", program),
		fmt.Sprintf("actor:    %s (%s)", a.Name, a.Capabilities()),
		fmt.Sprintf("executed: %d", it.Executed()),
		fmt.Sprintf("finished: %t", it.IsFinished()),
		fmt.Sprintf("position: (%g, %g)", pos.X, pos.Y),
		fmt.Sprintf("rotation: %g", a.Transform().Angle()),
	}
	for _, r := range a.Resources() {
		lines = append(lines, fmt.Sprintf("%-9s %d/%d", r.Kind().String()+":", r.Remaining(), r.Full()))
	}
	if a.HasPath() {
		lines = append(lines, fmt.Sprintf("segments: %d", a.SegmentCount()))
		for i := 0; i < a.SegmentCount(); i++ {
			from, to := a.SegmentPoints(i)
			r, g, b, _ := a.SegmentColor(i).Bytes()
			lines = append(lines, fmt.Sprintf("  (%g, %g) -> (%g, %g) rgb(%d,%d,%d)", from.X, from.Y, to.X, to.Y, r, g, b))
		}
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
