package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/turtle"
	"github.com/phanxgames/turtle/internal/config"
	"github.com/phanxgames/turtle/internal/logging"
	"github.com/phanxgames/turtle/internal/programs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "turtlepreter",
		Short: "Turtlepreter steps through command trees that drive 2D actors",
		Long: `Turtlepreter runs built-in command-tree programs against an actor,
either in a window with Run / Step / Reset controls or headless.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringP("program", "p", "turtle", "Program to run (see 'programs')")
	root.PersistentFlags().String("log-level", "", "Log level (overrides LOG_LEVEL)")
	root.PersistentFlags().Bool("debug", false, "Warn about suspicious tree shapes while building")

	root.AddCommand(
		newWindowCmd(a),
		newHeadlessCmd(a),
		newListCmd(a),
		newProgramsCmd(),
	)
	return root
}

// init loads the environment, applies flag overrides and installs the
// logger used by the interpreter.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("program") {
		cfg.Program, _ = flags.GetString("program")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	turtle.SetLogger(log)
	turtle.SetDebugMode(cfg.Debug)

	a.cfg = cfg
	a.log = log
	return nil
}

// build creates the configured program's actor and tree.
func (a *app) build() (*turtle.Actor, *turtle.Node, error) {
	return programs.Build(a.cfg.Program, programs.Options{
		StartX:  a.cfg.StartX,
		StartY:  a.cfg.StartY,
		Stamina: a.cfg.Stamina,
		Oxygen:  a.cfg.Oxygen,
	})
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
