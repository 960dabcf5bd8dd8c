package stage

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/turtle"
	"github.com/sirupsen/logrus"
)

// Stage is the host loop: it binds one actor to one interpreter, turns
// button presses, keys and script steps into Run / Step / Reset, and draws
// the program panel and the actor canvas. Stage implements ebiten.Game.
type Stage struct {
	actor  *turtle.Actor
	interp *turtle.Interpreter
	cfg    RunConfig

	sprite   *ebiten.Image
	follower *Follower
	buttons  []Button
	split    splitter

	script          *Script
	pending         []Action
	screenshotQueue []string

	log *logrus.Entry
}

// New creates a stage for actor and interpreter. sprite may be nil, in which
// case a default marker is drawn.
func New(actor *turtle.Actor, interp *turtle.Interpreter, sprite *ebiten.Image, cfg RunConfig) *Stage {
	cfg = cfg.withDefaults()
	return &Stage{
		actor:    actor,
		interp:   interp,
		cfg:      cfg,
		sprite:   sprite,
		follower: NewFollower(actor, cfg.TweenDuration, nil),
		buttons:  topBarButtons(),
		log:      turtle.Logger().WithField("component", "stage"),
	}
}

// Actor returns the bound actor.
func (s *Stage) Actor() *turtle.Actor { return s.actor }

// Interpreter returns the bound interpreter.
func (s *Stage) Interpreter() *turtle.Interpreter { return s.interp }

// Config returns the effective configuration.
func (s *Stage) Config() RunConfig { return s.cfg }

// Follower returns the display follower.
func (s *Stage) Follower() *Follower { return s.follower }

// SetScript attaches an automation script. Its steps are consumed one per
// Update, before user input.
func (s *Stage) SetScript(script *Script) {
	s.script = script
}

// Queue schedules an action for the next Update.
func (s *Stage) Queue(a Action) {
	if a != ActionNone {
		s.pending = append(s.pending, a)
	}
}

// --- Actions ---

// Run resets the actor and the interpreter, then runs the program to
// completion. When RunConfig.RunBudget is set the run stops at the first
// step boundary past the budget.
func (s *Stage) Run() error {
	s.actor.ResetToInitial()
	s.interp.Reset()
	s.follower.Snap(s.actor.Position(), s.actor.Transform().Angle())

	ctx := context.Background()
	if s.cfg.RunBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RunBudget)
		defer cancel()
	}
	if err := s.interp.RunContext(ctx, s.actor); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	s.log.WithField("executed", s.interp.Executed()).Debug("program finished")
	return nil
}

// Step executes one command. Returns false once the program is finished.
func (s *Stage) Step() bool {
	return s.interp.Step(s.actor)
}

// Reset returns the actor and the interpreter to their initial state.
func (s *Stage) Reset() {
	s.actor.ResetToInitial()
	s.interp.Reset()
	s.follower.Snap(s.actor.Position(), s.actor.Transform().Angle())
}

// Apply performs a single action.
func (s *Stage) Apply(a Action) {
	switch a {
	case ActionRun:
		if err := s.Run(); err != nil {
			s.log.WithError(err).Warn("run stopped early")
		}
	case ActionStep:
		s.Step()
	case ActionReset:
		s.Reset()
	}
}

// --- ebiten.Game ---

// Update processes scripted and user input, then advances the display tween.
func (s *Stage) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.tick(dt, s.readInput())
	return nil
}

// tick is the input-independent half of Update.
func (s *Stage) tick(dt float32, input Action) {
	if s.script != nil {
		s.script.step(s)
	}
	s.Queue(input)
	for _, a := range s.pending {
		s.Apply(a)
	}
	s.pending = s.pending[:0]

	s.follower.Retarget(s.actor.Position(), s.actor.Transform().Angle())
	s.follower.Update(dt)
}

// readInput maps the mouse and keyboard to an action.
func (s *Stage) readInput() Action {
	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if s.dragSplitter(float64(mx), float64(my), justPressed, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)) {
		return ActionNone
	}
	if justPressed {
		if a := hitButton(s.buttons, float64(mx), float64(my)); a != ActionNone {
			return a
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return ActionRun
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyS):
		return ActionStep
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ActionReset
	}
	return ActionNone
}

// Draw renders the top bar, the program panel and the canvas, then flushes
// queued screenshots.
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.ClearColor.RGBA())
	s.drawButtons(screen)
	s.drawPanel(screen)
	s.drawSplitter(screen)
	s.drawCanvas(screen)
	s.flushScreenshots(screen)
}

// Layout returns the configured window size.
func (s *Stage) Layout(_, _ int) (int, int) {
	return s.cfg.Width, s.cfg.Height
}

// Run opens a window and runs the stage until it is closed.
func Run(s *Stage) error {
	ebiten.SetWindowTitle(s.cfg.Title)
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("run stage: %w", err)
	}
	return nil
}
