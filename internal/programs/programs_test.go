package programs

import (
	"io"
	"testing"

	"github.com/phanxgames/turtle"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	turtle.SetLogger(l)
	m.Run()
}

func run(t *testing.T, name string, o Options) (*turtle.Actor, *turtle.Interpreter) {
	t.Helper()
	a, root, err := Build(name, o)
	require.NoError(t, err)
	it := turtle.NewInterpreter(root)
	it.RunToCompletion(a)
	require.True(t, it.IsFinished())
	return a, it
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"square", "swimmer", "tortoise", "turtle"}, Names())
}

func TestBuildUnknown(t *testing.T) {
	_, _, err := Build("hare", Options{})
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestTurtleProgram(t *testing.T) {
	a, it := run(t, "turtle", Options{})

	assert.Equal(t, 5, it.Executed())
	assert.Equal(t, turtle.Vec2{X: 120, Y: 320}, a.Position())
	assert.InDelta(t, 1.57, a.Transform().Angle(), 1e-9)
	require.Equal(t, 3, a.SegmentCount())
	assert.Equal(t, turtle.DefaultPathColor, a.SegmentColor(0))
	assert.Equal(t, turtle.ColorRed, a.SegmentColor(2))
}

func TestSquareProgram(t *testing.T) {
	a, it := run(t, "square", Options{})

	assert.Equal(t, 7, it.Executed())
	assert.Equal(t, turtle.Vec2{X: 100, Y: 100}, a.Position())
	assert.Equal(t, 4, a.SegmentCount())
	assert.Equal(t, turtle.ColorWhite, a.SegmentColor(3))
}

func TestTortoiseProgram(t *testing.T) {
	a, it := run(t, "tortoise", Options{})

	assert.Equal(t, 5, it.Executed())
	assert.Equal(t, turtle.Vec2{X: 200, Y: 300}, a.Position())
	assert.Equal(t, 1, a.SegmentCount())
	assert.Equal(t, 0, a.Resource(turtle.Stamina).Remaining())
}

func TestTortoiseStaminaOverride(t *testing.T) {
	a, _ := run(t, "tortoise", Options{Stamina: 5})

	assert.Equal(t, turtle.Vec2{X: 200, Y: 200}, a.Position())
	assert.Equal(t, 2, a.Resource(turtle.Stamina).Remaining())
}

func TestSwimmerProgram(t *testing.T) {
	a, it := run(t, "swimmer", Options{})

	assert.Equal(t, 5, it.Executed())
	assert.Equal(t, turtle.Vec2{X: 150, Y: 250}, a.Position())
	assert.False(t, a.HasPath())
	assert.Equal(t, 0, a.Resource(turtle.Oxygen).Remaining())
}

func TestBuildStartOverride(t *testing.T) {
	x, y := 1.0, 2.0
	a, _, err := Build("turtle", Options{StartX: &x, StartY: &y})
	require.NoError(t, err)
	assert.Equal(t, turtle.Vec2{X: 1, Y: 2}, a.Position())
	assert.Equal(t, turtle.Vec2{X: 1, Y: 2}, a.InitialTranslation())
}

func TestBuildReturnsFreshTrees(t *testing.T) {
	_, r1, err := Build("square", Options{})
	require.NoError(t, err)
	_, r2, err := Build("square", Options{})
	require.NoError(t, err)
	assert.NotSame(t, r1, r2)
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("swimmer")
	require.True(t, ok)
	assert.Equal(t, "swimmer", p.Name)
	assert.NotEmpty(t, p.Description)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
