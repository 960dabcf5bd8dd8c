package ecs

import (
	"github.com/phanxgames/turtle"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Step is the value published for each executed command. It carries copies,
// not tree pointers, so systems can hold on to it.
type Step struct {
	NodeID   uint32
	Actor    string
	Command  string
	Skipped  bool
	Executed int
	Position turtle.Vec2
	Rotation float64
}

// ActorState mirrors an actor's placement and path length.
type ActorState struct {
	Name     string
	Position turtle.Vec2
	Rotation float64
	Segments int
}

// StepEventType is the Donburi event type for interpreter steps.
var StepEventType = events.NewEventType[Step]()

// ActorComponent holds the mirrored state of each observed actor.
var ActorComponent = donburi.NewComponentType[ActorState]()

// DonburiObserver is a turtle.Observer backed by a Donburi world.
type DonburiObserver struct {
	world    donburi.World
	entities map[*turtle.Actor]donburi.Entity
}

// NewDonburiObserver creates an observer publishing to world. Steps are
// queued; consume them with events.Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) *DonburiObserver {
	return &DonburiObserver{
		world:    world,
		entities: make(map[*turtle.Actor]donburi.Entity),
	}
}

// OnStep implements turtle.Observer.
func (o *DonburiObserver) OnStep(ev turtle.StepEvent) {
	st := Step{
		Command:  ev.Command.Describe(),
		Skipped:  ev.Skipped,
		Executed: ev.Executed,
	}
	if ev.Node != nil {
		st.NodeID = ev.Node.ID
	}
	if ev.Actor != nil {
		st.Actor = ev.Actor.Name
		st.Position = ev.Actor.Position()
		st.Rotation = ev.Actor.Transform().Angle()
		o.mirror(ev.Actor)
	}
	StepEventType.Publish(o.world, st)
}

// Entity returns the entity mirroring a, creating it on first use.
func (o *DonburiObserver) Entity(a *turtle.Actor) donburi.Entity {
	if e, ok := o.entities[a]; ok && o.world.Valid(e) {
		return e
	}
	e := o.world.Create(ActorComponent)
	o.entities[a] = e
	return e
}

func (o *DonburiObserver) mirror(a *turtle.Actor) {
	entry := o.world.Entry(o.Entity(a))
	ActorComponent.SetValue(entry, ActorState{
		Name:     a.Name,
		Position: a.Position(),
		Rotation: a.Transform().Angle(),
		Segments: a.SegmentCount(),
	})
}
