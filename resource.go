package turtle

// Resource is a bounded counter an actor spends on gated commands.
// The counter never drops below zero and never exceeds its full value.
type Resource struct {
	kind    ResourceKind
	current int
	full    int
}

func newResource(kind ResourceKind, full int) *Resource {
	if full < 0 {
		full = 0
	}
	return &Resource{kind: kind, current: full, full: full}
}

// Kind returns which named resource this counter tracks.
func (r *Resource) Kind() ResourceKind { return r.kind }

// Remaining returns the current amount.
func (r *Resource) Remaining() int { return r.current }

// Full returns the capacity the resource refills to.
func (r *Resource) Full() int { return r.full }

// Has reports whether at least one unit remains.
func (r *Resource) Has() bool {
	return r.current > 0
}

// Consume spends one unit. Consuming an empty resource is a no-op.
func (r *Resource) Consume() {
	if r.current > 0 {
		r.current--
	}
}

// Refill restores the resource to full.
func (r *Resource) Refill() {
	r.current = r.full
}
