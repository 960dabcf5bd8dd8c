package turtle

import "testing"

// ---- Debug mode tests ------------------------------------------------------

func TestDebugModeWarnsOnDeepTree(t *testing.T) {
	hook := captureLog(t)
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	n := NewSequence()
	for range debugMaxTreeDepth {
		child := NewSequence()
		n.AddChild(child)
		n = child
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("warnings = %d, want 1", len(hook.Entries))
	}
	if got := hook.LastEntry().Data["depth"]; got != debugMaxTreeDepth+1 {
		t.Errorf("depth field = %v, want %d", got, debugMaxTreeDepth+1)
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	hook := captureLog(t)

	n := NewSequence()
	for range debugMaxTreeDepth + 4 {
		child := NewSequence()
		n.AddChild(child)
		n = child
	}
	if len(hook.Entries) != 0 {
		t.Errorf("warnings = %d, want 0 with debug mode off", len(hook.Entries))
	}
}

func TestDebugModeWarnsOnDeepTreeBuiltBottomUp(t *testing.T) {
	hook := captureLog(t)
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	n := NewLeaf(Move(1))
	for range 40 {
		n = NewSequence(n)
	}
	if got := n.Depth() + 1 + subtreeHeight(n); got != 41 {
		t.Fatalf("levels = %d, want 41", got)
	}
	if len(hook.Entries) == 0 {
		t.Fatal("expected a depth warning for a 41-level tree")
	}
	if got := hook.LastEntry().Data["depth"]; got != 41 {
		t.Errorf("last depth field = %v, want 41", got)
	}
}

func TestDebugModeShallowBottomUpIsSilent(t *testing.T) {
	hook := captureLog(t)
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	n := NewLeaf(Move(1))
	for range debugMaxTreeDepth - 1 {
		n = NewSequence(n)
	}
	if len(hook.Entries) != 0 {
		t.Errorf("warnings = %d, want 0 for a %d-level tree", len(hook.Entries), debugMaxTreeDepth)
	}
}

func TestSubtreeHeight(t *testing.T) {
	leaf := NewLeaf(Move(1))
	if got := subtreeHeight(leaf); got != 0 {
		t.Errorf("subtreeHeight(leaf) = %d, want 0", got)
	}
	root := NewSequence(NewLeaf(Move(1)), NewSequence(NewSequence(leaf)))
	if got := subtreeHeight(root); got != 3 {
		t.Errorf("subtreeHeight(root) = %d, want 3", got)
	}
}
