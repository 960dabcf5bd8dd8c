package turtle

// --- ID counter ---

// nodeIDCounter is a plain counter. Trees are built on one goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is one point in a program. A leaf node is bound to a command and uses
// an up cursor; a sequence node has no command and visits its children in
// order through a sequential cursor.
//
// A node owns its children and its cursor. The command is only referenced:
// whoever assembles the tree owns the commands, which may be shared between
// leaves.
type Node struct {
	ID uint32

	parent   *Node
	children []*Node

	command Command
	cursor  Cursor
}

// NewLeaf creates a leaf node bound to cmd.
// Panics if cmd is nil.
func NewLeaf(cmd Command) *Node {
	if cmd == nil {
		panic("turtle: leaf node requires a command")
	}
	n := &Node{ID: nextNodeID(), command: cmd}
	n.cursor = &upCursor{node: n}
	return n
}

// NewSequence creates a structural node and attaches children in order.
func NewSequence(children ...*Node) *Node {
	n := &Node{ID: nextNodeID()}
	n.cursor = &sequentialCursor{node: n}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children and sets its parent.
// A nil child is ignored. Panics if n is a leaf, if child is already
// attached somewhere, or if child is an ancestor of n (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	if n.command != nil {
		panic("turtle: cannot add a child to a leaf node")
	}
	if child.parent != nil {
		panic("turtle: child is already attached to a parent")
	}
	if isAncestor(child, n) {
		panic("turtle: adding child would create a cycle")
	}
	child.parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(n, child)
		debugCheckChildCount(n)
	}
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Command returns the bound command, or nil for a sequence node.
func (n *Node) Command() Command {
	return n.command
}

// Cursor returns the node's traversal cursor.
func (n *Node) Cursor() Cursor {
	return n.cursor
}

// IsLeaf reports whether the node is bound to a command.
func (n *Node) IsLeaf() bool {
	return n.command != nil
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// String renders the node for a program view, e.g.
// "Command: Jump to [220;220] Cursor: Up".
func (n *Node) String() string {
	var s string
	if n.command != nil {
		s = "Command: " + n.command.Describe()
	} else {
		s = "No command"
	}
	if n.cursor != nil {
		s += " " + n.cursor.String()
	}
	return s
}

// --- Traversal helpers ---

// Walk calls fn for n and every descendant, depth-first in child order.
// depth is 0 for n.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// CountLeaves returns the number of leaf nodes in the subtree rooted at n.
func (n *Node) CountLeaves() int {
	count := 0
	n.Walk(func(node *Node, _ int) {
		if node.IsLeaf() {
			count++
		}
	})
	return count
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
