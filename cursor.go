package turtle

import "fmt"

// Cursor decides which node the interpreter visits after it has finished
// visiting the cursor's node. Every node owns exactly one cursor.
type Cursor interface {
	// Next returns the node to visit next, or nil when traversal ends.
	Next() *Node
	// Reset returns the cursor to its initial state.
	Reset()
	String() string
}

// upCursor always returns to the parent. It has no state.
type upCursor struct {
	node *Node
}

func (c *upCursor) Next() *Node {
	return c.node.parent
}

func (c *upCursor) Reset() {}

func (c *upCursor) String() string {
	return "Cursor: Up"
}

// sequentialCursor yields each child once, in order, then the parent.
type sequentialCursor struct {
	node  *Node
	index int
}

func (c *sequentialCursor) Next() *Node {
	if c.index < len(c.node.children) {
		child := c.node.children[c.index]
		c.index++
		return child
	}
	return c.node.parent
}

func (c *sequentialCursor) Reset() {
	c.index = 0
}

// Index returns how many children have been handed out since the last reset.
func (c *sequentialCursor) Index() int {
	return c.index
}

func (c *sequentialCursor) String() string {
	return fmt.Sprintf("Cursor: Sequential %d/%d", c.index, len(c.node.children))
}

// Indexer is implemented by cursors that track a position among children.
type Indexer interface {
	Index() int
}
