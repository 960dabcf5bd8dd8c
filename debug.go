package turtle

import "github.com/sirupsen/logrus"

// globalDebug enables construction-time tree checks in AddChild.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, AddChild warns
// about unusually deep trees and wide sequence nodes.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth measures the levels from the root of parent's tree to
// the deepest node under a freshly attached child. Trees built bottom-up
// attach whole subtrees, so the child's own height counts.
func debugCheckTreeDepth(parent, child *Node) {
	depth := parent.Depth() + 2 + subtreeHeight(child)
	if depth > debugMaxTreeDepth {
		logger.WithFields(logrus.Fields{
			"node":      child.ID,
			"depth":     depth,
			"threshold": debugMaxTreeDepth,
		}).Warn("turtle: tree depth exceeds threshold")
	}
}

// subtreeHeight returns the number of edges on the longest downward path
// from n.
func subtreeHeight(n *Node) int {
	h := 0
	n.Walk(func(_ *Node, depth int) {
		if depth > h {
			h = depth
		}
	})
	return h
}

// debugMaxChildCount is the child count past which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.WithFields(logrus.Fields{
			"node":      n.ID,
			"children":  len(n.children),
			"threshold": debugMaxChildCount,
		}).Warn("turtle: node child count exceeds threshold")
	}
}
