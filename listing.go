package turtle

import (
	"fmt"
	"io"
	"strings"
)

// CommandListing returns the script line for cmd. Commands that do not
// implement Lister fall back to their description.
func CommandListing(cmd Command) string {
	if l, ok := cmd.(Lister); ok {
		return l.Listing()
	}
	return cmd.Describe()
}

// WriteListing writes the program rooted at root, one line per node,
// indented two spaces per level. Sequence nodes print as "seq {" / "}".
func WriteListing(w io.Writer, root *Node) error {
	if root == nil {
		return nil
	}
	return writeListing(w, root, 0)
}

func writeListing(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	if n.IsLeaf() {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, CommandListing(n.command)); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w, "%sseq {\n", indent); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	for _, child := range n.children {
		if err := writeListing(w, child, depth+1); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s}\n", indent); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}

// Listing returns the program rooted at root as a string.
func Listing(root *Node) string {
	var b strings.Builder
	_ = WriteListing(&b, root)
	return b.String()
}
