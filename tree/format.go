package tree

import (
	"fmt"
	"io"
	"strings"
)

// Format renders the subtree rooted at n, one key per line.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
//
// If withHeight is true each key is followed by its cached height,
// like "4 (h=2)". An empty tree formats as the empty string.
func Format[K, V any](n *Node[K, V], withHeight bool) string {
	var sb strings.Builder
	Fprint(&sb, n, withHeight)
	return sb.String()
}

// Fprint writes the rendering of Format to w.
func Fprint[K, V any](w io.Writer, n *Node[K, V], withHeight bool) error {
	if n == nil {
		return nil
	}
	p := printer[K, V]{w: w, withHeight: withHeight}
	p.line(n, "")
	p.children(n, "")
	return p.err
}

type printer[K, V any] struct {
	w          io.Writer
	withHeight bool
	err        error
}

func (p *printer[K, V]) line(n *Node[K, V], lead string) {
	if p.err != nil {
		return
	}
	if p.withHeight {
		_, p.err = fmt.Fprintf(p.w, "%s%v (h=%d)\n", lead, n.Key, n.Height)
	} else {
		_, p.err = fmt.Fprintf(p.w, "%s%v\n", lead, n.Key)
	}
}

// children prints the subtrees of n. indent is what every line below
// n starts with; each level adds a rail if a sibling follows.
func (p *printer[K, V]) children(n *Node[K, V], indent string) {
	if n.Left != nil {
		if n.Right != nil {
			p.child(n.Left, indent, "├─L─", "│   ")
		} else {
			p.child(n.Left, indent, "└─L─", "    ")
		}
	}
	if n.Right != nil {
		p.child(n.Right, indent, "└─R─", "    ")
	}
}

func (p *printer[K, V]) child(n *Node[K, V], indent, branch, rail string) {
	p.line(n, indent+branch)
	p.children(n, indent+rail)
}
