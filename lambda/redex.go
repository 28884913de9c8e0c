package lambda

import "fmt"

// Strategy selects which redex is reduced next.
type Strategy int

const (
	// Outermost is normal order: the leftmost redex not contained in
	// another redex.
	Outermost Strategy = iota
	// Innermost is applicative order: the leftmost redex containing no
	// other redex.
	Innermost
)

func (s Strategy) String() string {
	switch s {
	case Outermost:
		return "leftmost-outermost"
	case Innermost:
		return "leftmost-innermost"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// IsRedex reports whether id is an application of an abstraction.
func (t *Tree) IsRedex(id NodeID) bool {
	n := t.node(id)
	return n.kind == AppNode && t.node(n.left).kind == AbsNode
}

// FindRedex returns the next redex under s, or None if the tree is in normal
// form.
func (t *Tree) FindRedex(s Strategy) NodeID {
	if s == Innermost {
		return t.innermost(t.root)
	}
	return t.outermost(t.root)
}

func (t *Tree) outermost(id NodeID) NodeID {
	if t.IsRedex(id) {
		return id
	}
	return t.searchChildren(id, t.outermost)
}

func (t *Tree) innermost(id NodeID) NodeID {
	if deeper := t.searchChildren(id, t.innermost); deeper != None {
		return deeper
	}
	if t.IsRedex(id) {
		return id
	}
	return None
}

func (t *Tree) searchChildren(id NodeID, search func(NodeID) NodeID) NodeID {
	n := t.node(id)
	switch n.kind {
	case AbsNode:
		return search(n.left)
	case AppNode:
		if found := search(n.left); found != None {
			return found
		}
		return search(n.right)
	}
	return None
}

// Redexes lists every redex in the subtree at id in leftmost-outermost order.
func (t *Tree) Redexes(id NodeID) []NodeID {
	var found []NodeID
	var walk func(NodeID)
	walk = func(id NodeID) {
		n := t.node(id)
		if t.IsRedex(id) {
			found = append(found, id)
		}
		switch n.kind {
		case AbsNode:
			walk(n.left)
		case AppNode:
			walk(n.left)
			walk(n.right)
		}
	}
	walk(id)
	return found
}
