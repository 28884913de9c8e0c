package lambda

import "fmt"

// NodeID addresses a node in a Tree. Binder maps and rename plans refer to
// nodes by NodeID rather than by pointer, so replacing a subtree never leaves
// an alias into freed structure: a dropped node is marked dead and any later
// use of its id panics.
type NodeID int

// None is the NodeID of a missing node, e.g. the binder of a free variable.
const None NodeID = -1

type Kind int

const (
	VarNode Kind = iota
	AbsNode
	AppNode
)

func (k Kind) String() string {
	switch k {
	case VarNode:
		return "variable"
	case AbsNode:
		return "abstraction"
	case AppNode:
		return "application"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type node struct {
	kind Kind
	// name is the variable's name, or the abstraction's formal parameter.
	name string
	// left is the abstraction body or the applied function; right is the
	// argument.
	left, right NodeID
	parent      NodeID
	dead        bool

	free    map[string]struct{}
	binders map[string]NodeID
}

// Tree is the mutable form of a term: an arena of nodes with derived
// free-variable and binder annotations. A Tree is owned by one session and is
// not safe for concurrent use.
type Tree struct {
	nodes   []node
	root    NodeID
	pending *Reduction
}

// NewTree copies term into a fresh arena and analyzes it.
func NewTree(term Term) *Tree {
	t := &Tree{}
	t.root = t.build(term, None)
	t.Analyze()
	return t
}

func (t *Tree) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) build(term Term, parent NodeID) NodeID {
	switch term := term.(type) {
	case Var:
		return t.add(node{kind: VarNode, name: term.Name, left: None, right: None, parent: parent})
	case Abs:
		id := t.add(node{kind: AbsNode, name: term.Param, right: None, parent: parent})
		body := t.build(term.Body, id)
		t.nodes[id].left = body
		return id
	case App:
		id := t.add(node{kind: AppNode, parent: parent})
		fn := t.build(term.Fn, id)
		arg := t.build(term.Arg, id)
		t.nodes[id].left, t.nodes[id].right = fn, arg
		return id
	}
	panic(fmt.Sprintf("lambda: unknown term %T", term))
}

func (t *Tree) node(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("lambda: node %d out of range", id))
	}
	n := &t.nodes[id]
	if n.dead {
		panic(fmt.Sprintf("lambda: node %d is stale", id))
	}
	return n
}

func (t *Tree) Root() NodeID { return t.root }

// Live reports whether id still names a node of the tree.
func (t *Tree) Live(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && !t.nodes[id].dead
}

func (t *Tree) Kind(id NodeID) Kind { return t.node(id).kind }

// Name is a variable's name or an abstraction's formal parameter.
func (t *Tree) Name(id NodeID) string {
	n := t.node(id)
	if n.kind == AppNode {
		panic(fmt.Sprintf("lambda: node %d is an application", id))
	}
	return n.name
}

func (t *Tree) Body(id NodeID) NodeID { return t.child(id, AbsNode, true) }
func (t *Tree) Fn(id NodeID) NodeID   { return t.child(id, AppNode, true) }
func (t *Tree) Arg(id NodeID) NodeID  { return t.child(id, AppNode, false) }

func (t *Tree) child(id NodeID, kind Kind, left bool) NodeID {
	n := t.node(id)
	if n.kind != kind {
		panic(fmt.Sprintf("lambda: node %d is a %v, not a %v", id, n.kind, kind))
	}
	if left {
		return n.left
	}
	return n.right
}

// Parent returns None for the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.node(id).parent }

// Term exports the subtree rooted at id as an independent value. Annotations
// are not part of the copy.
func (t *Tree) Term(id NodeID) Term {
	n := t.node(id)
	switch n.kind {
	case VarNode:
		return Var{n.name}
	case AbsNode:
		return Abs{n.name, t.Term(n.left)}
	default:
		return App{t.Term(n.left), t.Term(n.right)}
	}
}

func (t *Tree) String() string { return t.Term(t.root).String() }

// Clone returns an independent copy of the whole tree, e.g. for a history
// snapshot before a reduction. Node ids are not preserved.
func (t *Tree) Clone() *Tree { return NewTree(t.Term(t.root)) }

// copySubtree deep-copies src under parent without annotations.
func (t *Tree) copySubtree(src, parent NodeID) NodeID {
	n := *t.node(src)
	switch n.kind {
	case VarNode:
		return t.add(node{kind: VarNode, name: n.name, left: None, right: None, parent: parent})
	case AbsNode:
		id := t.add(node{kind: AbsNode, name: n.name, right: None, parent: parent})
		body := t.copySubtree(n.left, id)
		t.nodes[id].left = body
		return id
	default:
		id := t.add(node{kind: AppNode, parent: parent})
		fn := t.copySubtree(n.left, id)
		arg := t.copySubtree(n.right, id)
		t.nodes[id].left, t.nodes[id].right = fn, arg
		return id
	}
}

// replace installs repl where old was.
func (t *Tree) replace(old, repl NodeID) {
	parent := t.node(old).parent
	t.nodes[repl].parent = parent
	if parent == None {
		t.root = repl
		return
	}
	p := t.node(parent)
	if p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}

// kill marks the subtree rooted at id dead.
func (t *Tree) kill(id NodeID) {
	n := t.node(id)
	n.dead = true
	switch n.kind {
	case AbsNode:
		t.kill(n.left)
	case AppNode:
		t.kill(n.left)
		t.kill(n.right)
	}
}

type snapshot struct {
	nodes []node
	root  NodeID
}

func (t *Tree) snapshot() snapshot {
	nodes := make([]node, len(t.nodes))
	copy(nodes, t.nodes)
	for i := range nodes {
		nodes[i].free, nodes[i].binders = nil, nil
	}
	return snapshot{nodes, t.root}
}

func (t *Tree) restore(s snapshot) {
	t.nodes, t.root = s.nodes, s.root
	t.Analyze()
}
