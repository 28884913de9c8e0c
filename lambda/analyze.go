package lambda

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Analyze recomputes the free-variable set and binder map of every node.
// It is idempotent and may be called after any mutation.
func (t *Tree) Analyze() {
	t.analyzeFrom(t.root, map[string]NodeID{})
}

// analyzeFrom re-derives the annotations of the subtree at id, given the
// binder map in effect at id.
func (t *Tree) analyzeFrom(id NodeID, scope map[string]NodeID) {
	t.freeVars(id)
	t.bind(id, scope)
}

func (t *Tree) freeVars(id NodeID) map[string]struct{} {
	n := t.node(id)
	switch n.kind {
	case VarNode:
		n.free = map[string]struct{}{n.name: {}}
	case AbsNode:
		free := maps.Clone(t.freeVars(n.left))
		delete(free, n.name)
		n.free = free
	case AppNode:
		free := maps.Clone(t.freeVars(n.left))
		for name := range t.freeVars(n.right) {
			free[name] = struct{}{}
		}
		n.free = free
	}
	return n.free
}

// bind threads the map from each visible name to its nearest enclosing
// abstraction down the tree. Maps are shared between siblings and never
// mutated after assignment.
func (t *Tree) bind(id NodeID, scope map[string]NodeID) {
	n := t.node(id)
	n.binders = scope
	switch n.kind {
	case AbsNode:
		inner := maps.Clone(scope)
		inner[n.name] = id
		t.bind(n.left, inner)
	case AppNode:
		t.bind(n.left, scope)
		t.bind(n.right, scope)
	}
}

// FreeVariables returns the sorted names occurring free in the subtree at id.
func (t *Tree) FreeVariables(id NodeID) []string {
	names := maps.Keys(t.node(id).free)
	slices.Sort(names)
	return names
}

// IsFree reports whether name occurs free in the subtree at id.
func (t *Tree) IsFree(id NodeID, name string) bool {
	_, ok := t.node(id).free[name]
	return ok
}

// BinderOf returns the nearest abstraction enclosing id that binds name, or
// None when name is free at the root.
func (t *Tree) BinderOf(id NodeID, name string) NodeID {
	if b, ok := t.node(id).binders[name]; ok {
		return b
	}
	return None
}

// Scope returns a copy of the binder map at id.
func (t *Tree) Scope(id NodeID) map[string]NodeID {
	return maps.Clone(t.node(id).binders)
}
