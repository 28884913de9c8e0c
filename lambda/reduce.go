package lambda

import "fmt"

// CommitReduction beta-reduces redex (λx.B) A in place and returns the
// replacement node, already installed where the redex was. Each free x in B
// receives its own copy of A. The redex, its abstraction and A become stale.
//
// Capturing binders must have been renamed first (see PlanReduction);
// CommitReduction does not check. It panics if redex is not a live redex or
// if a Reduction is open on the tree: use its Commit instead.
func (t *Tree) CommitReduction(redex NodeID) NodeID {
	if t.pending != nil {
		panic("lambda: CommitReduction called while a Reduction is open")
	}
	return t.commit(redex)
}

func (t *Tree) commit(redex NodeID) NodeID {
	if !t.IsRedex(redex) {
		panic(fmt.Sprintf("lambda: node %d is not a redex", redex))
	}
	abs, arg := t.node(redex).left, t.node(redex).right
	x, body := t.node(abs).name, t.node(abs).left

	result := t.substitute(body, x, func(parent NodeID) NodeID {
		return t.copySubtree(arg, parent)
	})
	t.replace(redex, result)
	t.kill(arg)
	t.nodes[abs].dead = true
	t.nodes[redex].dead = true
	t.Analyze()
	return result
}

// substitute replaces every free occurrence of x in the subtree at id with a
// node produced by repl, and returns the subtree's new root. Abstractions
// that rebind x are left untouched: occurrences beneath them are bound.
func (t *Tree) substitute(id NodeID, x string, repl func(parent NodeID) NodeID) NodeID {
	n := *t.node(id)
	switch n.kind {
	case VarNode:
		if n.name != x {
			return id
		}
		t.nodes[id].dead = true
		return repl(n.parent)
	case AbsNode:
		if n.name == x {
			return id
		}
		body := t.substitute(n.left, x, repl)
		t.nodes[id].left = body
		t.nodes[body].parent = id
	case AppNode:
		fn := t.substitute(n.left, x, repl)
		arg := t.substitute(n.right, x, repl)
		t.nodes[id].left, t.nodes[id].right = fn, arg
		t.nodes[fn].parent, t.nodes[arg].parent = id, id
	}
	return id
}
