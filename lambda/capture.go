package lambda

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// RenamePlan is one pending alpha-conversion: the abstraction Binder, whose
// formal parameter is currently Name, must be renamed to a name outside
// Forbidden before Redex can be reduced. Forbidden describes the tree when
// the plan was made; ApplyRename checks against the tree as it is.
type RenamePlan struct {
	Redex     NodeID
	Binder    NodeID
	Name      string
	Forbidden []string
}

// PlanReduction returns the binders inside the body of redex (λx.B) A that
// would capture a free variable of A, in pre-order. An empty plan means the
// redex can be committed as is.
//
// Only subtrees where x still occurs free are searched: elsewhere nothing
// gets substituted. A binder found this way does not stop the search, since
// λx.λy.λy.x rebinds y twice on the path to x.
func (t *Tree) PlanReduction(redex NodeID) []RenamePlan {
	if !t.IsRedex(redex) {
		panic(fmt.Sprintf("lambda: node %d is not a redex", redex))
	}
	abs, arg := t.node(redex).left, t.node(redex).right
	x, body := t.node(abs).name, t.node(abs).left
	argFree := t.node(arg).free
	if len(argFree) == 0 {
		return nil
	}

	var binders []NodeID
	var search func(NodeID)
	search = func(id NodeID) {
		n := t.node(id)
		if _, ok := n.free[x]; !ok {
			return
		}
		switch n.kind {
		case AbsNode:
			if _, ok := argFree[n.name]; ok {
				binders = append(binders, id)
			}
			search(n.left)
		case AppNode:
			search(n.left)
			search(n.right)
		}
	}
	search(body)

	return lo.Map(binders, func(b NodeID, _ int) RenamePlan {
		return RenamePlan{
			Redex:     redex,
			Binder:    b,
			Name:      t.node(b).name,
			Forbidden: t.forbiddenNames(b, abs, x, argFree),
		}
	})
}

// forbiddenNames collects the names binder b may not be renamed to:
// names bound between b and any occurrence of x (bound by redexAbs) or of
// b's own parameter beneath it, the free variables of b's body, and the free
// variables of the argument.
func (t *Tree) forbiddenNames(b, redexAbs NodeID, x string, argFree map[string]struct{}) []string {
	bn := t.node(b)
	forbidden := make(map[string]struct{})
	for name := range argFree {
		forbidden[name] = struct{}{}
	}
	for name := range t.node(bn.left).free {
		forbidden[name] = struct{}{}
	}

	var walk func(NodeID)
	walk = func(id NodeID) {
		n := t.node(id)
		switch n.kind {
		case VarNode:
			if !(n.name == x && n.binders[x] == redexAbs) && !(n.name == bn.name && n.binders[bn.name] == b) {
				return
			}
			for name, binder := range n.binders {
				if outer, ok := bn.binders[name]; !ok || outer != binder {
					forbidden[name] = struct{}{}
				}
			}
		case AbsNode:
			walk(n.left)
		case AppNode:
			walk(n.left)
			walk(n.right)
		}
	}
	walk(bn.left)

	names := lo.Keys(forbidden)
	slices.Sort(names)
	return names
}
