package lambda

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ApplyRename alpha-converts plan.Binder to newName. It returns a
// *RenameError, leaving the tree unchanged, if newName is empty or would
// capture a variable. The forbidden names are recomputed from the current
// tree, so plans from one PlanReduction call can be applied in turn; the
// plan's own Forbidden list is not trusted.
//
// The plan must be current: a binder that is stale, no longer named
// plan.Name, or not inside the body of plan.Redex panics.
func (t *Tree) ApplyRename(plan RenamePlan, newName string) error {
	n := t.node(plan.Binder)
	if n.kind != AbsNode || n.name != plan.Name || !t.IsRedex(plan.Redex) || !t.encloses(t.node(plan.Redex).left, plan.Binder) {
		panic(fmt.Sprintf("lambda: rename plan for %q at node %d is out of date", plan.Name, plan.Binder))
	}
	abs, arg := t.node(plan.Redex).left, t.node(plan.Redex).right
	forbidden := t.forbiddenNames(plan.Binder, abs, t.node(abs).name, t.node(arg).free)
	if newName == "" || slices.Contains(forbidden, newName) {
		return &RenameError{Name: newName, Forbidden: forbidden}
	}

	body := t.substitute(n.left, plan.Name, func(parent NodeID) NodeID {
		return t.add(node{kind: VarNode, name: newName, left: None, right: None, parent: parent})
	})
	b := &t.nodes[plan.Binder]
	b.left, b.name = body, newName
	t.nodes[body].parent = plan.Binder
	t.analyzeFrom(plan.Binder, b.binders)
	return nil
}

// encloses reports whether id lies strictly below ancestor.
func (t *Tree) encloses(ancestor, id NodeID) bool {
	for p := t.node(id).parent; p != None; p = t.node(p).parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// NameSource chooses the new name for a pending alpha-conversion. An
// interactive driver asks the user; Numbered and Primed pick one
// deterministically.
type NameSource interface {
	FreshName(plan RenamePlan) string
}

type NameSourceFunc func(plan RenamePlan) string

func (f NameSourceFunc) FreshName(plan RenamePlan) string { return f(plan) }

var (
	// Numbered strips trailing digits from the old name and appends the
	// smallest positive number giving a permitted name: y → y1, y1 → y2.
	Numbered NameSource = NameSourceFunc(numbered)
	// Primed appends primes until the name is permitted: y → y', y''.
	Primed NameSource = NameSourceFunc(primed)
)

func numbered(plan RenamePlan) string {
	base := strings.TrimRight(plan.Name, "0123456789")
	if base == "" {
		base = plan.Name
	}
	for i := 1; ; i++ {
		if name := base + strconv.Itoa(i); !slices.Contains(plan.Forbidden, name) {
			return name
		}
	}
}

func primed(plan RenamePlan) string {
	name := plan.Name + "'"
	for slices.Contains(plan.Forbidden, name) {
		name += "'"
	}
	return name
}
