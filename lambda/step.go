package lambda

import "fmt"

// Rename records one alpha-conversion applied during a reduction.
type Rename struct {
	Binder NodeID
	From   string
	To     string
}

func (r Rename) String() string { return "λ" + r.From + " → λ" + r.To }

// Reduction drives one beta-reduction step: it is created for a chosen redex,
// accepts alpha-conversions one at a time while PlanReduction reports
// capturing binders, and ends with Commit or Cancel. Cancel restores the tree
// exactly as it was when the reduction began.
type Reduction struct {
	t       *Tree
	redex   NodeID
	saved   snapshot
	renames []Rename
	closed  bool
}

// Begin starts reducing redex. Only one reduction may be in flight per tree.
// It panics if redex is not a live redex.
func (t *Tree) Begin(redex NodeID) (*Reduction, error) {
	if t.pending != nil {
		return nil, ErrReductionPending
	}
	if !t.IsRedex(redex) {
		panic(fmt.Sprintf("lambda: node %d is not a redex", redex))
	}
	r := &Reduction{t: t, redex: redex, saved: t.snapshot()}
	t.pending = r
	return r, nil
}

func (r *Reduction) Redex() NodeID { return r.redex }

// Renames returns the alpha-conversions applied so far.
func (r *Reduction) Renames() []Rename { return r.renames }

// Plan recomputes the pending alpha-conversions against the current tree.
func (r *Reduction) Plan() []RenamePlan {
	if r.closed {
		return nil
	}
	return r.t.PlanReduction(r.redex)
}

// Next returns the alpha-conversion to resolve next, if any.
func (r *Reduction) Next() (RenamePlan, bool) {
	plan := r.Plan()
	if len(plan) == 0 {
		return RenamePlan{}, false
	}
	return plan[0], true
}

// Rename resolves the next pending alpha-conversion with name. A rejected
// name returns an error wrapping ErrInvalidRename and changes nothing.
func (r *Reduction) Rename(name string) error {
	if r.closed {
		return ErrReductionClosed
	}
	plan, ok := r.Next()
	if !ok {
		return ErrNothingToRename
	}
	if err := r.t.ApplyRename(plan, name); err != nil {
		return err
	}
	r.renames = append(r.renames, Rename{Binder: plan.Binder, From: plan.Name, To: name})
	return nil
}

// AutoRename resolves every pending alpha-conversion with names from src.
func (r *Reduction) AutoRename(src NameSource) error {
	for {
		plan, ok := r.Next()
		if !ok {
			return nil
		}
		if err := r.Rename(src.FreshName(plan)); err != nil {
			return err
		}
	}
}

// Commit performs the substitution once no alpha-conversion is pending and
// returns the node that replaced the redex.
func (r *Reduction) Commit() (NodeID, error) {
	if r.closed {
		return None, ErrReductionClosed
	}
	if len(r.Plan()) > 0 {
		return None, ErrRenamesPending
	}
	result := r.t.commit(r.redex)
	r.close()
	return result, nil
}

// Cancel abandons the reduction, undoing any alpha-conversions.
func (r *Reduction) Cancel() {
	if r.closed {
		return
	}
	r.t.restore(r.saved)
	r.close()
}

func (r *Reduction) close() {
	r.closed = true
	r.t.pending = nil
}
