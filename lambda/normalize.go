package lambda

// StepEvent describes one completed reduction step.
type StepEvent struct {
	Redex   Term
	Renames []Rename
	Result  Term
}

type Observer func(StepEvent)

// Step reduces the redex chosen by s, resolving alpha-conversions with names.
// It reports false when the tree is already in normal form.
func (t *Tree) Step(s Strategy, names NameSource) (StepEvent, bool, error) {
	redex := t.FindRedex(s)
	if redex == None {
		return StepEvent{}, false, nil
	}
	r, err := t.Begin(redex)
	if err != nil {
		return StepEvent{}, false, err
	}
	if err := r.AutoRename(names); err != nil {
		r.Cancel()
		return StepEvent{}, false, err
	}
	ev := StepEvent{Redex: t.Term(redex), Renames: r.Renames()}
	result, err := r.Commit()
	if err != nil {
		r.Cancel()
		return StepEvent{}, false, err
	}
	ev.Result = t.Term(result)
	return ev, true, nil
}

// Normalize reduces until normal form, returning the number of steps taken.
// It stops with ErrStepLimit after limit steps; limit <= 0 means no limit.
// observe, if non-nil, is called after every step.
func (t *Tree) Normalize(s Strategy, names NameSource, limit int, observe Observer) (int, error) {
	for steps := 0; ; steps++ {
		if limit > 0 && steps == limit {
			if t.FindRedex(s) == None {
				return steps, nil
			}
			return steps, ErrStepLimit
		}
		ev, ok, err := t.Step(s, names)
		if err != nil || !ok {
			return steps, err
		}
		if observe != nil {
			observe(ev)
		}
	}
}
