package lambda

// Term is the value form of an expression: what the parser produces, what
// snapshots and history records hold, and what a renderer consumes.
// Terms are immutable once built; *Tree is the mutable form.
type Term interface {
	isTerm()
	String() string
}

type Var struct {
	Name string
}

func (Var) isTerm() {}

func (v Var) String() string {
	return v.Name
}

type Abs struct {
	Param string
	Body  Term
}

func (Abs) isTerm() {}

func (a Abs) String() string {
	return "(λ" + a.Param + "." + a.Body.String() + ")"
}

type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func (a App) String() string {
	return "(" + a.Fn.String() + " " + a.Arg.String() + ")"
}
