package lambda

// MaxNumeral bounds numeric literals accepted by the parser.
const MaxNumeral = 4096

// EncodeNumeral returns the Church numeral λf.λx.f (f … (f x)) with n
// applications of f.
func EncodeNumeral(n uint) Term {
	var body Term = Var{"x"}
	for ; n > 0; n-- {
		body = App{Var{"f"}, body}
	}
	return Abs{"f", Abs{"x", body}}
}

// DecodeNumeral reports the number n if t has the shape of a Church numeral,
// under any choice of binder names.
func DecodeNumeral(t Term) (uint, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok || inner.Param == outer.Param {
		return 0, false
	}
	var n uint
	body := inner.Body
	for {
		switch b := body.(type) {
		case Var:
			return n, b.Name == inner.Param
		case App:
			if f, ok := b.Fn.(Var); !ok || f.Name != outer.Param {
				return 0, false
			}
			n++
			body = b.Arg
		default:
			return 0, false
		}
	}
}
