package lambda

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Term
	}{
		{"a", Var{"a"}},
		{"a b c", App{App{Var{"a"}, Var{"b"}}, Var{"c"}}},
		{"a (b c)", App{Var{"a"}, App{Var{"b"}, Var{"c"}}}},
		{`\x y.x y`, Abs{"x", Abs{"y", App{Var{"x"}, Var{"y"}}}}},
		{`λa b c.c`, Abs{"a", Abs{"b", Abs{"c", Var{"c"}}}}},
		{`(\x.x) a`, App{Abs{"x", Var{"x"}}, Var{"a"}}},
		{`\x.\y.x`, Abs{"x", Abs{"y", Var{"x"}}}},
		{`f \x.x y`, App{Var{"f"}, Abs{"x", App{Var{"x"}, Var{"y"}}}}},
		{`(f \x.x) y`, App{App{Var{"f"}, Abs{"x", Var{"x"}}}, Var{"y"}}},
		{"((a))", Var{"a"}},
		{"2", Abs{"f", Abs{"x", App{Var{"f"}, App{Var{"f"}, Var{"x"}}}}}},
		{"f 0", App{Var{"f"}, Abs{"f", Abs{"x", Var{"x"}}}}},
	}
	for _, tt := range tests {
		got, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("ParseString(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want ParseError
	}{
		{")", ParseError{Kind: UnmatchedClosingBracket, Pos: 0}},
		{"(a", ParseError{Kind: UnclosedOpeningBracket, Pos: 0}},
		{`\x \y.x`, ParseError{Kind: ConsecutiveLambdas, Pos: 2}},
		{"a.b", ParseError{Kind: DotWithoutLambda, Pos: 1}},
		{`\.x`, ParseError{Kind: EmptyAbstractionParams, Pos: 1}},
		{"", ParseError{Kind: EmptySubexpression, Pos: 0, End: 0}},
		{"a ()", ParseError{Kind: EmptySubexpression, Pos: 2, End: 2}},
		{`(\x.)`, ParseError{Kind: EmptySubexpression, Pos: 4, End: 4}},
		{`\x 1.x`, ParseError{Kind: NumeralAsFormalParameter, Pos: 2}},
		{`\(x).x`, ParseError{Kind: UnexpectedToken, Pos: 1, Token: OpenParen}},
		{`\x y`, ParseError{Kind: UnterminatedAbstraction, Pos: 0}},
		{`a (\x)`, ParseError{Kind: UnterminatedAbstraction, Pos: 2}},
		{"4097", ParseError{Kind: NumeralTooLarge, Pos: 0}},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseString(%q) error = %v, want *ParseError", tt.in, err)
			continue
		}
		if *perr != tt.want {
			t.Errorf("ParseString(%q) = %+v, want %+v", tt.in, *perr, tt.want)
		}
		if perr.Error() == "" {
			t.Errorf("ParseString(%q): empty message", tt.in)
		}
	}
}

func TestChurchNumerals(t *testing.T) {
	if got, want := EncodeNumeral(0).String(), "(λf.(λx.x))"; got != want {
		t.Errorf("EncodeNumeral(0) = %s, want %s", got, want)
	}
	if got, want := EncodeNumeral(3).String(), "(λf.(λx.(f (f (f x)))))"; got != want {
		t.Errorf("EncodeNumeral(3) = %s, want %s", got, want)
	}
	for _, n := range []uint{0, 1, 7, 100} {
		got, ok := DecodeNumeral(EncodeNumeral(n))
		if !ok || got != n {
			t.Errorf("DecodeNumeral(EncodeNumeral(%d)) = %d, %v", n, got, ok)
		}
	}
	for _, in := range []string{"a", `\f.f`, `\f f.f`, `\f x.x f`, `\f x.g x`} {
		term, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		if n, ok := DecodeNumeral(term); ok {
			t.Errorf("DecodeNumeral(%s) = %d, want not a numeral", in, n)
		}
	}
}
