package lambda

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{`\x.x`, []Token{{Kind: Lambda}, {Kind: Variable, Name: "x", Offset: 1}, {Kind: Dot, Offset: 2}, {Kind: Variable, Name: "x", Offset: 3}}},
		{"λ ab", []Token{{Kind: Lambda}, {Kind: Variable, Name: "a", Offset: 2}, {Kind: Variable, Name: "b", Offset: 3}}},
		{"(12 3)", []Token{{Kind: OpenParen}, {Kind: Number, Value: 12, Offset: 1}, {Kind: Number, Value: 3, Offset: 4}, {Kind: CloseParen, Offset: 5}}},
		{"f2+", []Token{{Kind: Variable, Name: "f"}, {Kind: Number, Value: 2, Offset: 1}, {Kind: Variable, Name: "+", Offset: 2}}},
		{" \t\n", nil},
		{"99999999999999999999999", []Token{{Kind: Number, Value: MaxNumeral + 1}}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if again := Tokenize(tt.in); !reflect.DeepEqual(got, again) {
			t.Errorf("Tokenize(%q) is not deterministic", tt.in)
		}
	}
}

func TestMatchBrackets(t *testing.T) {
	// ( a ( b ) c ) d
	// 0 1 2 3 4 5 6 7
	b, err := MatchBrackets(Tokenize("(a(b)c)d"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{6, -1, 4, -1, -1, -1, -1, -1}; !reflect.DeepEqual(b.Close, want) {
		t.Errorf("Close = %v, want %v", b.Close, want)
	}
	if want := []int{-1, -1, -1, -1, 2, -1, 0, -1}; !reflect.DeepEqual(b.Open, want) {
		t.Errorf("Open = %v, want %v", b.Open, want)
	}
	if want := []int{8, 6, 6, 4, 6, 6, 8, 8}; !reflect.DeepEqual(b.EndOfBlock, want) {
		t.Errorf("EndOfBlock = %v, want %v", b.EndOfBlock, want)
	}
}

func TestMatchBracketsErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind ErrorKind
		pos  int
	}{
		{")", UnmatchedClosingBracket, 0},
		{"(a))", UnmatchedClosingBracket, 3},
		{"((a", UnclosedOpeningBracket, 0},
		{"a((b)", UnclosedOpeningBracket, 1},
	}
	for _, tt := range tests {
		_, err := MatchBrackets(Tokenize(tt.in))
		perr, ok := err.(*ParseError)
		if !ok {
			t.Errorf("MatchBrackets(%q) error = %v, want *ParseError", tt.in, err)
			continue
		}
		if perr.Kind != tt.kind || perr.Pos != tt.pos {
			t.Errorf("MatchBrackets(%q) = kind %d at %d, want kind %d at %d", tt.in, perr.Kind, perr.Pos, tt.kind, tt.pos)
		}
	}
}
