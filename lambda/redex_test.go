package lambda

import "testing"

func TestFindRedex(t *testing.T) {
	tests := []struct {
		in                  string
		outermost, innermost string // path to the redex, "-" for none
	}{
		{"a", "-", "-"},
		{`\x.x`, "-", "-"},
		{`x (\y.y)`, "-", "-"},
		{`(\x.x) a`, "", ""},
		{`(\x.x) ((\y.y) a)`, "", "a"},
		{`(\x.(\y.y) x) a`, "", "fb"},
		{`(\x y.x) a b`, "f", "f"},
		{`\z.z ((\x.x) z)`, "ba", "ba"},
		{`((\x.x) a) ((\y.y) b)`, "f", "f"},
		{`f ((\x.x) a) ((\y.y) b)`, "fa", "fa"},
		{`((\x.x) (\y.(\z.z) y)) a`, "f", "fab"},
	}
	for _, tt := range tests {
		tree := mustTree(t, tt.in)
		for _, c := range []struct {
			s    Strategy
			want string
		}{{Outermost, tt.outermost}, {Innermost, tt.innermost}} {
			got := tree.FindRedex(c.s)
			if c.want == "-" {
				if got != None {
					t.Errorf("%s: %v found %s, want none", tt.in, c.s, tree.Term(got))
				}
				continue
			}
			if want := path(tree, c.want); got != want {
				t.Errorf("%s: %v found node %d, want %d", tt.in, c.s, got, want)
			}
			if !tree.IsRedex(got) {
				t.Errorf("%s: %v returned a non-redex", tt.in, c.s)
			}
		}
	}
}

func TestRedexes(t *testing.T) {
	tree := mustTree(t, `((\x.x) ((\y.y) a)) ((\z.z) b)`)
	got := tree.Redexes(tree.Root())
	want := []NodeID{path(tree, "f"), path(tree, "fa"), path(tree, "a")}
	if len(got) != len(want) {
		t.Fatalf("Redexes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Redexes[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
