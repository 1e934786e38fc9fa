package graph

import "testing"

func TestSimpleGraphTwoEdgeJoin(t *testing.T) {
	g := NewSimpleGraph(3)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	v3 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAAAT")
	e2 := g.AddEdge(v2, v3, "AATGG")

	if g.Length(e1) != 2 {
		t.Errorf("Length(e1) = %d, want 2", g.Length(e1))
	}
	if g.EdgeEnd(e1) != g.EdgeStart(e2) {
		t.Errorf("EdgeEnd(e1) != EdgeStart(e2)")
	}
	out := g.OutgoingEdges(v2)
	if len(out) != 1 || out[0] != e2 {
		t.Errorf("OutgoingEdges(v2) = %v, want [%v]", out, e2)
	}
	if !g.IsTerminalVertex(v1) {
		t.Errorf("v1 should be terminal (no incoming edges)")
	}
	if !g.IsTerminalVertex(v3) {
		t.Errorf("v3 should be terminal (no outgoing edges)")
	}
	if g.IsTerminalVertex(v2) {
		t.Errorf("v2 should not be terminal")
	}
}

func TestReverseComplement(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"ACGT", "ACGT"},
		{"AAAT", "ATTT"},
		{"GGCC", "GGCC"},
		{"ACGN", "NCGT"},
	}
	for _, test := range tests {
		if got := ReverseComplement(test.in); got != test.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestConjugate(t *testing.T) {
	g := NewSimpleGraph(2)
	v1, v2 := g.NewVertex(), g.NewVertex()
	e1 := g.AddEdge(v1, v2, "ACGTA")
	e2 := g.AddEdge(v2, v1, ReverseComplement("ACGTA"))
	g.SetConjugate(e1, e2)
	if g.Conjugate(e1) != e2 || g.Conjugate(e2) != e1 {
		t.Errorf("conjugate pair not set correctly")
	}
}
