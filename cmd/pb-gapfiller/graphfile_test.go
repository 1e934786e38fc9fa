package main

import (
	"strings"
	"testing"
)

const sampleGraph = `
# two edges joined at one vertex
k 3
edge e1 v1 v2 AAAAT
edge e2 v2 v3 AATGG
conjugate e1 e2
`

func TestLoadGraphBuildsEdgesAndVertices(t *testing.T) {
	g, err := loadGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatalf("loadGraph() error = %v", err)
	}
	if g.K() != 3 {
		t.Fatalf("K() = %d, want 3", g.K())
	}
	if len(g.OutgoingEdges(g.EdgeEnd(1))) != 1 {
		t.Fatalf("expected one outgoing edge from e1's end vertex")
	}
	if g.Conjugate(1) != 2 || g.Conjugate(2) != 1 {
		t.Fatalf("conjugate pairing not recorded: Conjugate(1)=%d Conjugate(2)=%d", g.Conjugate(1), g.Conjugate(2))
	}
}

func TestLoadGraphRejectsUnknownDirective(t *testing.T) {
	_, err := loadGraph(strings.NewReader("k 3\nbogus foo\n"))
	if err == nil {
		t.Fatal("loadGraph() with unknown directive: want error, got nil")
	}
}

func TestLoadGraphRequiresK(t *testing.T) {
	_, err := loadGraph(strings.NewReader("edge e1 v1 v2 AAAAT\n"))
	if err == nil {
		t.Fatal("loadGraph() without k directive: want error, got nil")
	}
}
