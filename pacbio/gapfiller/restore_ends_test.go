package gapfiller

import (
	"testing"

	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
)

func TestRestoreEndNoHitsOrEdgesIsNoop(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAC")

	cfg := runCfg
	cfg.RestoreEnds = true
	f := New(g, cfg)
	var rng pacbio.PathRange

	edges, score := f.RestoreEnd(nil, []graph.EdgeID{e1}, "AAC", true, &rng)
	if score != 0 || len(edges) != 1 || edges[0] != e1 {
		t.Fatalf("RestoreEnd with no hits = (%v, %d), want untouched edges and score 0", edges, score)
	}
}

func TestRestoreEndForwardDisabledRecordsPositionOnly(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAC")

	f := New(g, runCfg) // RestoreEnds left false
	hits := pacbio.MappingPath{{
		Edge: e1,
		Range: pacbio.MappingRange{
			ReadRange: pacbio.Range{Start: 0, End: 2},
			EdgeRange: pacbio.Range{Start: 0, End: 2},
		},
	}}
	var rng pacbio.PathRange
	edges, score := f.RestoreEnd(hits, []graph.EdgeID{e1}, "AACGG", true, &rng)

	if score != 0 || len(edges) != 1 {
		t.Fatalf("RestoreEnd() = (%v, %d), want untouched edges and score 0 (RestoreEnds disabled)", edges, score)
	}
	if rng.PathEnd.SeqPos != 2 || rng.PathEnd.EdgePos != 2 {
		t.Fatalf("rng.PathEnd = %+v, want {SeqPos:2 EdgePos:2}", rng.PathEnd)
	}
}

// TestRestoreEndForwardExtendsOntoNextEdge rebuilds the scenario already
// proven at the dijkstra layer (ends_reconstructor_test.go's
// TestEndsReconstructorExtendsAcrossEdge), this time driven through the
// façade with the anchor's end position as the search's starting point.
func TestRestoreEndForwardExtendsOntoNextEdge(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	v3 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAC")
	e2 := g.AddEdge(v2, v3, "CGG")

	cfg := runCfg
	cfg.RestoreEnds = true
	f := New(g, cfg)
	hits := pacbio.MappingPath{{
		Edge: e1,
		Range: pacbio.MappingRange{
			ReadRange: pacbio.Range{Start: 0, End: 2},
			EdgeRange: pacbio.Range{Start: 0, End: 2},
		},
	}}
	seq := "AACGG"
	var rng pacbio.PathRange
	edges, score := f.RestoreEnd(hits, []graph.EdgeID{e1}, seq, true, &rng)

	if score != 0 {
		t.Fatalf("score = %d, want 0", score)
	}
	if len(edges) != 2 || edges[0] != e1 || edges[1] != e2 {
		t.Fatalf("edges = %v, want [%v %v]", edges, e1, e2)
	}
	if rng.PathEnd.SeqPos != len(seq) {
		t.Fatalf("rng.PathEnd.SeqPos = %d, want %d (full read consumed)", rng.PathEnd.SeqPos, len(seq))
	}
}

func TestRestoreEndBackwardDisabledRecordsPositionOnly(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAC")

	f := New(g, runCfg) // RestoreEnds left false
	hits := pacbio.MappingPath{{
		Edge: e1,
		Range: pacbio.MappingRange{
			ReadRange: pacbio.Range{Start: 1, End: 3},
			EdgeRange: pacbio.Range{Start: 0, End: 2},
		},
	}}
	var rng pacbio.PathRange
	edges, score := f.RestoreEnd(hits, []graph.EdgeID{e1}, "AAC", false, &rng)

	if score != 0 || len(edges) != 1 {
		t.Fatalf("RestoreEnd() = (%v, %d), want untouched edges and score 0 (RestoreEnds disabled)", edges, score)
	}
	if rng.PathStart.SeqPos != 1 || rng.PathStart.EdgePos != 0 {
		t.Fatalf("rng.PathStart = %+v, want {SeqPos:1 EdgePos:0}", rng.PathStart)
	}
}

// TestRestoreEndBackwardReconstructsPrefix exercises the conjugate-graph
// trick: the one character preceding e1's anchor is recovered by running
// EndsReconstructor forward on e1's conjugate against the
// reverse-complemented prefix, with no new edge discovered (the whole
// prefix fits within e1's own k-mer overlap).
func TestRestoreEndBackwardReconstructsPrefix(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAC")
	ce1 := g.AddEdge(v2, v1, "GTT") // reverse complement of "AAC"
	g.SetConjugate(e1, ce1)

	cfg := runCfg
	cfg.RestoreEnds = true
	f := New(g, cfg)
	hits := pacbio.MappingPath{{
		Edge: e1,
		Range: pacbio.MappingRange{
			ReadRange: pacbio.Range{Start: 1, End: 3},
			EdgeRange: pacbio.Range{Start: 0, End: 2},
		},
	}}
	seq := "AAC"
	var rng pacbio.PathRange
	edges, score := f.RestoreEnd(hits, []graph.EdgeID{e1}, seq, false, &rng)

	if score != 0 {
		t.Fatalf("score = %d, want 0", score)
	}
	if len(edges) != 1 || edges[0] != e1 {
		t.Fatalf("edges = %v, want [%v] (prefix fit within e1's own overlap, no new edge)", edges, e1)
	}
	if rng.PathStart.SeqPos != 0 || rng.PathStart.EdgePos != 0 {
		t.Fatalf("rng.PathStart = %+v, want {SeqPos:0 EdgePos:0}", rng.PathStart)
	}
}
