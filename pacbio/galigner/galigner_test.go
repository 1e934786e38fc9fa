package galigner

import (
	"testing"

	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
)

func TestTopologyGap(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	v3 := g.NewVertex()
	v4 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAAA")
	e2 := g.AddEdge(v3, v4, "CCCC")

	a := New(g, galignerCfg, &fakeSeeder{})

	if !a.TopologyGap(e1, e2, true) {
		t.Fatalf("TopologyGap(e1, e2, true) = false, want true: EdgeEnd(e1)=v2 has no outgoing edges yet (terminal), EdgeStart(e2)=v3 has no incoming edges (terminal)")
	}

	// Giving v2 an outgoing edge makes it non-terminal, so the same pair
	// of edges no longer flanks a genuine gap.
	v5 := g.NewVertex()
	g.AddEdge(v2, v5, "GGGG")
	if a.TopologyGap(e1, e2, true) {
		t.Fatalf("TopologyGap(e1, e2, true) = true, want false once v2 has an outgoing edge and is no longer terminal")
	}
}

// TestGetReadAlignmentSplitsOnInvalidLimitsNoCrossWalkGap covers the
// distinction ProcessCluster exists to enforce: a single cluster's anchors
// that get split into two subread walks by the gap filler/seeder (here, by
// the seeder refusing any path limit) never get reconnected by a
// GapDescription, even when the two walks' flanking edges would otherwise
// satisfy TopologyGap: the split happened for a reason a loose gap
// description would not address.
func TestGetReadAlignmentSplitsOnInvalidLimitsNoCrossWalkGap(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	v3 := g.NewVertex()
	v4 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAAA")
	e2 := g.AddEdge(v3, v4, "CCCC")

	cluster := []pacbio.QualityRange{
		anchor(e1, 0, 1, 0, 1, 0),
		anchor(e2, 5, 6, 0, 1, 5),
	}
	seeder := &fakeSeeder{low: -1, high: 0, clusters: [][]pacbio.QualityRange{cluster}}
	a := New(g, galignerCfg, seeder)

	got := a.GetReadAlignment(Read{Name: "r", Sequence: "AAAAACCCC"})

	if len(got.SubreadWalks) != 2 {
		t.Fatalf("SubreadWalks = %v, want 2 walks (split on invalid path limits)", got.SubreadWalks)
	}
	if len(got.Gaps) != 0 {
		t.Fatalf("Gaps = %v, want none: a within-cluster split must not be bridged by a gap description", got.Gaps)
	}
}

// TestGetReadAlignmentTwoClustersProduceGapDescription covers the opposite
// case: two separate chain clusters, each contributing exactly one walk,
// joined across clusters because their flanking edges satisfy TopologyGap
// and the seeder allows the join.
func TestGetReadAlignmentTwoClustersProduceGapDescription(t *testing.T) {
	g := graph.NewSimpleGraph(1)
	v1 := g.NewVertex()
	v2 := g.NewVertex()
	v3 := g.NewVertex()
	v4 := g.NewVertex()
	e1 := g.AddEdge(v1, v2, "AAAA")
	e2 := g.AddEdge(v3, v4, "TTTT")

	cluster1 := []pacbio.QualityRange{anchor(e1, 2, 2, 2, 2, 2)}
	cluster2 := []pacbio.QualityRange{anchor(e2, 6, 6, 0, 0, 6)}
	seeder := &fakeSeeder{clusters: [][]pacbio.QualityRange{cluster1, cluster2}}
	a := New(g, galignerCfg, seeder)

	got := a.GetReadAlignment(Read{Name: "r", Sequence: "AAAAAAAAA"})

	if len(got.SubreadWalks) != 2 {
		t.Fatalf("SubreadWalks = %v, want 2 walks, one per cluster", got.SubreadWalks)
	}
	if len(got.Gaps) != 1 {
		t.Fatalf("Gaps = %v, want exactly 1 gap joining the two clusters' walks", got.Gaps)
	}
	gap := got.Gaps[0]
	if gap.EdgeBefore != e1 || gap.EdgeAfter != e2 {
		t.Fatalf("gap = %+v, want EdgeBefore=%v EdgeAfter=%v", gap, e1, e2)
	}
	if gap.OverlapTrimmed {
		t.Fatalf("gap.OverlapTrimmed = true, want false: the two anchors leave a positive read gap, not an overlap")
	}
}
