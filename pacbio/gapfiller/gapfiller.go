// Package gapfiller is the façade the cluster processor calls once per
// unresolved anchor pair or unmapped read tail. It owns no state between
// calls: every Run/RestoreEnd constructs its own dijkstra search, runs it
// to completion, and tears it down.
package gapfiller

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/pacbio/dijkstra"
)

// reachableHopFactor scales budgetHigh into the distance bound used when
// precomputing the reachable-vertex set ahead of a closed-ended search;
// c in spec terms ("c · budget_high hops"). The original's exact constant
// lives in a short-distance-Dijkstra helper not present in the retrieved
// source, so this is a deliberately conservative stand-in: generous enough
// that a legitimate path is never pruned away; see DESIGN.md.
const reachableHopFactor = 3

// Result is the outcome of one closed-ended gap-fill attempt: the edge
// path discovered strictly between the start and end edges (both already
// accounted for by the caller's walk) and the edit distance it cost. A
// zero-value Result (nil IntermediatePath) means the gap could not be
// closed; the caller splits the walk there.
type Result struct {
	IntermediatePath []graph.EdgeID
	Score            int
}

// GapFiller closes gaps and extends read tails against one shared,
// read-only graph and configuration. It holds no per-call state, so a
// single instance may be reused (but not shared concurrently; see
// pacbio/galigner, which constructs one per worker goroutine).
type GapFiller struct {
	g   graph.Graph
	cfg pacbio.GapClosingConfig
}

// New builds a GapFiller over g using cfg.
func New(g graph.Graph, cfg pacbio.GapClosingConfig) *GapFiller {
	return &GapFiller{g: g, cfg: cfg}
}

// Run closes the gap between (start.Edge, start.EdgePos) and (end.Edge,
// end.EdgePos) using seq as the read substring spanning it, admitting a
// total edit-distance budget of at most budgetHigh. budgetLow is accepted
// for symmetry with the seeder's (low, high) contract but unused by the
// search itself, matching the reference. Returns a zero Result if
// RunDijkstra is disabled, budgetHigh is non-positive, or no path was
// found within budget.
func (f *GapFiller) Run(seq string, start, end pacbio.GraphPosition, budgetLow, budgetHigh int) Result {
	_ = budgetLow
	if !f.cfg.RunDijkstra || budgetHigh <= 0 {
		return Result{}
	}
	reachable := f.reachableVertices(f.g.EdgeEnd(start.Edge), budgetHigh)
	search := dijkstra.NewGapFiller(f.g, f.cfg, seq, start.Edge, end.Edge, start.EdgePos, end.EdgePos, budgetHigh, reachable)
	defer search.Close()
	search.CloseGap()

	score := search.GetEditDistance()
	if score < 0 {
		return Result{}
	}
	path := search.GetPath()
	var intermediate []graph.EdgeID
	if len(path) > 2 {
		intermediate = path[1 : len(path)-1]
	}
	return Result{IntermediatePath: intermediate, Score: score}
}

// reachableVertices runs a bounded breadth-first search from start,
// admitting a vertex once the cheapest edge-length distance to reach it
// stays within reachableHopFactor*budgetHigh, and stopping early once
// MaxVertexInGap (if positive) is reached. A zero or negative cfg.MaxVertexInGap
// leaves the set unbounded in size (still bounded in reach by distance).
func (f *GapFiller) reachableVertices(start graph.VertexID, budgetHigh int) map[graph.VertexID]struct{} {
	bound := reachableHopFactor * budgetHigh
	dist := map[graph.VertexID]int{start: 0}
	queue := []graph.VertexID{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		d := dist[v]
		for _, e := range f.g.OutgoingEdges(v) {
			nd := d + f.g.Length(e)
			if nd > bound {
				continue
			}
			end := f.g.EdgeEnd(e)
			if prev, ok := dist[end]; !ok || nd < prev {
				dist[end] = nd
				queue = append(queue, end)
			}
		}
		if f.cfg.MaxVertexInGap > 0 && len(dist) >= f.cfg.MaxVertexInGap {
			break
		}
	}
	out := make(map[graph.VertexID]struct{}, len(dist))
	for v := range dist {
		out[v] = struct{}{}
	}
	return out
}
