package dijkstra

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/seqdist"
)

// GapFiller closes a gap between two known anchor positions: a start edge
// and offset, an end edge and offset, and the read substring bridging them.
// It is the common case: both ends of the join are already known, so the
// search only needs to find the cheapest way between them.
type GapFiller struct {
	*baseSearch
	endE            graph.EdgeID
	endP            int
	reachableVertex map[graph.VertexID]struct{}
}

// NewGapFiller builds a GapFiller search. reachableVertex, if non-empty,
// restricts expansion to edges whose endpoints lie in the set; callers
// precompute it with a cheap bounded distance search so the main search
// never wastes budget wandering off toward vertices that can't possibly
// reach endE within pathMaxLength. A nil or empty set disables the
// restriction entirely.
func NewGapFiller(g graph.Graph, cfg pacbio.GapClosingConfig, seq string, startE, endE graph.EdgeID, startP, endP, pathMaxLength int, reachableVertex map[graph.VertexID]struct{}) *GapFiller {
	base := newBaseSearch(g, cfg, seq, startE, startP, pathMaxLength)
	f := &GapFiller{baseSearch: base, endE: endE, endP: endP, reachableVertex: reachableVertex}
	f.impl = f
	f.endState = QueueState{GS: GraphState{Edge: endE, StartPos: 0, EndPos: endP}, I: len(seq) - 1}

	if startE == endE && endP-startP > 0 {
		edgeFull := g.EdgeNucls(startE)
		edgeStr := edgeFull[startP:endP]
		score := seqdist.NWDistance(seq, edgeStr, f.pathMaxLength)
		if score != -1 {
			if score < f.pathMaxLength {
				f.pathMaxLength = score
			}
			state := QueueState{GS: GraphState{Edge: startE, StartPos: startP, EndPos: endP}, I: len(seq) - 1}
			f.update(state, zeroQueueState, score)
			if score == f.pathMaxLength {
				f.minScore = score
				f.endState = state
			}
		}
	}
	return f
}

func (f *GapFiller) restricted() bool { return len(f.reachableVertex) > 0 }

func (f *GapFiller) inReachable(v graph.VertexID) bool {
	_, ok := f.reachableVertex[v]
	return ok
}

// AddState expands the frontier node cur across outgoing edge e: it walks
// onto e if e's endpoints aren't excluded by the reachable-vertex
// restriction, and separately checks whether e is the target edge close
// enough to path_max_length to finish the gap outright.
func (f *GapFiller) AddState(cur QueueState, e graph.EdgeID, ed int) bool {
	foundPath := false
	if !f.restricted() || f.inReachable(f.g.EdgeEnd(cur.GS.Edge)) {
		if !f.restricted() || f.inReachable(f.g.EdgeEnd(e)) {
			next := GraphState{Edge: e, StartPos: 0, EndPos: f.g.Length(e)}
			f.addNewEdge(next, cur, ed)
		}
		if e == f.endE && f.pathMaxLength-ed >= 0 && cur.I+1 < len(f.seq) {
			seqStr := f.seq[cur.I+1:]
			edgeFull := f.g.EdgeNucls(e)
			edgeStr := edgeFull[:f.endP]
			score := seqdist.NWDistance(seqStr, edgeStr, f.pathMaxLength-ed)
			if score != -1 {
				if ed+score < f.pathMaxLength {
					f.pathMaxLength = ed + score
				}
				state := QueueState{GS: GraphState{Edge: e, StartPos: 0, EndPos: f.endP}, I: len(f.seq) - 1}
				f.update(state, cur, ed+score)
				if ed+score == f.pathMaxLength {
					f.minScore = ed + score
					foundPath = true
				}
			}
		}
	}
	return foundPath
}

// IsEndPosition reports whether cur is exactly the gap's target state: the
// end edge, consumed up to endP, with the whole read accounted for.
func (f *GapFiller) IsEndPosition(cur QueueState) bool {
	return cur.I == f.endState.I && cur.GS.Edge == f.endState.GS.Edge && cur.GS.EndPos == f.endState.GS.EndPos
}
