package dijkstra

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/seqdist"
)

// EndsReconstructor extends a read's mapping past its last known anchor,
// open-ended: there is no target edge, only a budget and a sequence left to
// place. It is used on the two ends of a read that mapped to a single
// subread walk, to recover the few extra k-mers SHWDistance2 can account
// for beyond the last trusted anchor.
type EndsReconstructor struct {
	*baseSearch
}

// NewEndsReconstructor builds an open-ended reconstruction search starting
// at (startE, startP) with the remaining unconsumed read seq.
func NewEndsReconstructor(g graph.Graph, cfg pacbio.GapClosingConfig, seq string, startE graph.EdgeID, startP, pathMaxLength int) *EndsReconstructor {
	base := newBaseSearch(g, cfg, seq, startE, startP, pathMaxLength)
	r := &EndsReconstructor{baseSearch: base}
	r.impl = r
	r.endState = zeroQueueState

	if g.Length(startE)+g.K()-startP+r.pathMaxLength > len(seq) {
		edgeFull := g.EdgeNucls(startE)
		edgeStr := edgeFull[startP:]
		score, position := seqdist.SHWDistance2(seq, edgeStr, r.pathMaxLength)
		if score != -1 {
			if score < r.pathMaxLength {
				r.pathMaxLength = score
			}
			state := QueueState{GS: GraphState{Edge: startE, StartPos: startP, EndPos: startP + position + 1}, I: len(seq) - 1}
			r.update(state, zeroQueueState, score)
			if score == r.pathMaxLength {
				r.minScore = score
				r.endState = state
			}
		}
	}
	return r
}

// AddState always walks onto e (there is no target edge to gate on), and
// additionally checks whether the read can be fully exhausted somewhere
// within e via SHWDistance2, provided e is long enough relative to what's
// left of the read that finishing here is even plausible.
func (r *EndsReconstructor) AddState(cur QueueState, e graph.EdgeID, ed int) bool {
	foundPath := false
	next := GraphState{Edge: e, StartPos: 0, EndPos: r.g.Length(e)}
	r.addNewEdge(next, cur, ed)

	remaining := len(r.seq) - cur.I
	if r.g.Length(e)+r.g.K()+r.pathMaxLength-ed > remaining && r.pathMaxLength-ed >= 0 && cur.I+1 < len(r.seq) {
		seqStr := r.seq[cur.I+1:]
		edgeFull := r.g.EdgeNucls(e)
		score, position := seqdist.SHWDistance2(seqStr, edgeFull, r.pathMaxLength-ed)
		if score >= 0 {
			if ed+score < r.pathMaxLength {
				r.pathMaxLength = ed + score
			}
			state := QueueState{GS: GraphState{Edge: e, StartPos: 0, EndPos: position + 1}, I: len(r.seq) - 1}
			r.update(state, cur, ed+score)
			if ed+score == r.pathMaxLength {
				r.minScore = ed + score
				foundPath = true
				r.endState = state
			}
		}
	}
	return foundPath
}

// IsEndPosition reports whether cur has consumed as much of the read as the
// best reconstruction found so far.
func (r *EndsReconstructor) IsEndPosition(cur QueueState) bool {
	return cur.I == r.endState.I
}
