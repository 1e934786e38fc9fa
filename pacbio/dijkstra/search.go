package dijkstra

import (
	"container/heap"
	"sync/atomic"

	"github.com/grailbio/base/log"

	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/seqdist"
)

// activeSearches diagnoses how many searches are live at once under
// traverse.Each's read-level fan-out; ActiveSearchCount reads it.
var activeSearches int64

// ActiveSearchCount returns the number of searches currently under
// construction or running that have not yet been released with Close.
func ActiveSearchCount() int64 {
	return atomic.LoadInt64(&activeSearches)
}

// searcher is the pair of methods a concrete search (GapFiller or
// EndsReconstructor) must supply: how to expand one outgoing edge from the
// current frontier node, and whether a frontier node is a terminal state.
// baseSearch holds a searcher rather than being subclassed, since Go has no
// virtual dispatch; GapFiller and EndsReconstructor each embed a baseSearch
// and assign themselves as its impl once constructed.
type searcher interface {
	AddState(cur QueueState, e graph.EdgeID, ed int) bool
	IsEndPosition(cur QueueState) bool
}

// baseSearch drives the shared bounded best-first search: edge expansion via
// seqdist's semi-global distance, row-gated admission into the frontier, and
// a queue/iteration budget that bounds how much work a single gap gets.
type baseSearch struct {
	g             graph.Graph
	cfg           pacbio.GapClosingConfig
	seq           string
	startE        graph.EdgeID
	startP        int
	pathMaxLength int

	queueLimit int
	iterLimit  int

	pq         priorityQueue
	liveCount  int
	visited    map[QueueState]int
	prevStates map[QueueState]QueueState

	bestEd []int

	gapPath     []graph.EdgeID
	mappingPath pacbio.MappingPath

	minScore int
	endState QueueState

	impl searcher
}

func newBaseSearch(g graph.Graph, cfg pacbio.GapClosingConfig, seq string, startE graph.EdgeID, startP, pathMaxLength int) *baseSearch {
	b := &baseSearch{
		g:             g,
		cfg:           cfg,
		seq:           seq,
		startE:        startE,
		startP:        startP,
		pathMaxLength: pathMaxLength,
		queueLimit:    cfg.QueueLimit,
		iterLimit:     cfg.IterationLimit,
		visited:       make(map[QueueState]int),
		prevStates:    make(map[QueueState]QueueState),
		bestEd:        make([]int, len(seq)),
		minScore:      -1,
		endState:      zeroQueueState,
	}
	for i := range b.bestEd {
		b.bestEd[i] = pathMaxLength
	}
	atomic.AddInt64(&activeSearches, 1)
	b.addNewEdge(GraphState{Edge: startE, StartPos: startP, EndPos: g.Length(startE)}, zeroQueueState, 0)
	return b
}

// Close releases the search's slot in the active-search diagnostic counter.
// Callers should defer it once a search (GapFiller or EndsReconstructor) is
// done being consulted.
func (b *baseSearch) Close() {
	atomic.AddInt64(&activeSearches, -1)
}

// shouldUpdateQueue decides whether a candidate score at read index seqInd
// is competitive enough with the best score already proven reachable at
// that index to be worth keeping in the frontier. seqInd == -1 (no read
// consumed yet) always passes.
func (b *baseSearch) shouldUpdateQueue(seqInd, ed int) bool {
	if seqInd == -1 {
		return true
	}
	if b.bestEd[seqInd]+b.cfg.PenaltyInterval >= ed {
		if seqInd != len(b.seq)-1 {
			if ed < b.bestEd[seqInd] {
				b.bestEd[seqInd] = ed
			}
		}
		return true
	}
	return false
}

// update records a candidate (state, score) pair reached from prevState,
// keeping only the best score known for state and admitting it to the
// frontier if shouldUpdateQueue allows. A stale heap entry left behind by an
// earlier, worse score for the same state is never removed; closeGap
// discards it lazily when it would otherwise be popped. An equal score
// updates prevStates (last writer wins, matching the reference) but never
// pushes a second entry: the live heap entry for state already represents
// it, and closeGap's staleness check (top.score != visited[state]) cannot
// tell two equal-score entries for the same state apart, so a duplicate
// push would be popped and expanded twice.
func (b *baseSearch) update(state, prevState QueueState, score int) {
	if old, ok := b.visited[state]; ok {
		if old > score {
			b.visited[state] = score
			b.prevStates[state] = prevState
			if b.shouldUpdateQueue(state.I, score) {
				heap.Push(&b.pq, pqItem{score: score, state: state})
			}
		} else if old == score {
			b.prevStates[state] = prevState
		}
		return
	}
	if b.shouldUpdateQueue(state.I, score) {
		b.visited[state] = score
		b.prevStates[state] = prevState
		b.liveCount++
		heap.Push(&b.pq, pqItem{score: score, state: state})
	}
}

// addNewEdge is called whenever the search steps onto a (new or
// already-visited) edge: it admits the zero-length case directly, then
// probes how far along the edge the read's next unconsumed window can reach
// within the remaining budget via seqdist.SHWDistance, admitting every
// reachable cut point as its own frontier state.
func (b *baseSearch) addNewEdge(gs GraphState, prevState QueueState, ed int) {
	full := b.g.EdgeNucls(gs.Edge)
	edgeStr := full[gs.StartPos:gs.EndPos]
	if len(edgeStr) == 0 {
		state := QueueState{GS: gs, I: prevState.I}
		b.update(state, prevState, ed)
		return
	}
	length := b.g.Length(gs.Edge) - gs.StartPos + b.pathMaxLength
	if rem := len(b.seq) - (prevState.I + 1); rem < length {
		length = rem
	}
	if length < 0 {
		length = 0
	}
	lo := prevState.I + 1
	if lo > len(b.seq) {
		lo = len(b.seq)
	}
	hi := lo + length
	if hi > len(b.seq) {
		hi = len(b.seq)
	}
	seqStr := b.seq[lo:hi]
	if b.pathMaxLength-ed < 0 {
		return
	}
	if b.pathMaxLength-ed >= len(edgeStr) {
		state := QueueState{GS: gs, I: prevState.I}
		b.update(state, prevState, ed+len(edgeStr))
	}
	if len(b.seq)-(prevState.I+1) > 0 {
		positions, scores := seqdist.SHWDistance(seqStr, edgeStr, b.pathMaxLength-ed)
		for i := range positions {
			if positions[i] >= 0 && scores[i] >= 0 {
				state := QueueState{GS: gs, I: prevState.I + 1 + positions[i]}
				b.update(state, prevState, ed+scores[i])
			}
		}
	}
}

// closeGap runs the bounded best-first search to completion: repeatedly
// popping the cheapest live frontier node, expanding it across every
// outgoing edge of its end vertex via impl.AddState, until impl reports a
// terminal state, the frontier or iteration budget is exhausted, or the
// queue empties. On success it walks prevStates back from the end state to
// recover the edge path and its per-edge mapping ranges.
func (b *baseSearch) closeGap() {
	foundPath := false
	iterations := 0
	for b.pq.Len() > 0 {
		top := b.pq[0]
		if cur, ok := b.visited[top.state]; !ok || cur != top.score {
			heap.Pop(&b.pq)
			continue
		}
		curState := top.state
		ed := top.score
		if b.liveCount > b.queueLimit || iterations > b.iterLimit {
			log.Error.Printf("dijkstra: giving up, queue=%d limit=%d iterations=%d limit=%d", b.liveCount, b.queueLimit, iterations, b.iterLimit)
			if sc, ok := b.visited[b.endState]; ok {
				foundPath = true
				b.minScore = sc
			}
			break
		}
		if b.impl.IsEndPosition(curState) {
			foundPath = true
			break
		}
		if ed > b.pathMaxLength {
			break
		}
		iterations++
		heap.Pop(&b.pq)
		b.liveCount--
		for _, e := range b.g.OutgoingEdges(b.g.EdgeEnd(curState.GS.Edge)) {
			foundPath = b.impl.AddState(curState, e, ed)
			if !b.cfg.FindShortestPath && foundPath {
				break
			}
		}
		if !b.cfg.FindShortestPath && foundPath {
			break
		}
	}
	if !foundPath {
		return
	}
	state := b.endState
	for !state.IsZero() {
		b.gapPath = append(b.gapPath, state.GS.Edge)
		prev := b.prevStates[state]
		startIdx := prev.I
		if startIdx < 0 {
			startIdx = 0
		}
		endIdx := state.I
		if endIdx < 0 {
			endIdx = 0
		}
		if b.cfg.RestoreMapping {
			b.mappingPath = append(b.mappingPath, pacbio.MappingPathEntry{
				Edge: state.GS.Edge,
				Range: pacbio.MappingRange{
					ReadRange: pacbio.Range{Start: startIdx, End: endIdx},
					EdgeRange: pacbio.Range{Start: state.GS.StartPos, End: state.GS.EndPos},
				},
			})
		}
		state = prev
	}
	reverseEdges(b.gapPath)
	reverseMapping(b.mappingPath)
}

func reverseEdges(s []graph.EdgeID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseMapping(s pacbio.MappingPath) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// CloseGap runs the search to completion. Call it once after constructing a
// GapFiller or EndsReconstructor, then read results off with GetPath and
// friends.
func (b *baseSearch) CloseGap() { b.closeGap() }

// GetPath returns the edge sequence found, in read order, or nil if the
// search never reached a terminal state.
func (b *baseSearch) GetPath() []graph.EdgeID { return b.gapPath }

// GetMappingPath returns the per-edge read/edge coordinate ranges of the
// path found, in read order. It stays empty unless cfg.RestoreMapping is set.
func (b *baseSearch) GetMappingPath() pacbio.MappingPath { return b.mappingPath }

// GetEditDistance returns the edit distance of the path found, or -1 if
// none was found.
func (b *baseSearch) GetEditDistance() int { return b.minScore }

// GetPathEndPosition returns the offset on the terminal edge where the
// found path ends.
func (b *baseSearch) GetPathEndPosition() int { return b.endState.GS.EndPos }

// GetSeqEndPosition returns the read index consumed by the found path's
// terminal state.
func (b *baseSearch) GetSeqEndPosition() int { return b.endState.I }
