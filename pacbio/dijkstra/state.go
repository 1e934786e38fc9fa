// Package dijkstra implements the bounded best-first search that closes a
// single gap (or reconstructs an unmapped end) of one long read against the
// assembly graph. It trades exactness for bounded cost the same way the rest
// of the gap-filling core does: every expansion is gated by a row-local score
// budget, and the search gives up cleanly once it has spent its queue or
// iteration allowance.
package dijkstra

import "github.com/synthdose/pbgap/graph"

// GraphState pins a position on a single edge: the read is somewhere
// between StartPos and EndPos nucleotides into Edge.
type GraphState struct {
	Edge     graph.EdgeID
	StartPos int
	EndPos   int
}

func (a GraphState) less(b GraphState) bool {
	if a.Edge != b.Edge {
		return a.Edge < b.Edge
	}
	if a.StartPos != b.StartPos {
		return a.StartPos < b.StartPos
	}
	return a.EndPos < b.EndPos
}

// QueueState is one frontier node: a GraphState paired with how much of the
// read has been consumed to reach it (I, an inclusive index into the read;
// -1 means none yet).
type QueueState struct {
	GS GraphState
	I  int
}

// zeroQueueState is the sentinel "no predecessor" state, also used as the
// zero-value end state of a search that found nothing.
var zeroQueueState = QueueState{GS: GraphState{Edge: graph.NoEdge, StartPos: -1, EndPos: -1}, I: -1}

// IsZero reports whether q is the sentinel empty state.
func (q QueueState) IsZero() bool { return q == zeroQueueState }

func (a QueueState) less(b QueueState) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.GS.less(b.GS)
}

// pqItem is one entry of the search's priority queue: a candidate score for
// reaching a QueueState. Stale entries (superseded by a later, cheaper
// update to the same state) are left in place and discarded lazily when
// popped, rather than removed eagerly. See baseSearch.closeGap.
type pqItem struct {
	score int
	state QueueState
}

// priorityQueue is a container/heap min-heap ordered first by score, then by
// QueueState's own order, matching the ordered-set semantics the original
// search relies on for determinism.
type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}
	return pq[i].state.less(pq[j].state)
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
