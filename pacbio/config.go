package pacbio

// GapClosingConfig controls the gap-filling search: whether it runs at
// all, how aggressively it explores, and what it reports back.
type GapClosingConfig struct {
	// RunDijkstra is the master switch for the gap-filler façade. When
	// false, Run always reports failure without searching.
	RunDijkstra bool

	// RestoreEnds enables open-ended reconstruction on the two ends of a
	// read that collapsed to a single subread walk, extending the walk
	// until the read is exhausted.
	RestoreEnds bool

	// MaxVertexInGap caps the number of vertices admitted into a gap
	// search's precomputed reachable-vertex set.
	MaxVertexInGap int

	// QueueLimit caps the live frontier size of a single search; exceeding
	// it terminates the search with the best end-state found so far, if
	// any.
	QueueLimit int

	// IterationLimit caps the number of frontier pops in a single search;
	// same behavior as QueueLimit on exhaustion.
	IterationLimit int

	// FindShortestPath, if true, keeps exploring at equal priority after
	// the first success to tighten the search's score bound, rather than
	// short-circuiting on the first terminal state reached.
	FindShortestPath bool

	// RestoreMapping causes the search to additionally report a full
	// MappingPath alongside the plain edge sequence.
	RestoreMapping bool

	// PenaltyInterval is the row-gating slack (in edit-distance units)
	// applied when deciding whether a frontier at a given read index is
	// competitive enough with the best known score at that same index to
	// stay in the queue.
	PenaltyInterval int

	// PathLimitStretching scales the graph-side length estimate used by
	// the cluster processor to decide whether two adjacent anchors need a
	// gap search between them at all.
	PathLimitStretching float64
}

// DefaultGapClosingConfig holds the configuration a caller gets unless it
// overrides individual fields.
var DefaultGapClosingConfig = GapClosingConfig{
	RunDijkstra:         false,
	RestoreEnds:         false,
	MaxVertexInGap:      0,
	QueueLimit:          0,
	IterationLimit:      0,
	FindShortestPath:    false,
	RestoreMapping:      false,
	PenaltyInterval:     20,
	PathLimitStretching: 1.0,
}
