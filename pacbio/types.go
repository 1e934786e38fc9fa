// Package pacbio holds the data model shared by the gap-filling search
// (pacbio/dijkstra), its façade (pacbio/gapfiller), and the anchor-cluster
// processor that drives both (pacbio/galigner): anchors, mapping paths, and
// the per-read alignment result.
package pacbio

import "github.com/synthdose/pbgap/graph"

// Range is a half-open interval [Start, End).
type Range struct {
	Start, End int
}

// MappingInstance states that a particular k-mer of the read lies at a
// particular offset on an edge.
type MappingInstance struct {
	ReadPosition uint32
	EdgePosition uint32
}

// MappingRange pairs a read-coordinate range with the edge-coordinate range
// it maps to.
type MappingRange struct {
	ReadRange Range
	EdgeRange Range
}

// MappingPathEntry is one (edge, range) step of a MappingPath.
type MappingPathEntry struct {
	Edge  graph.EdgeID
	Range MappingRange
}

// MappingPath is an ordered sequence of edges with the read/edge ranges
// they were matched against.
type MappingPath []MappingPathEntry

// QualityRange is a candidate anchor of one read against one edge: a
// sorted run of MappingInstances with a trustable sub-range delimiting the
// high-confidence region used for clustering and gap arithmetic.
type QualityRange struct {
	EdgeID              graph.EdgeID
	SortedPositions     []MappingInstance
	FirstTrustableIdx   int
	LastTrustableIdx    int
	AverageReadPosition float64
}

// Valid reports whether the anchor's trustable-range invariant holds:
// 0 <= FirstTrustableIdx <= LastTrustableIdx < len(SortedPositions).
func (q QualityRange) Valid() bool {
	n := len(q.SortedPositions)
	return q.FirstTrustableIdx >= 0 &&
		q.FirstTrustableIdx <= q.LastTrustableIdx &&
		q.LastTrustableIdx < n
}

// FirstTrustable and LastTrustable return the MappingInstances delimiting
// the anchor's high-confidence region.
func (q QualityRange) FirstTrustable() MappingInstance {
	return q.SortedPositions[q.FirstTrustableIdx]
}

func (q QualityRange) LastTrustable() MappingInstance {
	return q.SortedPositions[q.LastTrustableIdx]
}

// GraphPosition is a (edge, offset-on-edge) coordinate.
type GraphPosition struct {
	Edge    graph.EdgeID
	EdgePos int
}

// SeqGraphPosition additionally carries a read-coordinate, used at the two
// ends of a reconstructed walk.
type SeqGraphPosition struct {
	SeqPos  int
	EdgePos int
}

// PathRange gives the read/edge coordinates at the two ends of a
// reconstructed walk.
type PathRange struct {
	PathStart SeqGraphPosition
	PathEnd   SeqGraphPosition
}

// GapDescription describes a pair of subread walks the core could not
// join, with the read sub-sequence spanning the gap and a flag recording
// whether overlap between the flanking edges was trimmed out of it.
type GapDescription struct {
	EdgeBefore, EdgeAfter   graph.EdgeID
	ReadSubSequence         string
	LeftOffset, RightOffset int
	OverlapTrimmed          bool
}

// IsZero reports whether g is the zero-value GapDescription, the sentinel
// used throughout this package for "no gap could be constructed".
func (g GapDescription) IsZero() bool {
	return g == GapDescription{}
}

// OneReadMapping is the per-read output of the cluster processor: the
// subread walks the read was split into, the anchor hits delimiting each
// walk, the gap descriptors between non-joinable neighbours, and the
// read/edge coordinate ranges spanned by each walk.
type OneReadMapping struct {
	SubreadWalks [][]graph.EdgeID
	AnchorHits   []MappingPath
	Gaps         []GapDescription
	ReadRanges   []PathRange
}

// PathLimitProvider is the external seeding subsystem's contract for
// deriving a search budget from a pair of adjacent anchors: it returns
// (low, high) or (-1, 0) if the pair's limits cannot be determined, in
// which case the caller must split the walk at this point rather than
// search.
type PathLimitProvider interface {
	GetPathLimits(prev, cur QualityRange, sAddLen, eAddLen int) (low, high int)
}

// AnchorCompatibility decides whether one anchor may directly follow
// another when stitching two subread walks together across an
// unresolvable gap. Its concrete rule lives in the external seeding
// subsystem; this package only consumes the verdict.
type AnchorCompatibility interface {
	CanFollow(next, prev QualityRange) bool
}
