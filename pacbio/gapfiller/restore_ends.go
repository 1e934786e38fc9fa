package gapfiller

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/pacbio/dijkstra"
)

// RestoreEnd extends the single subread walk (hits, edges), which
// together describe one uninterrupted walk through the graph, off one of
// its two ends until the read is exhausted or the search budget is spent.
// forward extends past the last anchor toward the end of the read;
// backward (forward == false) extends past the first anchor toward its
// beginning. It returns the possibly-extended edge walk and the edit
// distance of the extension (0 if nothing was added), and writes the new
// end of rng on success.
//
// Backward extension has no separate search code: it runs the same
// forward-only EndsReconstructor on the conjugate (reverse-complement)
// edge of the walk's first edge against the reverse-complemented read
// prefix, then maps the conjugate path back: the standard way a
// bidirectional de Bruijn graph lets one direction's search code serve
// both directions.
func (f *GapFiller) RestoreEnd(hits pacbio.MappingPath, edges []graph.EdgeID, seq string, forward bool, rng *pacbio.PathRange) ([]graph.EdgeID, int) {
	if len(hits) == 0 || len(edges) == 0 {
		return edges, 0
	}
	if forward {
		return f.restoreForward(hits, edges, seq, rng)
	}
	return f.restoreBackward(hits, edges, seq, rng)
}

func (f *GapFiller) restoreForward(hits pacbio.MappingPath, edges []graph.EdgeID, seq string, rng *pacbio.PathRange) ([]graph.EdgeID, int) {
	last := hits[len(hits)-1]
	startEdge := last.Edge
	startPos := last.Range.EdgeRange.End
	seqStart := last.Range.ReadRange.End

	rng.PathEnd = pacbio.SeqGraphPosition{SeqPos: seqStart, EdgePos: startPos}
	if !f.cfg.RestoreEnds || seqStart >= len(seq) {
		return edges, 0
	}

	remaining := seq[seqStart:]
	r := dijkstra.NewEndsReconstructor(f.g, f.cfg, remaining, startEdge, startPos, len(remaining))
	defer r.Close()
	r.CloseGap()

	score := r.GetEditDistance()
	if score < 0 {
		return edges, 0
	}
	path := r.GetPath()
	if len(path) > 1 {
		edges = append(edges, path[1:]...)
	}
	rng.PathEnd = pacbio.SeqGraphPosition{
		SeqPos:  seqStart + r.GetSeqEndPosition() + 1,
		EdgePos: r.GetPathEndPosition(),
	}
	return edges, score
}

func (f *GapFiller) restoreBackward(hits pacbio.MappingPath, edges []graph.EdgeID, seq string, rng *pacbio.PathRange) ([]graph.EdgeID, int) {
	first := hits[0]
	startEdge := first.Edge
	startPos := first.Range.EdgeRange.Start
	seqEnd := first.Range.ReadRange.Start

	rng.PathStart = pacbio.SeqGraphPosition{SeqPos: seqEnd, EdgePos: startPos}
	if !f.cfg.RestoreEnds || seqEnd <= 0 {
		return edges, 0
	}

	prefix := seq[:seqEnd]
	reversed := graph.ReverseComplement(prefix)
	conjEdge := f.g.Conjugate(startEdge)
	conjStartPos := f.g.Length(conjEdge) - startPos

	r := dijkstra.NewEndsReconstructor(f.g, f.cfg, reversed, conjEdge, conjStartPos, len(reversed))
	defer r.Close()
	r.CloseGap()

	score := r.GetEditDistance()
	if score < 0 {
		return edges, 0
	}
	path := r.GetPath()
	prepend := make([]graph.EdgeID, 0, len(path)-1)
	for i := len(path) - 1; i >= 1; i-- {
		prepend = append(prepend, f.g.Conjugate(path[i]))
	}
	edges = append(prepend, edges...)

	lastConj := path[len(path)-1]
	lastOrig := f.g.Conjugate(lastConj)
	// GetPathEndPosition can reach the full nucleotide length of lastConj
	// (Length+K, not just Length; see NewEndsReconstructor's
	// fast path, which reads off the whole edge string including the
	// k-mer overlap), so the position must be mirrored through the full
	// length, not just the k-mer-exclusive one.
	fullLen := f.g.Length(lastOrig) + f.g.K()
	newStartPos := fullLen - r.GetPathEndPosition()
	rng.PathStart = pacbio.SeqGraphPosition{
		SeqPos:  seqEnd - r.GetSeqEndPosition() - 1,
		EdgePos: newStartPos,
	}
	return edges, score
}
