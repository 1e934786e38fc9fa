package galigner

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/seqdist"
)

// overlapSearchSlack bounds how far CreateGapInfoTryFixOverlap looks either
// side of the read-coordinate overlap length for the best-aligning trim;
// trustable-index boundaries are themselves approximate by a few bases, so
// the literal overlap length is only a starting guess.
const overlapSearchSlack = 5

// CreateGapInfoTryFixOverlap builds the GapDescription joining edgeBefore
// (trusted up to leftOffset) and edgeAfter (trusted from rightOffset),
// using the read substring seq[seqStart:seqEnd] to span them.
//
// seqEnd can fall before seqStart: the two anchors' trustable read
// positions overlapped rather than left a gap, which happens whenever the
// seeding subsystem's trustable boundaries are conservative. When that
// happens there is no literal read substring to spell out, so instead the
// flanking edges' own spelled sequences are trimmed against each other:
// candidate overlap lengths near seqStart-seqEnd are scored against both
// edges' sequence with seqdist.NWDistance, and the best-scoring length is
// clipped off both flanks, producing a GapDescription with no read
// substring and OverlapTrimmed set.
//
// Returns the zero GapDescription if no reasonable join could be built
// (out-of-range offsets, or the trim leaves nothing to work with).
func CreateGapInfoTryFixOverlap(
	g graph.Graph,
	seq string,
	seqStart, seqEnd int,
	edgeBefore graph.EdgeID, leftOffset int,
	edgeAfter graph.EdgeID, rightOffset int,
) pacbio.GapDescription {
	if leftOffset < 0 || leftOffset > g.Length(edgeBefore) || rightOffset < 0 || rightOffset > g.Length(edgeAfter) {
		return pacbio.GapDescription{}
	}

	if seqEnd >= seqStart {
		if seqStart < 0 || seqEnd > len(seq) {
			return pacbio.GapDescription{}
		}
		return pacbio.GapDescription{
			EdgeBefore:      edgeBefore,
			EdgeAfter:       edgeAfter,
			ReadSubSequence: seq[seqStart:seqEnd],
			LeftOffset:      leftOffset,
			RightOffset:     rightOffset,
			OverlapTrimmed:  false,
		}
	}

	// seqEnd < seqStart: the anchors overlap in read coordinates by
	// seqStart-seqEnd bases. Neither flank's untrusted margin (edgeBefore
	// from leftOffset to its end, edgeAfter from its start to rightOffset)
	// was confirmed by an anchor, so the two margins are candidates for
	// spelling the same bases twice. Trim a run off the start of
	// edgeBefore's margin and the end of edgeAfter's margin (lengths near
	// the read-coordinate overlap, ±slack), scoring each candidate length
	// by how well the two trimmed runs align, and keep whichever length
	// scores best.
	guess := seqStart - seqEnd
	before := g.EdgeNucls(edgeBefore)
	after := g.EdgeNucls(edgeAfter)
	maxTrim := g.Length(edgeBefore) - leftOffset
	if rightOffset < maxTrim {
		maxTrim = rightOffset
	}

	bestLen := -1
	bestScore := -1
	lo := guess - overlapSearchSlack
	if lo < 0 {
		lo = 0
	}
	hi := guess + overlapSearchSlack
	if hi > maxTrim {
		hi = maxTrim
	}
	for trim := lo; trim <= hi; trim++ {
		tail := before[leftOffset : leftOffset+trim]
		head := after[rightOffset-trim : rightOffset]
		score := seqdist.NWDistance(tail, head, trim+1)
		if score < 0 {
			continue
		}
		if bestLen == -1 || score < bestScore || (score == bestScore && trim > bestLen) {
			bestLen = trim
			bestScore = score
		}
	}
	if bestLen <= 0 {
		return pacbio.GapDescription{}
	}

	return pacbio.GapDescription{
		EdgeBefore:      edgeBefore,
		EdgeAfter:       edgeAfter,
		ReadSubSequence: "",
		LeftOffset:      leftOffset + bestLen,
		RightOffset:     rightOffset - bestLen,
		OverlapTrimmed:  true,
	}
}
