// Package galigner drives the gap-filling core end to end: it turns one
// read's anchor clusters into a OneReadMapping, splitting a cluster into
// separate subread walks wherever the gap filler or the seeder's path
// limits say the walk cannot continue, then stitches the surviving walks
// back together with GapDescriptions where topology allows it.
package galigner

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"

	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/pacbio/gapfiller"
)

// Read is one sequence to align, identified for logging and downstream
// bookkeeping.
type Read struct {
	Name     string
	Sequence string
}

// Seeder is the external anchor-chaining subsystem's contract: it turns a
// read into clusters of candidate anchors (already internally sorted by
// the caller into one cluster per chain) and answers path-limit and
// anchor-compatibility questions the cluster processor needs but cannot
// derive from the graph alone. Its implementation (BWA-backed index
// matching, k-mer seeding, whatever) is out of scope.
type Seeder interface {
	pacbio.PathLimitProvider
	pacbio.AnchorCompatibility
	GetChainingClusters(read Read) [][]pacbio.QualityRange
}

// Aligner turns reads into OneReadMappings against one shared, read-only
// graph. It holds no per-read state, so AlignReads constructs one Aligner
// (and the GapFiller it drives) per worker goroutine rather than sharing
// a single instance.
type Aligner struct {
	g      graph.Graph
	cfg    pacbio.GapClosingConfig
	seeder Seeder
	filler *gapfiller.GapFiller
}

// New builds an Aligner over g, using seeder for anchor chaining and
// path-limit/compatibility decisions.
func New(g graph.Graph, cfg pacbio.GapClosingConfig, seeder Seeder) *Aligner {
	return &Aligner{g: g, cfg: cfg, seeder: seeder, filler: gapfiller.New(g, cfg)}
}

// AlignReads aligns every read independently in its own goroutine, one
// Aligner/GapFiller pair per invocation, matching the reference's
// one-GAligner-per-worker-thread model. The shared graph.Graph must be
// concurrency-safe for reads; no locking is introduced here.
func (a *Aligner) AlignReads(reads []Read) []pacbio.OneReadMapping {
	out := make([]pacbio.OneReadMapping, len(reads))
	traverse.Each(len(reads), func(i int) error { // nolint: errcheck
		worker := New(a.g, a.cfg, a.seeder)
		out[i] = worker.GetReadAlignment(reads[i])
		return nil
	})
	return out
}

// GetReadAlignment aligns one read: it obtains the read's chain clusters
// from the seeder, folds each cluster into zero or more subread walks via
// ProcessCluster, optionally extends a lone walk's two ends, and finally
// stitches the surviving walks with gap descriptions.
func (a *Aligner) GetReadAlignment(read Read) pacbio.OneReadMapping {
	clusters := a.seeder.GetChainingClusters(read)

	var sortedEdges [][]graph.EdgeID
	var sortedHits []pacbio.MappingPath
	var startClusters, endClusters []pacbio.QualityRange
	var blockGapCloser []bool

	for _, cluster := range clusters {
		a.processCluster(read.Sequence, cluster, &startClusters, &endClusters, &sortedEdges, &sortedHits, &blockGapCloser)
	}

	readRanges := make([]pacbio.PathRange, 0, len(sortedHits))
	if len(sortedEdges) == 1 && a.cfg.RestoreEnds {
		var rng pacbio.PathRange
		edges, _ := a.filler.RestoreEnd(sortedHits[0], sortedEdges[0], read.Sequence, false, &rng)
		edges, _ = a.filler.RestoreEnd(sortedHits[0], edges, read.Sequence, true, &rng)
		sortedEdges[0] = edges
		readRanges = append(readRanges, rng)
	} else {
		for _, hits := range sortedHits {
			readRanges = append(readRanges, pacbio.PathRange{
				PathStart: pacbio.SeqGraphPosition{
					SeqPos:  hits[0].Range.ReadRange.Start,
					EdgePos: hits[0].Range.EdgeRange.Start,
				},
				PathEnd: pacbio.SeqGraphPosition{
					SeqPos:  hits[len(hits)-1].Range.ReadRange.End,
					EdgePos: hits[len(hits)-1].Range.EdgeRange.End,
				},
			})
		}
	}

	return a.addGapDescriptions(startClusters, endClusters, sortedEdges, sortedHits, readRanges, read.Sequence, blockGapCloser)
}

// processCluster sorts one chain cluster by average read position, folds
// it into zero or more subread walks via fillGapsInCluster, and appends
// the non-empty walks (and their originating start/end anchors) onto the
// running per-read accumulators. The last walk contributed by this
// cluster never blocks gap closing with its right-hand neighbor; every
// other walk does, since it was already split internally for a reason
// (invalid path limits or a failed fill) that a cross-cluster gap
// description would not resolve any better.
func (a *Aligner) processCluster(
	seq string,
	cluster []pacbio.QualityRange,
	startClusters, endClusters *[]pacbio.QualityRange,
	sortedEdges *[][]graph.EdgeID,
	sortedHits *[]pacbio.MappingPath,
	blockGapCloser *[]bool,
) {
	sortClustersByAverageReadPosition(cluster)
	if len(cluster) == 0 {
		return
	}
	first, last := cluster[0], cluster[len(cluster)-1]

	edges, hits := a.fillGapsInCluster(cluster, seq)

	startLen := len(*blockGapCloser)
	for _, walk := range edges {
		if len(walk) == 0 {
			continue
		}
		*startClusters = append(*startClusters, first)
		*endClusters = append(*endClusters, last)
		*sortedEdges = append(*sortedEdges, walk)
		*blockGapCloser = append(*blockGapCloser, true)
	}
	for _, h := range hits {
		if len(h) > 0 {
			*sortedHits = append(*sortedHits, h)
		}
	}
	if len(*blockGapCloser) > startLen {
		(*blockGapCloser)[len(*blockGapCloser)-1] = false
	}
}

func sortClustersByAverageReadPosition(cluster []pacbio.QualityRange) {
	for i := 1; i < len(cluster); i++ {
		for j := i; j > 0 && cluster[j].AverageReadPosition < cluster[j-1].AverageReadPosition; j-- {
			cluster[j], cluster[j-1] = cluster[j-1], cluster[j]
		}
	}
}

// TopologyGap reports whether first and second flank a genuine assembly
// gap rather than a resolvable join: true iff EdgeEnd(first) and
// EdgeStart(second) are both terminal vertices (sink and source,
// respectively). When oriented is false, the symmetric pairing
// (EdgeStart(first), EdgeEnd(second)) is also accepted, for callers that
// cannot tell the two flanks' orientation apart.
func (a *Aligner) TopologyGap(first, second graph.EdgeID, oriented bool) bool {
	res := a.g.IsTerminalVertex(a.g.EdgeEnd(first)) && a.g.IsTerminalVertex(a.g.EdgeStart(second))
	if !oriented {
		res = res || (a.g.IsTerminalVertex(a.g.EdgeStart(first)) && a.g.IsTerminalVertex(a.g.EdgeEnd(second)))
	}
	return res
}

// addGapDescriptions builds a GapDescription for every adjacent pair of
// subread walks that FillGapsInCluster left unjoined (block_gap_closer
// false) but that the graph's topology and the seeder's anchor
// compatibility both allow joining loosely, appending it to the returned
// OneReadMapping's Gaps.
func (a *Aligner) addGapDescriptions(
	startClusters, endClusters []pacbio.QualityRange,
	sortedEdges [][]graph.EdgeID,
	sortedHits []pacbio.MappingPath,
	readRanges []pacbio.PathRange,
	seq string,
	blockGapCloser []bool,
) pacbio.OneReadMapping {
	var gaps []pacbio.GapDescription
	for i := 0; i+1 < len(sortedEdges); i++ {
		if blockGapCloser[i] {
			continue
		}
		j := i + 1
		beforeGap := sortedEdges[i][len(sortedEdges[i])-1]
		afterGap := sortedEdges[j][0]
		if beforeGap == afterGap || beforeGap == a.g.Conjugate(afterGap) {
			continue
		}
		if !a.TopologyGap(beforeGap, afterGap, true) {
			continue
		}
		if !a.seeder.CanFollow(startClusters[j], endClusters[i]) {
			continue
		}
		end, start := endClusters[i], startClusters[j]
		lastTrustable := end.LastTrustable()
		firstTrustable := start.FirstTrustable()
		seqStart := int(lastTrustable.ReadPosition) + a.g.K()
		seqEnd := int(firstTrustable.ReadPosition)
		leftOffset := int(lastTrustable.EdgePosition)
		rightOffset := int(firstTrustable.EdgePosition)

		gap := CreateGapInfoTryFixOverlap(a.g, seq, seqStart, seqEnd, end.EdgeID, leftOffset, start.EdgeID, rightOffset)
		if !gap.IsZero() {
			gaps = append(gaps, gap)
			log.Debug.Printf("galigner: adding gap between subread walks %d and %d", i, j)
		}
	}
	return pacbio.OneReadMapping{
		SubreadWalks: sortedEdges,
		AnchorHits:   sortedHits,
		Gaps:         gaps,
		ReadRanges:   readRanges,
	}
}
