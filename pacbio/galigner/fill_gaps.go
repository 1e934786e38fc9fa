package galigner

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
)

// fillGapsInCluster walks one chain cluster's anchors left to right,
// calling out to the gap filler between adjacent anchors that do not
// already abut one another closely enough to be joined for free. Each
// time a pair cannot be bridged (invalid seeder path limits, or a gap
// fill that fails to find any intermediate edges), the walk accumulated
// so far is flushed as a completed subread and a fresh one is started at
// cur. It returns every non-empty walk produced this way, alongside the
// matching per-walk MappingPath.
func (a *Aligner) fillGapsInCluster(cluster []pacbio.QualityRange, seq string) ([][]graph.EdgeID, []pacbio.MappingPath) {
	var edges [][]graph.EdgeID
	var hits []pacbio.MappingPath

	var curEdges []graph.EdgeID
	var curHits pacbio.MappingPath
	havePrev := false
	var prev pacbio.QualityRange

	flush := func() {
		edges = append(edges, curEdges)
		hits = append(hits, curHits)
		curEdges = nil
		curHits = nil
		havePrev = false
	}

	for i := 0; i < len(cluster); i++ {
		cur := cluster[i]
		if havePrev {
			startV := a.g.EdgeEnd(prev.EdgeID)
			endV := a.g.EdgeStart(cur.EdgeID)
			curFirst := cur.FirstTrustable()
			prevLast := prev.LastTrustable()
			readGapLen := float64(int(curFirst.ReadPosition) - int(prevLast.ReadPosition))

			var stretchedGraphLen float64
			sameEdge := prev.EdgeID == cur.EdgeID
			if !sameEdge {
				// FIXME: is k() relevant
				stretchedGraphLen = float64(int(curFirst.EdgePosition)+a.g.K()) +
					float64(a.g.Length(prev.EdgeID)-int(prevLast.EdgePosition))*a.cfg.PathLimitStretching
			} else {
				stretchedGraphLen = float64(int(curFirst.EdgePosition)-int(prevLast.EdgePosition)) * a.cfg.PathLimitStretching
			}

			needsFilling := (startV != endV || (startV == endV && readGapLen > stretchedGraphLen)) &&
				(!sameEdge ||
					(sameEdge && stretchedGraphLen < 0) ||
					(sameEdge && stretchedGraphLen > 0 && readGapLen > stretchedGraphLen))

			if needsFilling {
				full := a.g.EdgeNucls(prev.EdgeID)
				sAdd := full[prevLast.EdgePosition:a.g.Length(prev.EdgeID)]
				eFull := a.g.EdgeNucls(cur.EdgeID)
				eAdd := eFull[:curFirst.EdgePosition]

				low, high := a.seeder.GetPathLimits(prev, cur, len(sAdd), len(eAdd))
				if low == -1 {
					flush()
					havePrev = false
					// cur is re-examined as the start of the next walk below.
					i--
					continue
				}

				seqEnd := int(curFirst.ReadPosition)
				seqStart := int(prevLast.ReadPosition)
				endPos := seqEnd
				if seqEnd < seqStart {
					endPos = seqStart
				}
				if endPos > len(seq) {
					endPos = len(seq)
				}
				seqString := seq[seqStart:endPos]

				res := a.filler.Run(seqString,
					pacbio.GraphPosition{Edge: prev.EdgeID, EdgePos: int(prevLast.EdgePosition)},
					pacbio.GraphPosition{Edge: cur.EdgeID, EdgePos: int(curFirst.EdgePosition)},
					low, high)
				if len(res.IntermediatePath) == 0 {
					flush()
					havePrev = false
					i--
					continue
				}
				curEdges = append(curEdges, res.IntermediatePath...)
			}
		}

		curFirst := cur.FirstTrustable()
		curLast := cur.LastTrustable()
		curEdges = append(curEdges, cur.EdgeID)
		curHits = append(curHits, pacbio.MappingPathEntry{
			Edge: cur.EdgeID,
			Range: pacbio.MappingRange{
				ReadRange: pacbio.Range{Start: int(curFirst.ReadPosition), End: int(curLast.ReadPosition)},
				EdgeRange: pacbio.Range{Start: int(curFirst.EdgePosition), End: int(curLast.EdgePosition)},
			},
		})
		prev = cur
		havePrev = true
	}
	if len(curEdges) > 0 {
		edges = append(edges, curEdges)
		hits = append(hits, curHits)
	}
	return edges, hits
}
