// Package pbpb is the stable interchange shape for a finished read
// mapping: a flat, explicitly-tagged mirror of pacbio.OneReadMapping meant
// to travel to downstream consumers (a formatter, a BAM writer, a JSON
// sink) once gap-filling and end-restoration are done, the way biopb's
// generated message types give the rest of the teacher's pipeline a stable
// wire shape independent of any one package's internal representation.
package pbpb

import (
	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
)

// Position is a (read offset, edge offset) coordinate at one end of a
// Subread. It gives two positions a total order, mirroring biopb.Coord's
// Compare/LT/EQ idiom for comparing wire-level positions.
type Position struct {
	SeqPos  int32 `json:"seq_pos"`
	EdgePos int32 `json:"edge_pos"`
}

// Compare returns (negative, 0, positive) if (p<o, p=o, p>o), ordering
// first by read position, then by edge position, mirroring
// biopb.Coord.Compare's ref-then-offset ordering.
func (p Position) Compare(o Position) int {
	if p.SeqPos != o.SeqPos {
		return int(p.SeqPos - o.SeqPos)
	}
	return int(p.EdgePos - o.EdgePos)
}

func (p Position) LT(o Position) bool { return p.Compare(o) < 0 }
func (p Position) LE(o Position) bool { return p.Compare(o) <= 0 }
func (p Position) GT(o Position) bool { return p.Compare(o) > 0 }
func (p Position) GE(o Position) bool { return p.Compare(o) >= 0 }
func (p Position) EQ(o Position) bool { return p.Compare(o) == 0 }

// Gap mirrors pacbio.GapDescription with wire-stable field names.
type Gap struct {
	EdgeBefore      graph.EdgeID `json:"edge_before"`
	EdgeAfter       graph.EdgeID `json:"edge_after"`
	ReadSubSequence string       `json:"read_sub_sequence"`
	LeftOffset      int32        `json:"left_offset"`
	RightOffset     int32        `json:"right_offset"`
	OverlapTrimmed  bool         `json:"overlap_trimmed"`
}

// Subread is one walk of a ReadMapping: the edges it crosses and the
// read/edge positions at either end.
type Subread struct {
	Edges []graph.EdgeID `json:"edges"`
	Start Position       `json:"start"`
	End   Position       `json:"end"`
}

// ReadMapping is the stable interchange shape of one read's alignment
// result: every field a downstream consumer needs, with none of
// pacbio.OneReadMapping's parallel-slice bookkeeping (AnchorHits, the
// ReadRanges/SubreadWalks index correspondence) exposed.
type ReadMapping struct {
	ReadName string    `json:"read_name"`
	Subreads []Subread `json:"subreads"`
	Gaps     []Gap     `json:"gaps"`
}

// FromOneReadMapping converts m, the cluster processor's internal result
// for the read named readName, into its interchange shape.
func FromOneReadMapping(readName string, m pacbio.OneReadMapping) ReadMapping {
	out := ReadMapping{ReadName: readName}
	for i, walk := range m.SubreadWalks {
		var rng pacbio.PathRange
		if i < len(m.ReadRanges) {
			rng = m.ReadRanges[i]
		}
		out.Subreads = append(out.Subreads, Subread{
			Edges: walk,
			Start: Position{SeqPos: int32(rng.PathStart.SeqPos), EdgePos: int32(rng.PathStart.EdgePos)},
			End:   Position{SeqPos: int32(rng.PathEnd.SeqPos), EdgePos: int32(rng.PathEnd.EdgePos)},
		})
	}
	for _, g := range m.Gaps {
		out.Gaps = append(out.Gaps, Gap{
			EdgeBefore:      g.EdgeBefore,
			EdgeAfter:       g.EdgeAfter,
			ReadSubSequence: g.ReadSubSequence,
			LeftOffset:      int32(g.LeftOffset),
			RightOffset:     int32(g.RightOffset),
			OverlapTrimmed:  g.OverlapTrimmed,
		})
	}
	return out
}
