package pbpb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
)

func TestFromOneReadMappingCopiesSubreadsAndGaps(t *testing.T) {
	m := pacbio.OneReadMapping{
		SubreadWalks: [][]graph.EdgeID{{1, 2}, {3}},
		ReadRanges: []pacbio.PathRange{
			{PathStart: pacbio.SeqGraphPosition{SeqPos: 0, EdgePos: 0}, PathEnd: pacbio.SeqGraphPosition{SeqPos: 10, EdgePos: 2}},
			{PathStart: pacbio.SeqGraphPosition{SeqPos: 15, EdgePos: 0}, PathEnd: pacbio.SeqGraphPosition{SeqPos: 20, EdgePos: 1}},
		},
		Gaps: []pacbio.GapDescription{
			{EdgeBefore: 1, EdgeAfter: 3, ReadSubSequence: "ACGT", LeftOffset: 2, RightOffset: 4},
		},
	}

	got := FromOneReadMapping("r1", m)
	assert.Equal(t, "r1", got.ReadName)
	assert.Len(t, got.Subreads, 2)
	assert.Equal(t, Position{SeqPos: 0, EdgePos: 0}, got.Subreads[0].Start)
	assert.Equal(t, Position{SeqPos: 10, EdgePos: 2}, got.Subreads[0].End)
	assert.Equal(t, []graph.EdgeID{1, 2}, got.Subreads[0].Edges)
	if assert.Len(t, got.Gaps, 1) {
		assert.Equal(t, "ACGT", got.Gaps[0].ReadSubSequence)
		assert.False(t, got.Gaps[0].OverlapTrimmed)
	}
}

func TestPositionCompareOrdersBySeqPosThenEdgePos(t *testing.T) {
	a := Position{SeqPos: 1, EdgePos: 5}
	b := Position{SeqPos: 1, EdgePos: 9}
	c := Position{SeqPos: 2, EdgePos: 0}

	assert.True(t, a.LT(b))
	assert.True(t, b.LT(c))
	assert.True(t, a.EQ(a))
	assert.False(t, a.GE(b))
	assert.False(t, b.LE(a))
}
