package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"

	"github.com/synthdose/pbgap/graph"
	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/pacbio/galigner"
)

// simpleSeeder is a stand-in for the chaining/seeding subsystem spec.md §1
// places out of scope: it replays anchor clusters loaded verbatim from a
// text file rather than deriving them from a k-mer index, and answers
// path-limit/compatibility questions with fixed, permissive defaults. A
// production pipeline replaces this with its own seeder implementation of
// pacbio/galigner.Seeder.
type simpleSeeder struct {
	clusters map[string][][]pacbio.QualityRange

	// pathLimitSlack is added to the graph-side length estimate to give the
	// high end of GetPathLimits' (low, high) budget window, standing in for the real
	// seeder's statistical estimate of how far a gap search should be
	// allowed to roam.
	pathLimitSlack int
}

func newSimpleSeeder(pathLimitSlack int) *simpleSeeder {
	return &simpleSeeder{clusters: map[string][][]pacbio.QualityRange{}, pathLimitSlack: pathLimitSlack}
}

// GetChainingClusters returns the clusters loaded for read.Name, or nil if
// none were provided (the read is then left entirely unmapped).
func (s *simpleSeeder) GetChainingClusters(read galigner.Read) [][]pacbio.QualityRange {
	return s.clusters[read.Name]
}

// GetPathLimits always returns a usable window rather than (-1, 0): the
// minimal file format this CLI reads carries no statistical information to
// reject a pair outright, so every pair is considered fillable, bounded by
// pathLimitSlack on top of the combined untrusted-margin length.
func (s *simpleSeeder) GetPathLimits(prev, cur pacbio.QualityRange, sAddLen, eAddLen int) (low, high int) {
	base := sAddLen + eAddLen
	return 0, base + s.pathLimitSlack
}

// CanFollow always allows stitching a GapDescription across two subread
// walks; the real seeder would check the anchors' strand/order consistency.
func (s *simpleSeeder) CanFollow(next, prev pacbio.QualityRange) bool { return true }

// loadAnchors reads the CLI's anchor-cluster text format:
//
//	read <name>
//	cluster
//	anchor <edgeID> <firstTrustableIdx> <lastTrustableIdx> <r0>:<e0>,<r1>:<e1>,...
//	...
//	cluster
//	...
//	read <name2>
//	...
//
// Each "cluster" block becomes one chain cluster; each "anchor" line one
// QualityRange. Blank lines and "#" comments are ignored.
func loadAnchors(r io.Reader) (map[string][][]pacbio.QualityRange, error) {
	out := map[string][][]pacbio.QualityRange{}
	scanner := bufio.NewScanner(r)
	var curRead string
	var curClusters [][]pacbio.QualityRange

	flushRead := func() {
		if curRead != "" {
			out[curRead] = curClusters
		}
		curClusters = nil
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "read":
			flushRead()
			if len(fields) != 2 {
				return nil, errors.E("loadAnchors", "line", lineNo, "want: read <name>")
			}
			curRead = fields[1]
		case "cluster":
			curClusters = append(curClusters, nil)
		case "anchor":
			if len(curClusters) == 0 {
				return nil, errors.E("loadAnchors", "line", lineNo, "anchor before cluster")
			}
			if len(fields) != 5 {
				return nil, errors.E("loadAnchors", "line", lineNo, "want: anchor <edgeID> <first> <last> <positions>")
			}
			edgeID, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, errors.E(err, "loadAnchors", "line", lineNo)
			}
			first, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.E(err, "loadAnchors", "line", lineNo)
			}
			last, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.E(err, "loadAnchors", "line", lineNo)
			}
			positions, err := parsePositions(fields[4])
			if err != nil {
				return nil, errors.E(err, "loadAnchors", "line", lineNo)
			}
			qr := pacbio.QualityRange{
				EdgeID:            graph.EdgeID(edgeID),
				SortedPositions:   positions,
				FirstTrustableIdx: first,
				LastTrustableIdx:  last,
			}
			if len(positions) > 0 {
				sum := 0
				for _, p := range positions {
					sum += int(p.ReadPosition)
				}
				qr.AverageReadPosition = float64(sum) / float64(len(positions))
			}
			clusterIdx := len(curClusters) - 1
			curClusters[clusterIdx] = append(curClusters[clusterIdx], qr)
		default:
			return nil, errors.E("loadAnchors", "line", lineNo, "unknown directive", fields[0])
		}
	}
	flushRead()
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "loadAnchors")
	}
	return out, nil
}

func parsePositions(s string) ([]pacbio.MappingInstance, error) {
	parts := strings.Split(s, ",")
	out := make([]pacbio.MappingInstance, 0, len(parts))
	for _, p := range parts {
		rePos := strings.SplitN(p, ":", 2)
		if len(rePos) != 2 {
			return nil, errors.E("parsePositions", "want r:e pairs", p)
		}
		r, err := strconv.ParseUint(rePos[0], 10, 32)
		if err != nil {
			return nil, errors.E(err, "parsePositions", p)
		}
		e, err := strconv.ParseUint(rePos[1], 10, 32)
		if err != nil {
			return nil, errors.E(err, "parsePositions", p)
		}
		out = append(out, pacbio.MappingInstance{ReadPosition: uint32(r), EdgePosition: uint32(e)})
	}
	return out, nil
}
