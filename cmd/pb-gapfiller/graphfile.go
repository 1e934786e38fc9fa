package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"

	"github.com/synthdose/pbgap/graph"
)

// loadGraph reads a small text graph format, one directive per line:
//
//	k <n>
//	edge <id> <startVertex> <endVertex> <nucls>
//	conjugate <id1> <id2>
//
// Blank lines and lines starting with "#" are ignored. This format exists
// only to get a handful of contigs into the CLI for smoke-testing the
// aligner; constructing the real assembly graph from k-mer indices or raw
// reads is the seeding/assembly subsystem's job and out of scope here (see
// SPEC_FULL.md §1).
func loadGraph(r io.Reader) (*graph.SimpleGraph, error) {
	scanner := bufio.NewScanner(r)
	var g *graph.SimpleGraph
	vertices := map[string]graph.VertexID{}
	edges := map[string]graph.EdgeID{}

	vertex := func(name string) graph.VertexID {
		if v, ok := vertices[name]; ok {
			return v
		}
		v := g.NewVertex()
		vertices[name] = v
		return v
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
		case "k":
			if g != nil {
				return nil, errors.E("loadGraph", "line", lineNo, "duplicate k directive")
			}
			k, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, errors.E(err, "loadGraph", "line", lineNo)
			}
			g = graph.NewSimpleGraph(k)
		case "edge":
			if g == nil {
				return nil, errors.E("loadGraph", "line", lineNo, "edge directive before k")
			}
			if len(fields) != 5 {
				return nil, errors.E("loadGraph", "line", lineNo, "want: edge <id> <start> <end> <nucls>")
			}
			start := vertex(fields[2])
			end := vertex(fields[3])
			edges[fields[1]] = g.AddEdge(start, end, fields[4])
		case "conjugate":
			if len(fields) != 3 {
				return nil, errors.E("loadGraph", "line", lineNo, "want: conjugate <id1> <id2>")
			}
			e1, ok1 := edges[fields[1]]
			e2, ok2 := edges[fields[2]]
			if !ok1 || !ok2 {
				return nil, errors.E("loadGraph", "line", lineNo, "unknown edge in conjugate directive")
			}
			g.SetConjugate(e1, e2)
		default:
			return nil, errors.E("loadGraph", "line", lineNo, "unknown directive", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "loadGraph")
	}
	if g == nil {
		return nil, errors.E("loadGraph", "missing k directive")
	}
	return g, nil
}
