// Command pb-gapfiller is a thin smoke-test harness for the gap-filling
// core: it loads a small text-format assembly graph and a FASTA file of
// long reads, reads a matching anchor-cluster file (the seeding
// subsystem's output, stood in here by a fixed text format; see
// SPEC_FULL.md §1 on why real seeding is out of scope), runs the aligner,
// and prints a short multi-line OneReadMapping summary per read. It is not part of the
// gap-filling core's public API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/synthdose/pbgap/pacbio"
	"github.com/synthdose/pbgap/pacbio/galigner"
	"github.com/synthdose/pbgap/pacbio/ioreads"
	"github.com/synthdose/pbgap/pacbio/pbpb"
)

var (
	graphPath   = flag.String("graph", "", "Path to a text-format graph file (see graphfile.go)")
	readsPath   = flag.String("reads", "", "Path to a FASTA file of long reads")
	anchorsPath = flag.String("anchors", "", "Path to a text-format anchor-cluster file (see seeder.go)")

	runDijkstra      = flag.Bool("run-dijkstra", pacbio.DefaultGapClosingConfig.RunDijkstra, "Enable the gap-filler search")
	restoreEnds      = flag.Bool("restore-ends", pacbio.DefaultGapClosingConfig.RestoreEnds, "Extend read ends past the outermost anchor")
	maxVertexInGap   = flag.Int("max-vertex-in-gap", 1000, "Cap on vertices admitted into a gap's reachable-vertex set")
	queueLimit       = flag.Int("queue-limit", 10000, "Cap on live search-frontier size")
	iterationLimit   = flag.Int("iteration-limit", 10000, "Cap on search frontier pops")
	findShortestPath = flag.Bool("find-shortest-path", pacbio.DefaultGapClosingConfig.FindShortestPath, "Keep exploring after first success to tighten the score bound")
	restoreMapping   = flag.Bool("restore-mapping", pacbio.DefaultGapClosingConfig.RestoreMapping, "Report a full MappingPath alongside the edge sequence")
	penaltyInterval  = flag.Int("penalty-interval", pacbio.DefaultGapClosingConfig.PenaltyInterval, "Row-gating slack, in edit-distance units")
	pathLimitStretch = flag.Float64("path-limit-stretching", pacbio.DefaultGapClosingConfig.PathLimitStretching, "Scale factor on the graph-side gap-length estimate")
	pathLimitSlack   = flag.Int("path-limit-slack", 20, "Slack added on top of the untrusted-margin length by the stand-in seeder's GetPathLimits")
)

func config() pacbio.GapClosingConfig {
	return pacbio.GapClosingConfig{
		RunDijkstra:         *runDijkstra,
		RestoreEnds:         *restoreEnds,
		MaxVertexInGap:      *maxVertexInGap,
		QueueLimit:          *queueLimit,
		IterationLimit:      *iterationLimit,
		FindShortestPath:    *findShortestPath,
		RestoreMapping:      *restoreMapping,
		PenaltyInterval:     *penaltyInterval,
		PathLimitStretching: *pathLimitStretch,
	}
}

// formatMapping renders m through its pbpb interchange shape rather than
// pacbio.OneReadMapping directly, so the CLI's output tracks the same
// stable field layout a downstream BAM writer or JSON sink would consume.
func formatMapping(read galigner.Read, m pacbio.OneReadMapping) string {
	rm := pbpb.FromOneReadMapping(read.Name, m)
	var b strings.Builder
	fmt.Fprintf(&b, "read=%s subreads=%d gaps=%d\n", rm.ReadName, len(rm.Subreads), len(rm.Gaps))
	for i, sr := range rm.Subreads {
		edgeStrs := make([]string, len(sr.Edges))
		for j, e := range sr.Edges {
			edgeStrs[j] = fmt.Sprintf("%d", e)
		}
		fmt.Fprintf(&b, "  subread[%d] edges=[%s] readRange=[%d,%d) edgeEndPos=%d\n",
			i, strings.Join(edgeStrs, ","), sr.Start.SeqPos, sr.End.SeqPos, sr.End.EdgePos)
	}
	for i, g := range rm.Gaps {
		fmt.Fprintf(&b, "  gap[%d] edgeBefore=%d edgeAfter=%d trimmed=%v seq=%q\n",
			i, g.EdgeBefore, g.EdgeAfter, g.OverlapTrimmed, g.ReadSubSequence)
	}
	return b.String()
}

func run() error {
	if *graphPath == "" || *readsPath == "" {
		return fmt.Errorf("both -graph and -reads are required")
	}

	gf, err := os.Open(*graphPath)
	if err != nil {
		return err
	}
	defer gf.Close()
	g, err := loadGraph(gf)
	if err != nil {
		return err
	}

	seeder := newSimpleSeeder(*pathLimitSlack)
	if *anchorsPath != "" {
		af, err := os.Open(*anchorsPath)
		if err != nil {
			return err
		}
		defer af.Close()
		clusters, err := loadAnchors(af)
		if err != nil {
			return err
		}
		seeder.clusters = clusters
	}

	rf, err := os.Open(*readsPath)
	if err != nil {
		return err
	}
	defer rf.Close()

	stream := ioreads.Stream(newFASTAStream(rf))
	stream = ioreads.LongestValidWrap(stream)

	aligner := galigner.New(g, config(), seeder)

	var reads []galigner.Read
	for {
		r, ok := stream.Next()
		if !ok {
			break
		}
		reads = append(reads, galigner.Read{Name: r.Name, Sequence: r.Sequence})
	}
	if err := stream.Err(); err != nil {
		return err
	}

	mappings := aligner.AlignReads(reads)
	for i, m := range mappings {
		fmt.Print(formatMapping(reads[i], m))
	}
	return nil
}

func main() {
	flag.Parse()
	shutdown := grail.Init()
	defer shutdown()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}
