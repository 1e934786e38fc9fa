package graph

// revCompTable maps a nucleotide byte to its complement; anything outside
// {A,C,G,T,a,c,g,t} maps to 'N', the alphabet's one unknown symbol.
var revCompTable = [256]byte{}

func init() {
	for i := range revCompTable {
		revCompTable[i] = 'N'
	}
	pairs := []struct{ from, to byte }{
		{'A', 'T'}, {'a', 'T'},
		{'T', 'A'}, {'t', 'A'},
		{'C', 'G'}, {'c', 'G'},
		{'G', 'C'}, {'g', 'C'},
	}
	for _, p := range pairs {
		revCompTable[p.from] = p.to
	}
}

// ReverseComplement returns the reverse complement of an ACGT(N) string.
func ReverseComplement(s string) string {
	out := make([]byte, len(s))
	n := len(s)
	for i := 0; i < n; i++ {
		out[i] = revCompTable[s[n-1-i]]
	}
	return string(out)
}

type simpleEdge struct {
	nucls      string
	start, end VertexID
	conjugate  EdgeID
}

// SimpleGraph is a small in-memory Graph, built via AddEdge, useful for
// tests and command-line tools that load a handful of contigs rather than
// a full assembly. It is not safe for concurrent writes; once built it
// satisfies Graph's read-only contract and may be shared across workers.
type SimpleGraph struct {
	k        int
	edges    map[EdgeID]simpleEdge
	outgoing map[VertexID][]EdgeID
	incoming map[VertexID][]EdgeID
	nextEdge EdgeID
	nextVert VertexID
}

// NewSimpleGraph creates an empty graph with the given k-mer parameter.
func NewSimpleGraph(k int) *SimpleGraph {
	return &SimpleGraph{
		k:        k,
		edges:    make(map[EdgeID]simpleEdge),
		outgoing: make(map[VertexID][]EdgeID),
		incoming: make(map[VertexID][]EdgeID),
		nextEdge: 1,
		nextVert: 1,
	}
}

// NewVertex allocates and returns a fresh vertex.
func (g *SimpleGraph) NewVertex() VertexID {
	v := g.nextVert
	g.nextVert++
	return v
}

// AddEdge adds an edge from start to end carrying nucls (length
// Length(e)+k). It does not set a conjugate; call SetConjugate for edges
// that need one. Returns the new edge's ID.
func (g *SimpleGraph) AddEdge(start, end VertexID, nucls string) EdgeID {
	e := g.nextEdge
	g.nextEdge++
	g.edges[e] = simpleEdge{nucls: nucls, start: start, end: end}
	g.outgoing[start] = append(g.outgoing[start], e)
	g.incoming[end] = append(g.incoming[end], e)
	return e
}

// SetConjugate records e1 and e2 as each other's reverse-complement edge.
func (g *SimpleGraph) SetConjugate(e1, e2 EdgeID) {
	ed1, ed2 := g.edges[e1], g.edges[e2]
	ed1.conjugate = e2
	ed2.conjugate = e1
	g.edges[e1] = ed1
	g.edges[e2] = ed2
}

func (g *SimpleGraph) K() int { return g.k }

func (g *SimpleGraph) Length(e EdgeID) int {
	return len(g.edges[e].nucls) - g.k
}

func (g *SimpleGraph) EdgeNucls(e EdgeID) string { return g.edges[e].nucls }

func (g *SimpleGraph) EdgeStart(e EdgeID) VertexID { return g.edges[e].start }

func (g *SimpleGraph) EdgeEnd(e EdgeID) VertexID { return g.edges[e].end }

func (g *SimpleGraph) OutgoingEdges(v VertexID) []EdgeID {
	return g.outgoing[v]
}

func (g *SimpleGraph) Conjugate(e EdgeID) EdgeID { return g.edges[e].conjugate }

func (g *SimpleGraph) IsTerminalVertex(v VertexID) bool {
	return len(g.incoming[v]) == 0 || len(g.outgoing[v]) == 0
}
