package graph

import farm "github.com/dgryski/go-farm"

// ContentHash64 returns a deterministic 64-bit digest of seq. It exists for
// test and benchmark fixtures that want to recognise an edge by its own
// sequence: AddContentAddressedEdge uses it as the key of its dedup table.
// It does not change how EdgeIDs are assigned; every graph, fixtures
// included, keeps SimpleGraph's plain insertion-order EdgeIDs, which already
// satisfy the opaque, totally-ordered, hashable requirement the search and
// alignment code rely on; this is an additive convenience layered on top,
// not a replacement.
func ContentHash64(seq string) uint64 {
	return farm.Hash64([]byte(seq))
}

// AddContentAddressedEdge adds an edge the same way AddEdge does, but skips
// the insert and returns the existing EdgeID if seen already has an entry
// for seq's content hash, so a fixture built by repeatedly quoting the same
// sequence literal doesn't accumulate duplicate parallel edges. seen is
// owned by the caller so a whole test's fixture can share one dedup table.
func (g *SimpleGraph) AddContentAddressedEdge(start, end VertexID, seq string, seen map[uint64]EdgeID) EdgeID {
	h := ContentHash64(seq)
	if id, ok := seen[h]; ok {
		return id
	}
	id := g.AddEdge(start, end, seq)
	seen[h] = id
	return id
}
