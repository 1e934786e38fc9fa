// Package seqdist implements bounded edit-distance primitives over short
// nucleotide strings: global (Needleman-Wunsch) and semi-global
// (Smith-Waterman-Hamming-style) distance, each capped by a caller-supplied
// budget so that callers never pay for alignments they would discard anyway.
//
// All three exported functions share one DP table. Given strings s and t,
// matrix cell D[i][j] holds the edit distance between t[:i] and s[:j]; the
// three functions differ only in which cells of that table they read back:
// NWDistance reads the single bottom-right corner (both ends pinned),
// SHWDistance reads the entire bottom row (t pinned, s free at the end),
// SHWDistance2 reads the entire right column (s pinned, t free at the end).
package seqdist

// matrix is a bounded Levenshtein DP table, t along rows and s along
// columns. Values that cannot be proven <= the caller's budget are left at
// unreached, a sentinel one larger than the budget.
type matrix struct {
	nRow, nCol int
	budget     int
	unreached  int
	data       []int
}

func newMatrix(nRow, nCol, budget int) *matrix {
	m := &matrix{
		nRow:      nRow,
		nCol:      nCol,
		budget:    budget,
		unreached: budget + 1,
		data:      make([]int, nRow*nCol),
	}
	return m
}

func (m *matrix) at(i, j int) int { return m.data[i*m.nCol+j] }
func (m *matrix) set(i, j, v int) { m.data[i*m.nCol+j] = v }

// fill computes the whole table, row by row, banding each row to the column
// range that could possibly stay within budget and bailing out early once a
// full row's minimum exceeds the budget (no later row can recover, since
// every additional row only adds a deletion against some column). Returns
// false if filling aborted early; cells beyond the abort point are left at
// unreached.
func (m *matrix) fill(s, t string) (complete bool) {
	budget := m.budget
	for j := 0; j <= m.nCol-1 && j <= budget; j++ {
		m.set(0, j, j)
	}
	for j := budget + 1; j < m.nCol; j++ {
		m.set(0, j, m.unreached)
	}
	for i := 1; i < m.nRow; i++ {
		lo := i - budget
		if lo < 0 {
			lo = 0
		}
		hi := i + budget
		if hi > m.nCol-1 {
			hi = m.nCol - 1
		}
		rowMin := m.unreached
		for j := 0; j < lo; j++ {
			m.set(i, j, m.unreached)
		}
		if lo == 0 {
			m.set(i, 0, i)
			if i < rowMin {
				rowMin = i
			}
		}
		for j := lo; j <= hi; j++ {
			if j == 0 {
				continue
			}
			diag := m.at(i-1, j-1)
			if s[j-1] != t[i-1] {
				diag++
			}
			up := m.at(i-1, j) + 1
			left := m.at(i, j-1) + 1
			v := diag
			if up < v {
				v = up
			}
			if left < v {
				v = left
			}
			m.set(i, j, v)
			if v < rowMin {
				rowMin = v
			}
		}
		for j := hi + 1; j < m.nCol; j++ {
			m.set(i, j, m.unreached)
		}
		if rowMin > budget {
			for k := i + 1; k < m.nRow; k++ {
				for j := 0; j < m.nCol; j++ {
					m.set(k, j, m.unreached)
				}
			}
			return false
		}
	}
	return true
}

// NWDistance returns the global (both-ends-pinned) edit distance between s
// and t, or -1 if it exceeds budget.
func NWDistance(s, t string, budget int) int {
	if budget < 0 {
		return -1
	}
	m := newMatrix(len(t)+1, len(s)+1, budget)
	m.fill(s, t)
	v := m.at(len(t), len(s))
	if v > budget {
		return -1
	}
	return v
}

// SHWDistance computes the semi-global distance where t must be matched in
// full but s may be consumed only partially. For every prefix length p in
// [1, len(s)] whose alignment cost against the whole of t is <= budget, it
// appends p-1 (the inclusive index into s of the last consumed character) to
// positions and the corresponding cost to scores, in increasing order of p.
func SHWDistance(s, t string, budget int) (positions, scores []int) {
	if budget < 0 {
		return nil, nil
	}
	m := newMatrix(len(t)+1, len(s)+1, budget)
	m.fill(s, t)
	for j := 1; j <= len(s); j++ {
		v := m.at(len(t), j)
		if v <= budget {
			positions = append(positions, j-1)
			scores = append(scores, v)
		}
	}
	return positions, scores
}

// SHWDistance2 is the single-best variant of the mirror semi-global mode: s
// must be matched in full while t may be consumed only partially. It returns
// the minimal cost over every prefix length of t, the inclusive index into t
// of the last consumed character in the best such prefix, or (-1, -1) if no
// prefix of t stays within budget. Ties are broken toward the longest prefix
// of t, since a search driver extending across edges gets more mileage out
// of consuming more of the current edge before starting the next hop.
func SHWDistance2(s, t string, budget int) (score, position int) {
	if budget < 0 {
		return -1, -1
	}
	m := newMatrix(len(t)+1, len(s)+1, budget)
	m.fill(s, t)
	score, position = -1, -1
	for i := 0; i <= len(t); i++ {
		v := m.at(i, len(s))
		if v <= budget && (score == -1 || v <= score) {
			score = v
			position = i - 1
		}
	}
	return score, position
}
