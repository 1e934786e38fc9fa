package ioreads

import (
	gunsafe "github.com/grailbio/base/unsafe"

	"github.com/synthdose/pbgap/biosimd"
	"github.com/synthdose/pbgap/graph"
)

// isAmbiguous reports whether b is outside the four-letter nucleotide
// alphabet (upper or lower case), i.e. it is the "unknown symbol" spec.md
// §1 allows alongside A/C/G/T.
func isAmbiguous(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		return false
	default:
		return true
	}
}

// longestValidRun returns the start/end (half-open) of the longest run of
// non-ambiguous bytes in s, or (0, 0) if s contains no such run. Most reads
// are clean, so it first asks biosimd for a bulk yes/no on whether any
// non-ACGT byte is present at all (the same cheap-gate-before-scan shape
// encoding/fasta uses around CleanASCIISeqInplace) before falling back to
// the byte-at-a-time scan that also has to run lowercase.
func longestValidRun(s string) (start, end int) {
	if s != "" && !biosimd.IsNonACGTPresent(gunsafe.StringToBytes(s)) {
		return 0, len(s)
	}
	bestStart, bestLen := 0, 0
	curStart, curLen := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isAmbiguous(s[i]) {
			if curLen == 0 {
				curStart = i
			}
			curLen++
			continue
		}
		if curLen > bestLen {
			bestLen, bestStart = curLen, curStart
		}
		curLen = 0
	}
	return bestStart, bestStart + bestLen
}

// validWrap is the Stream returned by LongestValidWrap: it filters and
// rewrites each underlying read down to its longest unambiguous substring,
// silently dropping reads with no valid run at all (spec §7's "malformed
// reads drop out silently").
type validWrap struct {
	inner Stream
}

// LongestValidWrap wraps inner so that every read emitted is first cut down
// to the longest substring free of ambiguity symbols; a read with zero
// unambiguous bytes is dropped rather than emitted empty.
func LongestValidWrap(inner Stream) Stream {
	if s, bad := requireNonNil(inner, "LongestValidWrap"); bad {
		return s
	}
	return &validWrap{inner: inner}
}

func (w *validWrap) Next() (SingleRead, bool) {
	for {
		r, ok := w.inner.Next()
		if !ok {
			return SingleRead{}, false
		}
		start, end := longestValidRun(r.Sequence)
		if end <= start {
			continue
		}
		r.Sequence = r.Sequence[start:end]
		return r, true
	}
}

func (w *validWrap) Err() error   { return w.inner.Err() }
func (w *validWrap) Close() error { return w.inner.Close() }

// rcWrap is the Stream returned by ReverseComplementWrap: every underlying
// read is immediately followed by its own reverse complement, named with a
// "/rc" suffix so the two remain distinguishable downstream.
type rcWrap struct {
	inner    Stream
	pend     SingleRead
	havePend bool
}

// ReverseComplementWrap wraps inner so that each read it emits is followed
// immediately by its reverse complement, matching spec §6's RCWrap.
func ReverseComplementWrap(inner Stream) Stream {
	if s, bad := requireNonNil(inner, "ReverseComplementWrap"); bad {
		return s
	}
	return &rcWrap{inner: inner}
}

func (w *rcWrap) Next() (SingleRead, bool) {
	if w.havePend {
		w.havePend = false
		return w.pend, true
	}
	r, ok := w.inner.Next()
	if !ok {
		return SingleRead{}, false
	}
	w.pend = SingleRead{Name: r.Name + "/rc", Sequence: graph.ReverseComplement(r.Sequence)}
	w.havePend = true
	return r, true
}

func (w *rcWrap) Err() error   { return w.inner.Err() }
func (w *rcWrap) Close() error { return w.inner.Close() }

// Orientation identifies which mate of a pair a read wrapped by
// OrientationChangingWrap represents.
type Orientation int

const (
	// OrientationFR is forward/reverse: mate 1 read forward, mate 2
	// reverse-complemented before alignment.
	OrientationFR Orientation = iota
	// OrientationRF is reverse/forward: the mirror of OrientationFR.
	OrientationRF
	// OrientationFF leaves both mates untouched.
	OrientationFF
)

// orientationWrap is the Stream returned by OrientationChangingWrap.
type orientationWrap struct {
	inner  Stream
	orient Orientation
	// mate counts which half of a pair the next read is, under the
	// assumption (matching io_helper.cpp's InterleavingPairedReadStream
	// composition order) that reads arrive already interleaved as
	// mate1, mate2, mate1, mate2, ...
	mate int
}

// OrientationChangingWrap wraps an interleaved paired stream, reverse-
// complementing whichever mate orient says should be flipped so that both
// mates of a pair face the same strand before alignment.
func OrientationChangingWrap(inner Stream, orient Orientation) Stream {
	if s, bad := requireNonNil(inner, "OrientationChangingWrap"); bad {
		return s
	}
	return &orientationWrap{inner: inner, orient: orient}
}

func (w *orientationWrap) Next() (SingleRead, bool) {
	r, ok := w.inner.Next()
	if !ok {
		return SingleRead{}, false
	}
	flip := false
	switch w.orient {
	case OrientationFR:
		flip = w.mate == 1
	case OrientationRF:
		flip = w.mate == 0
	case OrientationFF:
		flip = false
	}
	w.mate ^= 1
	if flip {
		r.Sequence = graph.ReverseComplement(r.Sequence)
	}
	return r, true
}

func (w *orientationWrap) Err() error   { return w.inner.Err() }
func (w *orientationWrap) Close() error { return w.inner.Close() }

// InterleavedPairedStream merges two single-end streams into one stream
// that alternates mate1, mate2, mate1, mate2, ..., stopping (and reporting
// ErrPairCountMismatch) the first time one side runs out before the other.
type InterleavedPairedStream struct {
	s1, s2  Stream
	nextIs1 bool
	err     error
}

// NewInterleavedPairedStream builds an InterleavedPairedStream over s1, s2.
func NewInterleavedPairedStream(s1, s2 Stream) *InterleavedPairedStream {
	return &InterleavedPairedStream{s1: s1, s2: s2, nextIs1: true}
}

func (p *InterleavedPairedStream) Next() (SingleRead, bool) {
	if p.err != nil {
		return SingleRead{}, false
	}
	if p.nextIs1 {
		p.nextIs1 = false
		r, ok := p.s1.Next()
		if !ok {
			if err := p.s1.Err(); err != nil {
				p.err = err
			} else if _, more := p.s2.Next(); more {
				p.err = ErrPairCountMismatch
			}
			return SingleRead{}, false
		}
		return r, true
	}
	p.nextIs1 = true
	r, ok := p.s2.Next()
	if !ok {
		if err := p.s2.Err(); err != nil {
			p.err = err
		} else {
			p.err = ErrPairCountMismatch
		}
		return SingleRead{}, false
	}
	return r, true
}

func (p *InterleavedPairedStream) Err() error { return p.err }

func (p *InterleavedPairedStream) Close() error {
	err1 := p.s1.Close()
	err2 := p.s2.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// SeparatePairedStream is InterleavedPairedStream's sibling for callers
// that want each mate individually rather than interleaved. It exposes
// NextPair instead of implementing Stream directly, since a single Stream
// has no way to say "these two reads are one pair" without interleaving.
type SeparatePairedStream struct {
	s1, s2 Stream
}

// NewSeparatePairedStream builds a SeparatePairedStream over s1, s2.
func NewSeparatePairedStream(s1, s2 Stream) *SeparatePairedStream {
	return &SeparatePairedStream{s1: s1, s2: s2}
}

// NextPair returns the next mate pair, or false once either side is
// exhausted.
func (p *SeparatePairedStream) NextPair() (mate1, mate2 SingleRead, ok bool) {
	r1, ok1 := p.s1.Next()
	r2, ok2 := p.s2.Next()
	if !ok1 || !ok2 {
		return SingleRead{}, SingleRead{}, false
	}
	return r1, r2, true
}

func (p *SeparatePairedStream) Err() error {
	if err := p.s1.Err(); err != nil {
		return err
	}
	return p.s2.Err()
}

func (p *SeparatePairedStream) Close() error {
	err1 := p.s1.Close()
	err2 := p.s2.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
