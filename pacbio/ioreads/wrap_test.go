package ioreads

import "testing"

func drain(t *testing.T, s Stream) []SingleRead {
	t.Helper()
	var out []SingleRead
	for {
		r, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	return out
}

func TestLongestValidWrapKeepsLongestRun(t *testing.T) {
	src := NewSliceStream([]SingleRead{
		{Name: "r1", Sequence: "NNACGTACGTNNACGTNN"},
		{Name: "r2", Sequence: "NNNNN"},
		{Name: "r3", Sequence: "ACGT"},
	})
	got := drain(t, LongestValidWrap(src))
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2 (all-N read dropped): %+v", len(got), got)
	}
	if got[0].Sequence != "ACGTACGT" {
		t.Fatalf("got[0].Sequence = %q, want %q", got[0].Sequence, "ACGTACGT")
	}
	if got[1].Sequence != "ACGT" {
		t.Fatalf("got[1].Sequence = %q, want %q", got[1].Sequence, "ACGT")
	}
}

func TestLongestValidWrapNoAmbiguitySymbolsPassesThrough(t *testing.T) {
	src := NewSliceStream([]SingleRead{{Name: "r1", Sequence: "ACGTACGT"}})
	got := drain(t, LongestValidWrap(src))
	if len(got) != 1 || got[0].Sequence != "ACGTACGT" {
		t.Fatalf("got %+v, want unchanged single read", got)
	}
}

func TestReverseComplementWrapEmitsReadThenRC(t *testing.T) {
	src := NewSliceStream([]SingleRead{{Name: "r1", Sequence: "ACGT"}})
	got := drain(t, ReverseComplementWrap(src))
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2", len(got))
	}
	if got[0].Sequence != "ACGT" {
		t.Fatalf("got[0].Sequence = %q, want %q", got[0].Sequence, "ACGT")
	}
	if got[1].Sequence != "ACGT" || got[1].Name != "r1/rc" {
		// ACGT reverse-complements to itself.
		t.Fatalf("got[1] = %+v, want {r1/rc ACGT}", got[1])
	}
}

func TestOrientationChangingWrapFlipsSecondMateFR(t *testing.T) {
	src := NewSliceStream([]SingleRead{
		{Name: "m1", Sequence: "ACGT"},
		{Name: "m2", Sequence: "TTTT"},
	})
	got := drain(t, OrientationChangingWrap(src, OrientationFR))
	if got[0].Sequence != "ACGT" {
		t.Fatalf("mate1 changed: got %q", got[0].Sequence)
	}
	if got[1].Sequence != "AAAA" {
		t.Fatalf("mate2 not reverse-complemented: got %q, want %q", got[1].Sequence, "AAAA")
	}
}

func TestInterleavedPairedStreamAlternatesMates(t *testing.T) {
	s1 := NewSliceStream([]SingleRead{{Name: "a1"}, {Name: "a2"}})
	s2 := NewSliceStream([]SingleRead{{Name: "b1"}, {Name: "b2"}})
	p := NewInterleavedPairedStream(s1, s2)
	got := drain(t, p)
	want := []string{"a1", "b1", "a2", "b2"}
	if len(got) != len(want) {
		t.Fatalf("got %d reads, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("got[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestInterleavedPairedStreamMismatchedCountsReportsErr(t *testing.T) {
	s1 := NewSliceStream([]SingleRead{{Name: "a1"}, {Name: "a2"}})
	s2 := NewSliceStream([]SingleRead{{Name: "b1"}})
	p := NewInterleavedPairedStream(s1, s2)
	for {
		if _, ok := p.Next(); !ok {
			break
		}
	}
	if p.Err() != ErrPairCountMismatch {
		t.Fatalf("Err() = %v, want ErrPairCountMismatch", p.Err())
	}
}

func TestSeparatePairedStreamNextPair(t *testing.T) {
	s1 := NewSliceStream([]SingleRead{{Name: "a1"}, {Name: "a2"}})
	s2 := NewSliceStream([]SingleRead{{Name: "b1"}, {Name: "b2"}})
	p := NewSeparatePairedStream(s1, s2)
	m1, m2, ok := p.NextPair()
	if !ok || m1.Name != "a1" || m2.Name != "b1" {
		t.Fatalf("NextPair() = %+v, %+v, %v", m1, m2, ok)
	}
	m1, m2, ok = p.NextPair()
	if !ok || m1.Name != "a2" || m2.Name != "b2" {
		t.Fatalf("NextPair() = %+v, %+v, %v", m1, m2, ok)
	}
	if _, _, ok = p.NextPair(); ok {
		t.Fatalf("NextPair() after exhaustion: want ok=false")
	}
}

func TestLongestValidRunEmptyInput(t *testing.T) {
	start, end := longestValidRun("")
	if start != 0 || end != 0 {
		t.Fatalf("longestValidRun(\"\") = (%d, %d), want (0, 0)", start, end)
	}
}
