// Package ioreads defines the read-stream boundary the gap-filling core
// consumes: a pull-based source of single reads, plus the composable
// wrappers (ambiguity splitting, reverse-complementing, pairing) that sit
// in front of a raw file-backed stream before reads reach the aligner.
// Construction of the underlying file format (FASTA/FASTQ/BAM) is out of
// scope here; that lives in encoding/fastq and encoding/bam. This package
// only describes and composes the abstract Stream contract those feed.
package ioreads

import (
	stderrors "errors"

	"github.com/grailbio/base/errors"
)

// ErrPairCountMismatch is returned by InterleavedPairedStream when one of
// its two underlying streams runs out of reads before the other.
var ErrPairCountMismatch = stderrors.New("ioreads: mate streams have different read counts")

// SingleRead is one sequence and the name identifying it, the unit of work
// that flows from a Stream into pacbio/galigner.Aligner.
type SingleRead struct {
	Name     string
	Sequence string
}

// Stream is a pull-based source of reads, mirroring encoding/fastq.Scanner's
// Scan/Err shape rather than a channel so a caller controls backpressure and
// can stop early without leaking a goroutine. Next returns false once the
// stream is exhausted or it has failed; callers must then consult Err.
// Streams are not safe for concurrent use by multiple goroutines.
type Stream interface {
	// Next advances to and returns the next read. The second return value
	// is false at end of stream or on error.
	Next() (SingleRead, bool)
	// Err returns the error that stopped the stream, or nil if it merely
	// reached the end.
	Err() error
	// Close releases any resource the stream holds (file handles, the
	// thread pool dispatch queue, etc).
	Close() error
}

// errStream is a Stream that immediately reports err and nothing else,
// used by constructors that validate arguments eagerly rather than failing
// lazily on first Next.
type errStream struct{ err error }

func (e errStream) Next() (SingleRead, bool) { return SingleRead{}, false }
func (e errStream) Err() error               { return e.err }
func (e errStream) Close() error             { return nil }

// SliceStream is an in-memory Stream over a fixed slice of reads, used by
// tests and by callers that have already materialized their reads (e.g.
// from a FASTA index) rather than streaming them off disk.
type SliceStream struct {
	reads []SingleRead
	pos   int
}

// NewSliceStream wraps reads as a Stream.
func NewSliceStream(reads []SingleRead) *SliceStream {
	return &SliceStream{reads: reads}
}

func (s *SliceStream) Next() (SingleRead, bool) {
	if s.pos >= len(s.reads) {
		return SingleRead{}, false
	}
	r := s.reads[s.pos]
	s.pos++
	return r, true
}

func (s *SliceStream) Err() error   { return nil }
func (s *SliceStream) Close() error { return nil }

// requireNonNil returns a non-nil errStream if s is nil, matching the
// boundary-only use of grailbio/base/errors called out for this package
// (internal search failures are values; a nil Stream handed to a wrapper
// constructor is a caller bug at the I/O boundary, so it gets a real
// error rather than a panic on first Next).
func requireNonNil(s Stream, who string) (Stream, bool) {
	if s == nil {
		return errStream{err: errors.E(who, "nil Stream")}, true
	}
	return nil, false
}
