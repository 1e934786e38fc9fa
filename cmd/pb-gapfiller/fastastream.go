package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/synthdose/pbgap/pacbio/ioreads"
)

// fastaStream is a minimal multi-FASTA ioreads.Stream: ">name" header lines
// followed by one or more sequence lines, concatenated until the next
// header or end of file. It exists only to feed reads into the CLI; a real
// pipeline would use encoding/fasta's indexed reader or encoding/fastq's
// Scanner against a production-sized input.
type fastaStream struct {
	scanner   *bufio.Scanner
	pendName  string
	havePend  bool
	err       error
	exhausted bool
}

func newFASTAStream(r io.Reader) *fastaStream {
	return &fastaStream{scanner: bufio.NewScanner(r)}
}

func (f *fastaStream) Next() (ioreads.SingleRead, bool) {
	if f.exhausted {
		return ioreads.SingleRead{}, false
	}
	var name string
	if f.havePend {
		name = f.pendName
		f.havePend = false
	} else {
		if !f.advanceToHeader() {
			f.exhausted = true
			return ioreads.SingleRead{}, false
		}
		name = strings.TrimPrefix(strings.TrimSpace(f.scanner.Text()), ">")
	}

	var seq strings.Builder
	for f.scanner.Scan() {
		line := f.scanner.Text()
		if strings.HasPrefix(line, ">") {
			f.pendName = strings.TrimPrefix(strings.TrimSpace(line), ">")
			f.havePend = true
			return ioreads.SingleRead{Name: name, Sequence: seq.String()}, true
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	if err := f.scanner.Err(); err != nil {
		f.err = err
	}
	f.exhausted = true
	return ioreads.SingleRead{Name: name, Sequence: seq.String()}, true
}

// advanceToHeader scans forward to the next ">" line, skipping blank lines
// that precede the first record.
func (f *fastaStream) advanceToHeader() bool {
	for f.scanner.Scan() {
		line := strings.TrimSpace(f.scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			return true
		}
	}
	if err := f.scanner.Err(); err != nil {
		f.err = err
	}
	return false
}

func (f *fastaStream) Err() error   { return f.err }
func (f *fastaStream) Close() error { return nil }
