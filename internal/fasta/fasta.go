// Package fasta reads and writes DNA sequences in the FASTA format.
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jjtimmons/dnaseq/internal/dna"
)

var (
	// ErrNotFound is returned when a FASTA file doesn't exist
	ErrNotFound = errors.New("FASTA file not found")

	// ErrFormat is returned for input that isn't a valid FASTA file
	ErrFormat = errors.New("improperly formatted FASTA")
)

// maxLineLength is the longest line the scanner accepts. Unwrapped
// chromosomes can have very long sequence lines
const maxLineLength = 64 * 1024 * 1024

// Read a FASTA file (by its path on local FS) to a slice of Sequences.
// A path of "-" reads from stdin and a ".gz" suffix is decompressed.
func Read(path string) (seqs []*dna.Sequence, err error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	seqs, err = Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return seqs, nil
}

// Parse FASTA records from r. Each record's header is split into an ID and
// a description on the first run of whitespace. Blank lines are ignored and
// sequence lines are joined until the next header.
//
// Records are created with dna.New, so a record with invalid bases fails
// the whole parse with an error wrapping dna.ErrInvalidSequence.
func Parse(r io.Reader) ([]*dna.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	seqs := []*dna.Sequence{}
	var (
		id, description string
		body            strings.Builder
		lineNum         int
		inRecord        bool
	)

	flush := func() error {
		if !inRecord {
			return nil
		}
		seq, err := dna.New(body.String(), dna.WithID(id), dna.WithDescription(description))
		if err != nil {
			return fmt.Errorf("record %s: %w", id, err)
		}
		seqs = append(seqs, seq)
		return nil
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, ">") {
			if !inRecord {
				return nil, fmt.Errorf("%w: sequence before the first header on line %d", ErrFormat, lineNum)
			}
			body.WriteString(line)
			continue
		}

		// new header, finish the last record
		if err := flush(); err != nil {
			return nil, err
		}

		id, description = splitHeader(line[1:])
		if id == "" {
			return nil, fmt.Errorf("%w: header without an ID on line %d", ErrFormat, lineNum)
		}
		body.Reset()
		inRecord = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan FASTA: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if len(seqs) < 1 {
		return nil, fmt.Errorf("%w: no records found", ErrFormat)
	}
	return seqs, nil
}

// splitHeader separates a header (without its ">") into an ID and description
func splitHeader(header string) (id, description string) {
	header = strings.TrimSpace(header)
	i := strings.IndexFunc(header, unicode.IsSpace)
	if i < 0 {
		return header, ""
	}
	return header[:i], strings.TrimSpace(header[i:])
}

// open returns a reader for the path: stdin for "-", gunzipped for ".gz"
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to FASTA file: %w", err)
		}
		path = abs
	}

	fh, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read FASTA file: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("%w: %s is not gzipped: %v", ErrFormat, path, err)
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
