package dna

import (
	"fmt"
	"strings"
)

// unnamed is the ID given to sequences created without one
const unnamed = "unnamed"

// previewLength is the max number of bases shown by Describe
const previewLength = 50

// Sequence is an immutable, validated DNA sequence with an ID and description.
type Sequence struct {
	// seq is the canonical (uppercase, trimmed) sequence of bases
	seq string

	// id of the sequence. In a >example_CDS FASTA its "example_CDS"
	id string

	// description is free text that followed the ID in a FASTA header
	description string
}

// Option sets optional fields on a Sequence during New.
type Option func(*Sequence)

// WithID sets the ID of a new Sequence.
func WithID(id string) Option {
	return func(s *Sequence) {
		s.id = id
	}
}

// WithDescription sets the description of a new Sequence.
func WithDescription(description string) Option {
	return func(s *Sequence) {
		s.description = description
	}
}

// New creates a Sequence from raw text. The text is uppercased and trimmed
// of surrounding whitespace before validation. An error wrapping
// ErrInvalidSequence is returned if the result is empty or holds a base
// outside of the alphabet.
func New(text string, opts ...Option) (*Sequence, error) {
	canonical := strings.TrimSpace(strings.ToUpper(text))
	if !IsValid(canonical) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSequence, preview(canonical))
	}

	s := &Sequence{seq: canonical, id: unnamed}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// derive makes a new sequence from bases already known to be valid
func (s *Sequence) derive(seq, id string) *Sequence {
	return &Sequence{seq: seq, id: id}
}

// Seq returns the sequence's bases.
func (s *Sequence) Seq() string {
	return s.seq
}

// ID returns the sequence's ID.
func (s *Sequence) ID() string {
	return s.id
}

// Description returns the sequence's description.
func (s *Sequence) Description() string {
	return s.description
}

// Len returns the number of bases in the sequence.
func (s *Sequence) Len() int {
	return len(s.seq)
}

// String summarizes the sequence by its ID and length.
func (s *Sequence) String() string {
	return fmt.Sprintf("DNASequence(id='%s', length=%d)", s.id, len(s.seq))
}

// Describe summarizes the sequence by its ID and a preview of its first
// 50 bases.
func (s *Sequence) Describe() string {
	return fmt.Sprintf("DNASequence(id='%s', seq='%s')", s.id, preview(s.seq))
}

// At returns the base at index i.
func (s *Sequence) At(i int) (byte, error) {
	if i < 0 || i >= len(s.seq) {
		return 0, fmt.Errorf("%w: %d in %s of length %d", ErrOutOfBounds, i, s.id, len(s.seq))
	}
	return s.seq[i], nil
}

// Slice returns a new sequence with the bases in the half-open range
// [start, end). Its ID is "<id>_slice_<length>".
func (s *Sequence) Slice(start, end int) (*Sequence, error) {
	if start < 0 || end > len(s.seq) || start > end {
		return nil, fmt.Errorf("%w: [%d:%d] in %s of length %d", ErrOutOfBounds, start, end, s.id, len(s.seq))
	}
	if start == end {
		return nil, fmt.Errorf("%w: empty slice [%d:%d] of %s", ErrInvalidSequence, start, end, s.id)
	}

	sub := s.seq[start:end]
	return s.derive(sub, fmt.Sprintf("%s_slice_%d", s.id, len(sub))), nil
}

// Equal returns whether two sequences have the same bases. IDs and
// descriptions are ignored.
func (s *Sequence) Equal(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.seq == other.seq
}

// preview truncates seq to its first 50 characters
func preview(seq string) string {
	if len(seq) > previewLength {
		return seq[:previewLength] + "..."
	}
	return seq
}
