// Package dna is for validating and analyzing DNA nucleotide sequences.
//
// A Sequence is created once with New and never changes afterwards. Every
// analysis (composition, complements, searches, ORFs, Tm, restriction
// sites) is a pure function of the Sequence's bases and derived sequences
// are returned as new values.
package dna

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSequence is returned when a sequence is empty or has a
	// character outside of the A, T, G, C, N alphabet
	ErrInvalidSequence = errors.New("invalid DNA sequence")

	// ErrOutOfBounds is returned when indexing or slicing outside a sequence
	ErrOutOfBounds = errors.New("index out of bounds")
)

// Bases is the alphabet of recognized symbols, in sorted order.
var Bases = []byte{'A', 'C', 'G', 'N', 'T'}

// valid is a lookup table of the recognized (uppercase) symbols
var valid = [256]bool{
	'A': true,
	'T': true,
	'G': true,
	'C': true,
	'N': true,
}

// IsValid returns whether the text is non-empty and made up entirely of
// A, T, G, C and N, ignoring case.
func IsValid(text string) bool {
	if text == "" {
		return false
	}

	upper := strings.ToUpper(text)
	for i := 0; i < len(upper); i++ {
		if !valid[upper[i]] {
			return false
		}
	}
	return true
}
