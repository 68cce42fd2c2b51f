package dna

import "strings"

// complement maps each base to its Watson-Crick pair. N pairs with itself
var complement = [256]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
	'N': 'N',
}

// Complement returns a new sequence with every base swapped for its pair
// (A<->T, G<->C, N<->N). Its ID is "<id>_complement".
func (s *Sequence) Complement() *Sequence {
	return s.derive(complementBases(s.seq), s.id+"_complement")
}

// Reverse returns a new sequence with the bases in reverse order (not
// complemented). Its ID is "<id>_reverse".
func (s *Sequence) Reverse() *Sequence {
	return s.derive(reverseBases(s.seq), s.id+"_reverse")
}

// ReverseComplement returns the sequence of the opposite strand read 5' to 3'.
// Its ID is "<id>_revcomp".
func (s *Sequence) ReverseComplement() *Sequence {
	return s.derive(reverseBases(complementBases(s.seq)), s.id+"_revcomp")
}

// Transcribe returns the RNA transcript of the sequence: every T becomes U.
// The result is a plain string since U is outside of the DNA alphabet.
func (s *Sequence) Transcribe() string {
	return strings.ReplaceAll(s.seq, "T", "U")
}

func complementBases(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complement[seq[i]]
	}
	return string(out)
}

func reverseBases(seq string) string {
	out := make([]byte, len(seq))
	for i, j := 0, len(seq)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = seq[j]
	}
	return string(out)
}
