package dna

// DefaultORFMinLength is the default minimum length, in bp, of a reported ORF
const DefaultORFMinLength = 100

const startCodon = "ATG"

// stopCodons end an open reading frame
var stopCodons = map[string]bool{
	"TAA": true,
	"TAG": true,
	"TGA": true,
}

// ORF is an open reading frame: a start codon through an in-frame stop codon.
type ORF struct {
	// Start is the index of the first base of the start codon
	Start int `json:"start"`

	// End is the index one past the last base of the stop codon
	End int `json:"end"`

	// Seq is the sequence of the ORF, start and stop codons included
	Seq string `json:"seq"`
}

// FindORFs scans the three forward reading frames for ORFs at least
// minLength bp long. Indexes are relative to the start of the sequence.
//
// After a stop codon is found, the scan of that frame resumes after it
// whether or not the ORF was long enough to be reported. A start codon
// without an in-frame stop codon is skipped.
func (s *Sequence) FindORFs(minLength int) []ORF {
	orfs := []ORF{}
	n := len(s.seq)

	for frame := 0; frame < 3; frame++ {
		i := frame
		for i+3 <= n {
			if s.seq[i:i+3] != startCodon {
				i += 3
				continue
			}

			stop := s.nextStop(i + 3)
			if stop < 0 {
				i += 3
				continue
			}

			end := stop + 3
			if end-i >= minLength {
				orfs = append(orfs, ORF{Start: i, End: end, Seq: s.seq[i:end]})
			}
			i = end
		}
	}

	return orfs
}

// nextStop returns the index of the first stop codon at or after from,
// stepping a codon at a time, or -1 if there isn't one
func (s *Sequence) nextStop(from int) int {
	for j := from; j+3 <= len(s.seq); j += 3 {
		if stopCodons[s.seq[j:j+3]] {
			return j
		}
	}
	return -1
}
