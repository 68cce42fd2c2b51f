package dna

// Composition is a count of each base in a sequence. All five bases are
// present, even those with a count of zero.
type Composition map[string]int

// Composition counts each base in the sequence in a single pass.
func (s *Sequence) Composition() Composition {
	var counts [256]int
	for i := 0; i < len(s.seq); i++ {
		counts[s.seq[i]]++
	}

	comp := make(Composition, len(Bases))
	for _, b := range Bases {
		comp[string(b)] = counts[b]
	}
	return comp
}

// GCContent returns the percentage (0-100) of bases that are G or C.
func (s *Sequence) GCContent() float64 {
	if len(s.seq) == 0 {
		return 0.0
	}

	comp := s.Composition()
	gc := comp["G"] + comp["C"]
	return float64(gc) / float64(len(s.seq)) * 100.0
}
