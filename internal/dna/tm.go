package dna

// wallaceMaxLength is the length below which the Wallace rule estimates Tm
const wallaceMaxLength = 14

// MeltingTemp estimates the melting temperature (Tm), in °C, of the sequence.
//
// Sequences shorter than 14 bp use the Wallace rule:
//
//	Tm = 4(G+C) + 2(A+T)
//
// and longer sequences use the empirical formula:
//
//	Tm = 64.9 + 41(GC fraction - 16.4/length)
func (s *Sequence) MeltingTemp() float64 {
	length := len(s.seq)
	if length == 0 {
		return 0.0
	}

	if length < wallaceMaxLength {
		comp := s.Composition()
		gc := comp["G"] + comp["C"]
		at := comp["A"] + comp["T"]
		return 4.0*float64(gc) + 2.0*float64(at)
	}

	gcFraction := s.GCContent() / 100.0
	return 64.9 + 41.0*(gcFraction-16.4/float64(length))
}
