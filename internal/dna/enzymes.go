package dna

import "sort"

// enzymes is a map between an enzyme's name and its recognition sequence
var enzymes = map[string]string{
	"EcoRI":   "GAATTC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"PstI":    "CTGCAG",
	"SmaI":    "CCCGGG",
	"XbaI":    "TCTAGA",
}

// Enzymes returns the names of the known restriction enzymes, sorted.
func Enzymes() []string {
	names := make([]string, 0, len(enzymes))
	for name := range enzymes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recognition returns an enzyme's recognition sequence and whether the
// enzyme is known. Names are case-sensitive ("EcoRI", not "ecori").
func Recognition(enzyme string) (string, bool) {
	recog, ok := enzymes[enzyme]
	return recog, ok
}

// RestrictionSites returns the start index of every recognition site of the
// enzyme in the sequence. An unknown enzyme has no sites.
func (s *Sequence) RestrictionSites(enzyme string) []int {
	recog, ok := enzymes[enzyme]
	if !ok {
		return []int{}
	}
	return s.FindAll(recog)
}
