package dna

import "strings"

// FindAll returns the start index of every occurrence of pattern in the
// sequence, ignoring case. Overlapping matches are included: the search
// resumes one base after the start of each match.
func (s *Sequence) FindAll(pattern string) []int {
	pattern = strings.ToUpper(pattern)
	positions := []int{}
	if pattern == "" || len(pattern) > len(s.seq) {
		return positions
	}

	for start := 0; start <= len(s.seq)-len(pattern); {
		i := strings.Index(s.seq[start:], pattern)
		if i < 0 {
			break
		}

		positions = append(positions, start+i)
		start += i + 1
	}
	return positions
}

// Count returns the number of non-overlapping occurrences of pattern in the
// sequence, ignoring case. Unlike FindAll, a match consumes its bases, so
// "AA" occurs twice in "AAAA", not three times.
func (s *Sequence) Count(pattern string) int {
	if pattern == "" {
		return 0
	}
	return strings.Count(s.seq, strings.ToUpper(pattern))
}
