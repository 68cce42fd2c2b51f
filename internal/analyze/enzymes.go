package analyze

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/spf13/cobra"
)

// ldCutoff is the max Levenshtein distance for an enzyme name to be suggested
const ldCutoff = 2

// EnzymesCmd logs enzymes that are similar in name to the enzyme name requested.
// Without a name, every enzyme is logged. With an exact match, just that enzyme is.
// Otherwise enzymes whose names contain the name or are beneath a Levenshtein
// distance cutoff from it are logged.
func EnzymesCmd(cmd *cobra.Command, args []string) {
	if err := writeEnzymes(cmd.OutOrStdout(), args); err != nil {
		stderr.Fatalln(err)
	}
}

func writeEnzymes(w io.Writer, args []string) error {
	// from https://golang.org/pkg/text/tabwriter/
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		for _, name := range dna.Enzymes() {
			recog, _ := dna.Recognition(name)
			fmt.Fprintf(tw, "%s\t%s\n", name, recog)
		}
		return tw.Flush()
	}

	name := args[0]

	// if there's an exact match, just log that one
	if recog, exists := dna.Recognition(name); exists {
		fmt.Fprintf(tw, "%s\t%s\n", name, recog)
		return tw.Flush()
	}

	similar := similarEnzymes(name)
	if len(similar) == 0 {
		fmt.Fprintf(tw, "failed to find any enzymes for %s\n", name)
		return tw.Flush()
	}

	for _, enzyme := range similar {
		recog, _ := dna.Recognition(enzyme)
		fmt.Fprintf(tw, "%s\t%s\n", enzyme, recog)
	}
	return tw.Flush()
}

// similarEnzymes returns the sorted names of enzymes that contain name or
// are within ldCutoff edits of it, ignoring case
func similarEnzymes(name string) []string {
	similar := []string{}
	for _, enzyme := range dna.Enzymes() {
		if strings.Contains(strings.ToUpper(enzyme), strings.ToUpper(name)) {
			similar = append(similar, enzyme)
		} else if len(enzyme) > ldCutoff && ld(name, enzyme, true) <= ldCutoff {
			similar = append(similar, enzyme)
		}
	}
	return similar
}

// SitesCmd logs the recognition sites of an enzyme in each sequence. The first
// argument is the enzyme name, an optional second argument is the sequence.
// An unknown enzyme has no sites, it isn't an error.
func SitesCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno enzyme passed. 'dnaseq enzymes' lists them.")
	}
	enzyme := args[0]

	if _, known := dna.Recognition(enzyme); !known {
		stderr.Printf("%s is not a known enzyme. 'dnaseq enzymes %s' lists similar ones\n", enzyme, enzyme)
	}

	run(cmd, args[1:], func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error {
		return writeSites(w, enzyme, seqs)
	})
}

// writeSites writes the indexes of the enzyme's recognition sites per sequence
func writeSites(w io.Writer, enzyme string, seqs []*dna.Sequence) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "id\tenzyme\tcount\tindexes\t\n")
	for _, s := range seqs {
		sites := s.RestrictionSites(enzyme)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t\n", s.ID(), enzyme, len(sites), joinInts(sites))
	}
	return tw.Flush()
}

// ld computes the Levenshtein distance between two strings
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
