package analyze

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/spf13/cobra"
)

// FindCmd logs where a pattern occurs in each sequence. The first argument is
// the pattern, an optional second argument is the sequence to search.
func FindCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno pattern passed.")
	}
	pattern := args[0]

	run(cmd, args[1:], func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error {
		return writeMatches(w, pattern, seqs)
	})
}

// writeMatches writes the overlapping match indexes and non-overlapping match
// count of the pattern in each sequence
func writeMatches(w io.Writer, pattern string, seqs []*dna.Sequence) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "id\tpattern\tcount\tindexes\t\n")
	for _, s := range seqs {
		fmt.Fprintf(
			tw,
			"%s\t%s\t%d\t%s\t\n",
			s.ID(), strings.ToUpper(pattern), s.Count(pattern), joinInts(s.FindAll(pattern)),
		)
	}
	return tw.Flush()
}

// joinInts joins indexes with commas, "-" if there are none
func joinInts(ints []int) string {
	if len(ints) == 0 {
		return "-"
	}

	strs := make([]string, len(ints))
	for i, n := range ints {
		strs[i] = fmt.Sprint(n)
	}
	return strings.Join(strs, ",")
}
