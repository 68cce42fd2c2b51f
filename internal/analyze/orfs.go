package analyze

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/spf13/cobra"
)

// ORFsCmd logs the open reading frames in each sequence.
func ORFsCmd(cmd *cobra.Command, args []string) {
	run(cmd, args, func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error {
		return writeORFs(w, seqs, flags.minLength)
	})
}

// writeORFs writes a row per ORF at least minLength bp long
func writeORFs(w io.Writer, seqs []*dna.Sequence, minLength int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "id\tstart\tend\tlength\tseq\t\n")
	for _, s := range seqs {
		for _, orf := range s.FindORFs(minLength) {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t\n", s.ID(), orf.Start, orf.End, orf.End-orf.Start, orf.Seq)
		}
	}
	return tw.Flush()
}
