package analyze

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/spf13/cobra"
)

// StatsCmd logs the length, base composition, GC content and Tm of each sequence.
func StatsCmd(cmd *cobra.Command, args []string) {
	run(cmd, args, func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error {
		return writeStats(w, seqs)
	})
}

// writeStats writes a row of statistics per sequence
func writeStats(w io.Writer, seqs []*dna.Sequence) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "id\tlength\tA\tC\tG\tT\tN\tGC%%\tTm\t\n")
	for _, s := range seqs {
		comp := s.Composition()
		fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t\n",
			s.ID(), s.Len(),
			comp["A"], comp["C"], comp["G"], comp["T"], comp["N"],
			s.GCContent(), s.MeltingTemp(),
		)
	}
	return tw.Flush()
}

// run is the shared body of the commands: parse flags, read the sequences,
// open the output and write to it with fn. Failures are fatal
func run(cmd *cobra.Command, args []string, fn func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error) {
	flags, conf := parseCmdFlags(cmd)
	p := inputParser{}

	seqs, err := p.sequences(flags, args)
	if err != nil {
		stderr.Fatalln(err)
	}
	if conf.Verbose && flags.in != "" {
		stderr.Printf("read %d sequence(s) from %s\n", len(seqs), flags.in)
	}

	w, done, err := p.output(cmd, flags)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err = fn(w, flags, seqs); err != nil {
		stderr.Fatalln(err)
	}
	if err = done(); err != nil {
		stderr.Fatalln(err)
	}
}
