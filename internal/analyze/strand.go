package analyze

import (
	"fmt"
	"io"

	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/jjtimmons/dnaseq/internal/fasta"
	"github.com/spf13/cobra"
)

// ComplementCmd writes the complement of each sequence as FASTA.
func ComplementCmd(cmd *cobra.Command, args []string) {
	strandCmd(cmd, args, (*dna.Sequence).Complement)
}

// ReverseCmd writes each sequence reversed (not complemented) as FASTA.
func ReverseCmd(cmd *cobra.Command, args []string) {
	strandCmd(cmd, args, (*dna.Sequence).Reverse)
}

// ReverseComplementCmd writes the reverse complement of each sequence as FASTA.
func ReverseComplementCmd(cmd *cobra.Command, args []string) {
	strandCmd(cmd, args, (*dna.Sequence).ReverseComplement)
}

// TranscribeCmd logs the RNA transcript of each sequence.
func TranscribeCmd(cmd *cobra.Command, args []string) {
	run(cmd, args, func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error {
		return writeTranscripts(w, seqs)
	})
}

func strandCmd(cmd *cobra.Command, args []string, transform func(*dna.Sequence) *dna.Sequence) {
	run(cmd, args, func(w io.Writer, flags *Flags, seqs []*dna.Sequence) error {
		return fasta.Encode(w, mapSequences(seqs, transform), flags.width)
	})
}

// mapSequences applies transform to each sequence
func mapSequences(seqs []*dna.Sequence, transform func(*dna.Sequence) *dna.Sequence) []*dna.Sequence {
	out := make([]*dna.Sequence, len(seqs))
	for i, s := range seqs {
		out[i] = transform(s)
	}
	return out
}

// writeTranscripts writes each sequence's ID and transcript on its own line
func writeTranscripts(w io.Writer, seqs []*dna.Sequence) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", s.ID(), s.Transcribe()); err != nil {
			return err
		}
	}
	return nil
}
