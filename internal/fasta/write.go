package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jjtimmons/dnaseq/internal/dna"
)

// DefaultWidth is the number of bases per line when writing sequences
const DefaultWidth = 80

// Write sequences to a FASTA file at path, creating or truncating it.
// Sequence lines are wrapped at width bases (DefaultWidth if width < 1).
func Write(path string, seqs []*dna.Sequence, width int) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create FASTA file %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close FASTA file %s: %w", path, cerr)
		}
	}()

	return Encode(fh, seqs, width)
}

// Encode writes sequences to w in FASTA format. Each record has a
// ">id description" header (the description is left off when empty) and
// sequence lines wrapped at width bases (DefaultWidth if width < 1).
func Encode(w io.Writer, seqs []*dna.Sequence, width int) error {
	if width < 1 {
		width = DefaultWidth
	}

	bw := bufio.NewWriter(w)
	for _, s := range seqs {
		bw.WriteString(">" + s.ID())
		if s.Description() != "" {
			bw.WriteString(" " + s.Description())
		}
		bw.WriteByte('\n')

		seq := s.Seq()
		for i := 0; i < len(seq); i += width {
			end := i + width
			if end > len(seq) {
				end = len(seq)
			}
			bw.WriteString(seq[i:end])
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write FASTA: %w", err)
	}
	return nil
}
