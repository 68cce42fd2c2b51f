// Package analyze runs the dnaseq commands: it parses cobra flags,
// reads sequences, runs the analyses in package dna and writes the results.
package analyze

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/dnaseq/config"
	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/jjtimmons/dnaseq/internal/fasta"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "in", "out", "width", etc that are used by multiple commands.
type Flags struct {
	// the name of the FASTA file to read sequences from
	in string

	// the name of the file to write output to (stdout if empty)
	out string

	// the number of bases per line in written FASTA
	width int

	// the minimum length of an ORF to report
	minLength int
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out string, width, minLength int) *Flags {
	return &Flags{
		in:        in,
		out:       out,
		width:     width,
		minLength: minLength,
	}
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object.
// Flags that aren't set on the command fall back to their settings in the Config.
func parseCmdFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	c := config.New()
	fs := &Flags{
		width:     c.FASTA.Width,
		minLength: c.ORF.MinLength,
	}

	flags := cmd.Flags()
	if in, err := flags.GetString("in"); err == nil {
		fs.in = in
	}
	if out, err := flags.GetString("out"); err == nil {
		fs.out = out
	}
	if flags.Changed("width") {
		if width, err := flags.GetInt("width"); err == nil {
			fs.width = width
		}
	}
	if flags.Changed("min-length") {
		if minLength, err := flags.GetInt("min-length"); err == nil {
			fs.minLength = minLength
		}
	}

	if fs.width < 1 {
		stderr.Fatalf("width must be at least 1: %d", fs.width)
	}
	if fs.minLength < 0 {
		stderr.Fatalf("min-length must not be negative: %d", fs.minLength)
	}

	return fs, c
}

// sequences returns the sequences to analyze. A sequence passed as an argument
// takes precedence over the FASTA file in flags.in. With neither, the first
// FASTA file in the current directory is read.
func (p *inputParser) sequences(flags *Flags, args []string) ([]*dna.Sequence, error) {
	if len(args) > 0 {
		seq, err := dna.New(args[0])
		if err != nil {
			return nil, err
		}
		return []*dna.Sequence{seq}, nil
	}

	in := flags.in
	if in == "" {
		guess, err := p.guessInput(".")
		if err != nil {
			return nil, err
		}
		in = guess
		flags.in = guess
	}

	seqs, err := fasta.Read(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequences from %s: %w", in, err)
	}
	return seqs, nil
}

// guessInput returns the first FASTA file in dir. Is used
// if the user hasn't specified an input file or sequence
func (p *inputParser) guessInput(dir string) (in string, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".fa" || ext == ".fasta" {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("failed: no sequence argument or input file set and no FASTA file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path is
// specified). It uses the same name as the input path to create an output
func (p *inputParser) guessOutput(in string) (out string) {
	if in == "" || in == "-" {
		return "dnaseq.json"
	}

	in = strings.TrimSuffix(in, ".gz")
	ext := filepath.Ext(in)
	noExt := in[0 : len(in)-len(ext)]
	return noExt + ".dnaseq.json"
}

// output returns the writer for a command's results: the out file if one
// was set, the command's stdout otherwise. done must be called after writing
func (p *inputParser) output(cmd *cobra.Command, flags *Flags) (w io.Writer, done func() error, err error) {
	if flags.out == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	fh, err := os.Create(flags.out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", flags.out, err)
	}
	return fh, fh.Close, nil
}
