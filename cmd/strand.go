package cmd

import (
	"github.com/jjtimmons/dnaseq/internal/analyze"
	"github.com/spf13/cobra"
)

// complementCmd is for the complement of sequences
var complementCmd = &cobra.Command{
	Use:                        "complement [sequence]",
	Short:                      "Write the complement of sequences as FASTA",
	Run:                        analyze.ComplementCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Write the complement of each sequence (A<->T, G<->C, N<->N) as FASTA.
Each record's ID is the input's ID with a "_complement" suffix.`,
	Aliases: []string{"comp"},
}

// reverseCmd is for reversing sequences
var reverseCmd = &cobra.Command{
	Use:                        "reverse [sequence]",
	Short:                      "Write sequences reversed (not complemented) as FASTA",
	Run:                        analyze.ReverseCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Write each sequence with its bases in reverse order as FASTA.
Each record's ID is the input's ID with a "_reverse" suffix.`,
	Aliases: []string{"rev"},
}

// revcompCmd is for the reverse complement of sequences
var revcompCmd = &cobra.Command{
	Use:                        "revcomp [sequence]",
	Short:                      "Write the reverse complement of sequences as FASTA",
	Run:                        analyze.ReverseComplementCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Write the reverse complement of each sequence (the opposite strand, 5' to 3')
as FASTA. Each record's ID is the input's ID with a "_revcomp" suffix.`,
	Example: "  dnaseq revcomp --in plasmid.fa --out plasmid.rc.fa --width 60",
	Aliases: []string{"rc"},
}

// set flags
func init() {
	for _, c := range []*cobra.Command{complementCmd, reverseCmd, revcompCmd} {
		inputFlags(c, "output FASTA file name (default stdout)")
		c.Flags().IntP("width", "w", 80, "bases per FASTA sequence line (settings: fasta.width)")
		RootCmd.AddCommand(c)
	}
}
