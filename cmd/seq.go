package cmd

import (
	"github.com/jjtimmons/dnaseq/internal/analyze"
	"github.com/spf13/cobra"
)

// statsCmd is for the length, composition, GC content and Tm of sequences
var statsCmd = &cobra.Command{
	Use:                        "stats [sequence]",
	Short:                      "Log the composition, GC content and melting temperature of sequences",
	Run:                        analyze.StatsCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Log a row per sequence with its length, the count of each base (A, C, G, T, N),
its GC content (%) and its estimated melting temperature (°C).

Sequences under 14 bp use the Wallace rule, Tm = 4(G+C) + 2(A+T).
Longer sequences use Tm = 64.9 + 41(GC fraction - 16.4/length).`,
	Example: "  dnaseq stats ATGCATGC\n  dnaseq stats --in plasmids.fa",
	Aliases: []string{"composition", "gc", "tm"},
}

// transcribeCmd is for transcribing DNA to RNA
var transcribeCmd = &cobra.Command{
	Use:                        "transcribe [sequence]",
	Short:                      "Log the RNA transcript of sequences",
	Run:                        analyze.TranscribeCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long:                       `Transcribe each sequence to RNA by replacing every T with U.`,
	Aliases:                    []string{"rna"},
}

// findCmd is for finding a pattern in sequences
var findCmd = &cobra.Command{
	Use:                        "find [pattern] [sequence]",
	Short:                      "Find every occurrence of a pattern in sequences",
	Run:                        analyze.FindCmd,
	Args:                       cobra.RangeArgs(1, 2),
	SuggestionsMinimumDistance: 2,
	Long: `Find where a pattern occurs in each sequence, ignoring case.

Indexes are 0-based and include overlapping matches ("AAA" occurs at 0 and 1
in "AAAA"). The count is of non-overlapping matches ("AA" occurs twice
in "AAAA").`,
	Example: "  dnaseq find ATG ATGATGCATGATG",
	Aliases: []string{"search"},
}

// orfsCmd is for finding open reading frames in sequences
var orfsCmd = &cobra.Command{
	Use:                        "orfs [sequence]",
	Short:                      "Find open reading frames in sequences",
	Run:                        analyze.ORFsCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Find open reading frames (ATG through an in-frame TAA, TAG or TGA) in the
three forward reading frames of each sequence. Start and end indexes are 0-based
and the end is exclusive.`,
	Aliases: []string{"orf"},
}

// reportCmd is for writing every analysis of sequences to a JSON file
var reportCmd = &cobra.Command{
	Use:                        "report [sequence]",
	Short:                      "Write a JSON report with every analysis of sequences",
	Run:                        analyze.ReportCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Analyze each sequence and write the results to a JSON file: length, base
composition, GC content, melting temperature, ORFs and restriction sites.`,
	Aliases: []string{"analyze"},
}

// set flags
func init() {
	inputFlags(statsCmd, "output file name (default stdout)")
	inputFlags(transcribeCmd, "output file name (default stdout)")
	inputFlags(findCmd, "output file name (default stdout)")

	inputFlags(orfsCmd, "output file name (default stdout)")
	orfsCmd.Flags().IntP("min-length", "m", 100, "minimum ORF length in bp (settings: orf.min-length)")

	inputFlags(reportCmd, "output JSON file name (default <input>.dnaseq.json)")
	reportCmd.Flags().IntP("min-length", "m", 100, "minimum ORF length in bp (settings: orf.min-length)")

	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(transcribeCmd)
	RootCmd.AddCommand(findCmd)
	RootCmd.AddCommand(orfsCmd)
	RootCmd.AddCommand(reportCmd)
}
