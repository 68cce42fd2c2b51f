package cmd

import (
	"github.com/jjtimmons/dnaseq/internal/analyze"
	"github.com/spf13/cobra"
)

// enzymesCmd is for listing out all the available restriction enzymes, or
// those similar to a name. Useful for if the user doesn't know which enzymes are available
var enzymesCmd = &cobra.Command{
	Use:                        "enzymes [name]",
	Short:                      "List restriction enzymes and their recognition sequences",
	Run:                        analyze.EnzymesCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `List out all the enzymes with the same or a similar name as the argument.

'dnaseq enzymes' without any arguments logs all enzymes available.

	<Name>	<Recognition sequence>`,
	Aliases: []string{"enzyme"},
}

// sitesCmd is for finding an enzyme's recognition sites in sequences
var sitesCmd = &cobra.Command{
	Use:                        "sites [enzyme] [sequence]",
	Short:                      "Find an enzyme's recognition sites in sequences",
	Run:                        analyze.SitesCmd,
	Args:                       cobra.RangeArgs(1, 2),
	SuggestionsMinimumDistance: 2,
	Long: `Find the 0-based start index of each of an enzyme's recognition sites in each sequence.
An enzyme that isn't in 'dnaseq enzymes' has no sites.`,
	Example: "  dnaseq sites EcoRI ATGAATTCGGCCATGAATTC",
	Aliases: []string{"digest"},
}

// set flags
func init() {
	inputFlags(sitesCmd, "output file name (default stdout)")

	RootCmd.AddCommand(enzymesCmd)
	RootCmd.AddCommand(sitesCmd)
}
