// Package cmd is for command line interactions with the dnaseq application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "dnaseq",
	Short: `Analyze DNA sequences: composition, complements, transcription,
pattern and restriction site search, ORFs and melting temperature`,
	Long: `Analyze DNA sequences from the command line.

Each command takes either a sequence as an argument or a FASTA file with
one or more sequences ('--in'). Without either, the first FASTA file in
the current directory is used.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings is an optional parameter for a YAML settings file that overrides the defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stderr")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// inputFlags adds the input and output file flags shared by the sequence commands
func inputFlags(cmd *cobra.Command, outHelp string) {
	cmd.Flags().StringP("in", "i", "", "input FASTA file with one or more sequences")
	cmd.Flags().StringP("out", "o", "", outHelp)
}
