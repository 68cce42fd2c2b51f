package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jjtimmons/dnaseq/config"
	"github.com/jjtimmons/dnaseq/internal/dna"
	"github.com/spf13/cobra"
)

// SequenceReport is the full analysis of a single sequence.
type SequenceReport struct {
	// ID of the sequence. In >example_CDS FASTA its "example_CDS"
	ID string `json:"id"`

	// Description from the sequence's FASTA header
	Description string `json:"description,omitempty"`

	// Length of the sequence in bp
	Length int `json:"length"`

	// Composition is the count of each base
	Composition dna.Composition `json:"composition"`

	// GCContent is the percentage of G and C bases
	GCContent float64 `json:"gcContent"`

	// MeltingTemp is the estimated Tm in °C
	MeltingTemp float64 `json:"meltingTemp"`

	// ORFs are the forward-strand open reading frames
	ORFs []dna.ORF `json:"orfs"`

	// Sites maps each enzyme with a recognition site in the sequence to its indexes
	Sites map[string][]int `json:"sites"`
}

// Output is a struct containing analysis results for every input sequence.
type Output struct {
	// Input is the path to the FASTA file analyzed (empty for a sequence argument)
	Input string `json:"input,omitempty"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// ORFMinLength is the minimum length of reported ORFs
	ORFMinLength int `json:"orfMinLength"`

	// Sequences are the per-sequence reports
	Sequences []SequenceReport `json:"sequences"`
}

// ReportCmd takes a cobra command (with its flags) and runs Report.
func ReportCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd)
	Report(flags, conf, args)
}

// Report analyzes each input sequence and writes the results as JSON to flags.out.
func Report(flags *Flags, conf *config.Config, args []string) *Output {
	start := time.Now()
	p := inputParser{}

	seqs, err := p.sequences(flags, args)
	if err != nil {
		stderr.Fatalln(err)
	}
	if flags.out == "" {
		flags.out = p.guessOutput(flags.in)
	}

	out := &Output{
		Input:        flags.in,
		ORFMinLength: flags.minLength,
		Sequences:    analyze(seqs, flags.minLength),
	}

	if _, err := writeJSON(flags.out, out, time.Since(start)); err != nil {
		stderr.Fatalln(err)
	}

	if conf.Verbose {
		stderr.Printf("wrote a report of %d sequence(s) to %s\n", len(seqs), flags.out)
	}
	return out
}

// analyze runs every analysis on each sequence
func analyze(seqs []*dna.Sequence, minLength int) []SequenceReport {
	reports := make([]SequenceReport, 0, len(seqs))
	for _, s := range seqs {
		sites := make(map[string][]int)
		for _, enzyme := range dna.Enzymes() {
			if indexes := s.RestrictionSites(enzyme); len(indexes) > 0 {
				sites[enzyme] = indexes
			}
		}

		reports = append(reports, SequenceReport{
			ID:          s.ID(),
			Description: s.Description(),
			Length:      s.Len(),
			Composition: s.Composition(),
			GCContent:   round(s.GCContent()),
			MeltingTemp: round(s.MeltingTemp()),
			ORFs:        s.FindORFs(minLength),
			Sites:       sites,
		})
	}
	return reports
}

// writeJSON stamps the output with the time and execution duration and writes it to filename.
func writeJSON(filename string, out *Output, elapsed time.Duration) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now() // https://gobyexample.com/time-formatting-parsing
	out.Time = fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)
	out.Execution = elapsed.Seconds()

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}
	return output, nil
}

// round returns a float to two decimal places
func round(f float64) float64 {
	rounded, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", f), 64)
	return rounded
}
