package resite

import (
	"bytes"
	"os"

	"github.com/paniztayebi78/resite/config"
	"github.com/spf13/cobra"
)

// RunCmd is the entry for the root command: analyze the FASTA sequence in
// args[0] with the enzyme list in args[1] and print the report.
func RunCmd(cmd *cobra.Command, args []string) {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		stderr.Fatalf("failed to parse out flag: %v", err)
	}
	jsonPath, err := cmd.Flags().GetString("json")
	if err != nil {
		stderr.Fatalf("failed to parse json flag: %v", err)
	}
	c := config.New()

	report, err := Run(args[0], args[1], jsonPath, c)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	if out == "" {
		os.Stdout.WriteString(report)
		return
	}
	if err := os.WriteFile(out, []byte(report), 0644); err != nil {
		stderr.Fatalf("failed to write report to %s: %v", out, err)
	}
}

// Run executes one analysis: read the FASTA and enzyme files, scan the
// sequence with each enzyme, and return the formatted report. Malformed
// enzyme lines are warned about on stderr and skipped; an InputError on
// either file aborts the run before any of the report is produced. If
// jsonPath is non-empty a run summary is also written there.
func Run(fastaPath, enzymePath, jsonPath string, c *config.Config) (string, error) {
	seq, err := readFasta(fastaPath)
	if err != nil {
		return "", err
	}

	enzymes, warnings, err := readEnzymes(enzymePath)
	if err != nil {
		return "", err
	}
	for _, w := range warnings {
		stderr.Printf("warning: skipped enzyme %v", w)
	}
	if len(enzymes) == 0 {
		stderr.Printf("warning: no enzymes parsed from %s", enzymePath)
	}

	digestions := digestAll(seq, enzymes)

	b := &bytes.Buffer{}
	writeReport(b, fastaPath, enzymePath, seq, digestions, c)

	if jsonPath != "" {
		if err := writeJSON(jsonPath, newSummary(fastaPath, enzymePath, seq, digestions)); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}
