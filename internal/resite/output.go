package resite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paniztayebi78/resite/config"
)

// separator between report sections
const separator = "---------------------------------------------------------------"

// writeReport renders the full analysis report for one run: the input
// file names, the sequence name and length, then one block per enzyme
// with its cutting site count and fragments.
func writeReport(w io.Writer, fastaPath, enzymePath string, seq *Sequence, digestions []Digestion, c *config.Config) {
	fmt.Fprintf(w, "Restriction enzyme analysis of sequence from file %s.\n", fastaPath)
	fmt.Fprintf(w, "Cutting with enzymes found in file %s.\n", enzymePath)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Sequence name:  %s\n", seq.Header)
	fmt.Fprintf(w, "Sequence is %d bases long.\n", len(seq.Bases))
	fmt.Fprintln(w, separator)

	for _, d := range digestions {
		fmt.Fprintf(w, "There are %d cutting sites for %s, cutting at %s\n", len(d.Cuts), d.Enzyme.Name, d.Enzyme.Site())
		if len(d.Cuts) == 0 {
			fmt.Fprintf(w, "There are no cutting sites found for %s.\n", d.Enzyme.Name)
			fmt.Fprintln(w, separator)
			continue
		}

		fmt.Fprintf(w, "There are %d fragments:\n", len(d.Fragments))
		for _, f := range d.Fragments {
			fmt.Fprintf(w, "Length- %d\n", f.End-f.Start)
			writeFragment(w, f.Seq, c.Report)
		}
		fmt.Fprintln(w, separator)
	}
}

// writeFragment prints one fragment's bases, LineWidth bases per line in
// BlockWidth-base blocks separated by single spaces. Each line is
// prefixed with the 1-based position, within the fragment, of its first
// base, right-aligned in a LabelWidth column. Stripping the labels and
// spaces reproduces the fragment exactly.
func writeFragment(w io.Writer, frag string, rc config.ReportConfig) {
	for start := 0; start < len(frag); start += rc.LineWidth {
		end := start + rc.LineWidth
		if end > len(frag) {
			end = len(frag)
		}
		line := frag[start:end]

		blocks := make([]string, 0, (len(line)+rc.BlockWidth-1)/rc.BlockWidth)
		for b := 0; b < len(line); b += rc.BlockWidth {
			be := b + rc.BlockWidth
			if be > len(line) {
				be = len(line)
			}
			blocks = append(blocks, line[b:be])
		}

		fmt.Fprintf(w, "%*d %s\n", rc.LabelWidth, start+1, strings.Join(blocks, " "))
	}
}

// Summary is the machine-readable run summary written for --json.
type Summary struct {
	// FastaFile is the path of the input FASTA file
	FastaFile string `json:"fastaFile"`

	// EnzymeFile is the path of the input enzyme list
	EnzymeFile string `json:"enzymeFile"`

	// Sequence name. In ">example plasmid" FASTA its "example plasmid"
	Sequence string `json:"sequence"`

	// Length of the sequence in bases
	Length int `json:"length"`

	// Enzymes scanned, in file order
	Enzymes []EnzymeSummary `json:"enzymes"`
}

// EnzymeSummary is one enzyme's results within a Summary.
type EnzymeSummary struct {
	Name      string `json:"name"`
	Site      string `json:"site"`
	Cuts      []int  `json:"cuts"`
	Fragments int    `json:"fragments"`
}

// newSummary builds the Summary for a finished run.
func newSummary(fastaPath, enzymePath string, seq *Sequence, digestions []Digestion) Summary {
	s := Summary{
		FastaFile:  fastaPath,
		EnzymeFile: enzymePath,
		Sequence:   seq.Header,
		Length:     len(seq.Bases),
		Enzymes:    []EnzymeSummary{},
	}
	for _, d := range digestions {
		s.Enzymes = append(s.Enzymes, EnzymeSummary{
			Name:      d.Enzyme.Name,
			Site:      d.Enzyme.Site(),
			Cuts:      d.Cuts,
			Fragments: len(d.Fragments),
		})
	}
	return s
}

// writeJSON writes the run summary to the filename requested.
func writeJSON(filename string, s Summary) error {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, out, 0644)
}
