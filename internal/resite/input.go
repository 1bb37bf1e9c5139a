// Package resite locates restriction enzyme cutting sites in a single
// nucleotide sequence and reports the fragments they produce.
package resite

import (
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Sequence is the nucleotide sequence read from a FASTA file.
type Sequence struct {
	// Header is the FASTA header line without its leading ">"
	Header string

	// Bases is the upper-cased sequence with all whitespace removed
	Bases string
}

// Enzyme is one restriction enzyme: a literal recognition pattern and
// the offset within that pattern where the enzyme cleaves.
type Enzyme struct {
	// Name of the enzyme, eg "EcoRI"
	Name string

	// Pattern is the recognition sequence without its cleavage marker, eg "GAATTC"
	Pattern string

	// CutOffset is the cleavage marker's index within Pattern (0 through len(Pattern))
	CutOffset int
}

// Site returns the recognition pattern with the cleavage marker
// reinserted at its original offset, eg "G^AATTC". Used for display.
func (e Enzyme) Site() string {
	return e.Pattern[:e.CutOffset] + "^" + e.Pattern[e.CutOffset:]
}

// InputError is a fatal problem with one of the two input files: the file
// is missing, empty, unreadable, or lacks a FASTA header. It aborts the run.
type InputError struct {
	// Path of the offending file
	Path string

	// Msg describes what was wrong with it
	Msg string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// LineError is one malformed enzyme definition line. It is recoverable:
// the line is skipped and reported while the rest of the file still parses.
type LineError struct {
	// Line number within the enzyme file (1-based)
	Line int

	// Text is the offending line
	Text string

	// Msg describes what was wrong with it
	Msg string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Msg)
}

// readFasta reads the single-record FASTA file at path to a Sequence.
func readFasta(path string) (*Sequence, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Msg: fmt.Sprintf("failed to read FASTA file: %v", err)}
	}

	seq, err := parseFasta(path, string(dat))
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// parseFasta parses the contents of a FASTA file: one ">" header line
// followed by sequence lines of any width. Lines are concatenated,
// stripped of whitespace and upper-cased. If the file holds more than
// one record, only the first is kept.
func parseFasta(path, contents string) (*Sequence, error) {
	lines := strings.Split(contents, "\n")

	// find the header, skipping leading blank lines
	header := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ">") {
			return nil, &InputError{Path: path, Msg: "first line of a FASTA file must start with \">\""}
		}
		header = i
		break
	}
	if header < 0 {
		return nil, &InputError{Path: path, Msg: "empty FASTA file"}
	}

	var bases strings.Builder
	for _, line := range lines[header+1:] {
		if strings.HasPrefix(line, ">") {
			break // second record, out of scope
		}
		bases.WriteString(strings.Join(strings.Fields(line), ""))
	}

	return &Sequence{
		Header: strings.TrimSpace(lines[header][1:]),
		Bases:  strings.ToUpper(bases.String()),
	}, nil
}

// readEnzymes reads the enzyme list at path. Enzymes are returned in file
// order, duplicates allowed. Malformed lines are returned as LineErrors
// alongside the enzymes that did parse; only a missing or unreadable file
// is a fatal error.
func readEnzymes(path string) ([]Enzyme, []error, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &InputError{Path: path, Msg: fmt.Sprintf("failed to read enzyme file: %v", err)}
	}

	enzymes, warnings := parseEnzymes(string(dat))
	return enzymes, warnings, nil
}

// parseEnzymes parses every enzyme definition line in contents. Blank
// lines and "#" comment lines are skipped silently.
func parseEnzymes(contents string) (enzymes []Enzyme, warnings []error) {
	for i, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := parseEnzymeLine(i+1, line)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		enzymes = append(enzymes, e)
	}
	return
}

// parseEnzymeLine parses one "Name;Recognition^Sequence" definition.
// The cleavage marker is "^" or "%" and must appear exactly once in the
// recognition sequence; its index is the enzyme's cleavage offset.
func parseEnzymeLine(num int, line string) (Enzyme, error) {
	name, site, found := strings.Cut(line, ";")
	if !found {
		return Enzyme{}, &LineError{Line: num, Text: line, Msg: "missing \";\" between name and recognition sequence"}
	}
	name = strings.TrimSpace(name)
	site = strings.TrimSpace(site)

	markers := strings.Count(site, "^") + strings.Count(site, "%")
	if markers == 0 {
		return Enzyme{}, &LineError{Line: num, Text: line, Msg: "missing cleavage marker (\"^\" or \"%\")"}
	}
	if markers > 1 {
		return Enzyme{}, &LineError{Line: num, Text: line, Msg: "more than one cleavage marker"}
	}
	if name == "" {
		return Enzyme{}, &LineError{Line: num, Text: line, Msg: "missing enzyme name"}
	}

	offset := strings.IndexAny(site, "^%")
	return Enzyme{
		Name:      name,
		Pattern:   strings.ToUpper(site[:offset] + site[offset+1:]),
		CutOffset: offset,
	}, nil
}
