package resite

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path"
	"reflect"
	"strings"
	"testing"

	"github.com/paniztayebi78/resite/config"
)

// full run against the fixture files in /test/input
func Test_e2e(t *testing.T) {
	fastaPath := path.Join("..", "..", "test", "input", "demo.fa")
	enzymePath := path.Join("..", "..", "test", "input", "enzymes.txt")
	jsonPath := path.Join(t.TempDir(), "summary.json")

	c := &config.Config{Report: testReportConfig}
	report, err := Run(fastaPath, enzymePath, jsonPath, c)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantLines := []string{
		"Sequence name:  demo_plasmid synthetic fragment",
		"Sequence is 24 bases long.",
		"There are 2 cutting sites for EcoRI, cutting at G^AATTC",
		"There are 3 fragments:",
		"There are 1 cutting sites for MseI, cutting at T^TAA",
		"There are 2 fragments:",
		"There are 0 cutting sites for AscI, cutting at GG^CGCGCC",
		"There are no cutting sites found for AscI.",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line+"\n") {
			t.Errorf("report is missing line %q:\n%s", line, report)
		}
	}

	// the summary must agree with the printed report
	dat, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}
	var s Summary
	if err := json.Unmarshal(dat, &s); err != nil {
		t.Fatalf("failed to parse summary: %v", err)
	}

	if s.Length != 24 {
		t.Errorf("summary length = %d, want 24", s.Length)
	}
	if len(s.Enzymes) != 3 {
		t.Fatalf("summary has %d enzymes, want 3", len(s.Enzymes))
	}
	if !reflect.DeepEqual(s.Enzymes[0].Cuts, []int{3, 11}) {
		t.Errorf("EcoRI cuts = %v, want [3 11]", s.Enzymes[0].Cuts)
	}
	if !reflect.DeepEqual(s.Enzymes[1].Cuts, []int{19}) {
		t.Errorf("MseI cuts = %v, want [19]", s.Enzymes[1].Cuts)
	}
	if s.Enzymes[2].Fragments != 1 {
		t.Errorf("AscI fragments = %d, want 1", s.Enzymes[2].Fragments)
	}
}

// an enzyme file with no parseable definitions still renders the header
// block, with every skip warned about on stderr
func Test_e2e_noEnzymesParsed(t *testing.T) {
	dir := t.TempDir()
	fastaPath := path.Join(dir, "demo.fa")
	enzymePath := path.Join(dir, "enzymes.txt")
	if err := os.WriteFile(fastaPath, []byte(">demo\nACGTACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(enzymePath, []byte("# only comments here\nnot-an-enzyme-line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	captured := &bytes.Buffer{}
	orig := stderr
	stderr = log.New(captured, "", 0)
	defer func() { stderr = orig }()

	c := &config.Config{Report: testReportConfig}
	report, err := Run(fastaPath, enzymePath, "", c)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantLines := []string{
		"Sequence name:  demo",
		"Sequence is 8 bases long.",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line+"\n") {
			t.Errorf("report is missing line %q:\n%s", line, report)
		}
	}
	if strings.Contains(report, "cutting sites") {
		t.Errorf("report should have no enzyme sections:\n%s", report)
	}

	warnings := captured.String()
	if !strings.Contains(warnings, "skipped enzyme line 2") {
		t.Errorf("stderr is missing the skipped-line warning: %q", warnings)
	}
	if !strings.Contains(warnings, "no enzymes parsed") {
		t.Errorf("stderr is missing the no-enzymes warning: %q", warnings)
	}
}

// an unreadable FASTA file aborts the run before any report is produced
func Test_e2e_missingFasta(t *testing.T) {
	enzymePath := path.Join("..", "..", "test", "input", "enzymes.txt")

	c := &config.Config{Report: testReportConfig}
	report, err := Run(path.Join(t.TempDir(), "missing.fa"), enzymePath, "", c)

	if err == nil {
		t.Fatal("Run() expected an error for a missing FASTA file")
	}
	if report != "" {
		t.Errorf("Run() produced a partial report: %q", report)
	}
}
