package cmd

import (
	"testing"
)

// the root command takes exactly a FASTA path and an enzyme list path
func Test_rootArgs(t *testing.T) {
	if err := RootCmd.Args(RootCmd, []string{}); err == nil {
		t.Error("expected an error with no arguments")
	}
	if err := RootCmd.Args(RootCmd, []string{"plasmid.fa"}); err == nil {
		t.Error("expected an error with one argument")
	}
	if err := RootCmd.Args(RootCmd, []string{"plasmid.fa", "enzymes.txt"}); err != nil {
		t.Errorf("unexpected error with two arguments: %v", err)
	}
	if err := RootCmd.Args(RootCmd, []string{"plasmid.fa", "enzymes.txt", "extra"}); err == nil {
		t.Error("expected an error with three arguments")
	}
}

// the flags the run entrypoint reads must all be registered
func Test_rootFlags(t *testing.T) {
	for _, name := range []string{"out", "json", "settings"} {
		if RootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q is not registered on the root command", name)
		}
	}
}
