// Package cmd is for command line interactions with the resite application
package cmd

import (
	"log"

	"github.com/paniztayebi78/resite/internal/resite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settingsHelp = `optional YAML settings file overriding the report layout
(report.line-width, report.block-width, report.label-width)`
)

// RootCmd represents the base command when called without any subcommands:
// digest the FASTA sequence with every enzyme in the list and print a
// report of the cutting sites and fragments.
var RootCmd = &cobra.Command{
	Use:   "resite <fasta> <enzymes>",
	Short: "Find restriction enzyme cutting sites in a DNA sequence",
	Long: `Read a single-record FASTA file and a list of restriction enzymes,
one "Name;Recognition^Sequence" definition per line, where "^" (or "%")
marks the enzyme's cleavage offset within its recognition sequence.

Every cleavage site of every enzyme is located in the sequence and a
report of the resulting fragments is printed:

  resite plasmid.fa enzymes.txt`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(2),
	Run:     resite.RunCmd,
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
	RootCmd.Flags().StringP("out", "o", "", "write the report to a file instead of stdout")
	RootCmd.Flags().StringP("json", "j", "", "also write a run summary <JSON>")
	RootCmd.Flags().StringP("settings", "s", "", settingsHelp)
	viper.BindPFlag("settings", RootCmd.Flags().Lookup("settings"))
}
