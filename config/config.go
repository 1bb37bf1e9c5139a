// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ReportConfig is the layout of fragment sequences in the printed report
type ReportConfig struct {
	// the number of bases printed per line
	LineWidth int `mapstructure:"line-width"`

	// the number of bases per space-separated block within a line
	BlockWidth int `mapstructure:"block-width"`

	// the width of the right-aligned position label column
	LabelWidth int `mapstructure:"label-width"`
}

// Config is the root-level settings struct and is a mix
// of settings available in an optional settings file and
// those available from the command line
type Config struct {
	// Report layout settings
	Report ReportConfig `mapstructure:"report"`
}

// New returns a new Config struct populated by Viper settings: the
// defaults below, overridden by the settings file named with the
// "settings" flag (if one was passed)
func New() *Config {
	viper.SetDefault("report.line-width", 60)
	viper.SetDefault("report.block-width", 10)
	viper.SetDefault("report.label-width", 4)

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
