// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// ex: DNASEQ_ORF_MIN_LENGTH=300
const EnvPrefix = "DNASEQ"

// ORFConfig is settings for open reading frame scans
type ORFConfig struct {
	// the minimum length, in bp, of an ORF for it to be reported
	MinLength int `mapstructure:"min-length"`
}

// FASTAConfig is settings for writing FASTA files
type FASTAConfig struct {
	// the number of bases per sequence line
	Width int `mapstructure:"width"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those available from the command line
type Config struct {
	// Settings is the path to a YAML settings file (optional)
	Settings string `mapstructure:"settings"`

	// Verbose is whether to log progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// ORF settings
	ORF ORFConfig `mapstructure:"orf"`

	// FASTA settings
	FASTA FASTAConfig `mapstructure:"fasta"`
}

// SetDefaults registers the default settings and environment overrides on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("settings", "")
	v.SetDefault("verbose", false)
	v.SetDefault("orf.min-length", 100)
	v.SetDefault("fasta.width", 80)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

func init() {
	SetDefaults(viper.GetViper())
}

// Load reads the settings file (if one is set) into v and unmarshals
// the settings into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if c.ORF.MinLength < 0 {
		return nil, fmt.Errorf("orf.min-length must not be negative: %d", c.ORF.MinLength)
	}
	if c.FASTA.Width < 1 {
		return nil, fmt.Errorf("fasta.width must be at least 1: %d", c.FASTA.Width)
	}
	return &c, nil
}

// New returns a new Config struct populated by the global Viper
// settings (defaults, the settings file, env vars and bound CLI flags)
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("%v", err)
	}
	return c
}
