package main

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// Config collects the attack parameters shared by the subcommands. Values are
// resolved from a YAML config file (attack.yaml in the working directory, or
// the --config path), HEYS_-prefixed environment variables, and command-line
// flags, in ascending order of precedence.
type Config struct {
	Plaintexts  string `mapstructure:"plaintexts"`
	Ciphertexts string `mapstructure:"ciphertexts"`
	Relation    string `mapstructure:"relation"`
	Workers     int    `mapstructure:"workers"`
	Top         int    `mapstructure:"top"`
	Mask        string `mapstructure:"mask"`
}

func defaultConfig() *Config {
	return &Config{
		Plaintexts:  "plaintexts.txt",
		Ciphertexts: "ciphertexts.txt",
		Relation:    "section34",
		Top:         5,
		Mask:        "0xffff",
	}
}

func loadConfig(c *cli.Context) (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("attack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("HEYS")
	v.AutomaticEnv()
	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an unreadable explicit one
		// or a malformed file is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if c.IsSet("plaintexts") {
		cfg.Plaintexts = c.String("plaintexts")
	}
	if c.IsSet("ciphertexts") {
		cfg.Ciphertexts = c.String("ciphertexts")
	}
	if c.IsSet("relation") {
		cfg.Relation = c.String("relation")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}
	if c.IsSet("mask") {
		cfg.Mask = c.String("mask")
	}
	return cfg, nil
}
