package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the ucpextract configuration file
// (~/.config/ucpextract/config.yaml). Fields that shadow flags with
// non-zero defaults are pointers so "not set" stays distinguishable.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Checksum  *bool  `yaml:"checksum"`

	// External tool paths
	SevenZip      string `yaml:"seven_zip"`
	TianoCompress string `yaml:"tianocompress"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ucpextract", "config.yaml")
}

// applyExtractConfig applies config file defaults to the extract and
// scan command variables when the corresponding flag was not set.
func applyExtractConfig(c *cli.Command, cfg Config) {
	if cfg.OutputDir != "" && !c.IsSet("output") {
		outputDir = cfg.OutputDir
	}
	if cfg.Checksum != nil && !c.IsSet("checksum") {
		checksums = *cfg.Checksum
	}
	if cfg.SevenZip != "" && !c.IsSet("7z") {
		sevenZipBin = cfg.SevenZip
	}
	if cfg.TianoCompress != "" && !c.IsSet("tianocompress") {
		tianoBin = cfg.TianoCompress
	}
	applyLoggingConfig(c, cfg)
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.SevenZip != "" && !c.IsSet("7z") {
		sevenZipBin = cfg.SevenZip
	}
	if cfg.TianoCompress != "" && !c.IsSet("tianocompress") {
		tianoBin = cfg.TianoCompress
	}
	applyLoggingConfig(c, cfg)
}

func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or fails to parse.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
