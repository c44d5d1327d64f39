package main

import "github.com/urfave/cli/v3"

var (
	outputDir   string
	checksums   bool
	reportPath  string
	sevenZipBin string
	tianoBin    string
	logLevel    string
	logFormat   string
	debug       bool
)

func commonExtractFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "directory extraction trees are created under",
			Value:       ".",
			Destination: &outputDir,
		},
		&cli.BoolFlag{
			Name:        "checksum",
			Aliases:     []string{"c"},
			Usage:       "validate 16-bit checksums of the container and every module",
			Destination: &checksums,
		},
		&cli.StringFlag{
			Name:        "report-json",
			Usage:       "write a JSON extraction report to this path ('-' for stdout)",
			Destination: &reportPath,
		},
	}
}

func toolFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "7z",
			Usage:       "path to the 7-Zip binary for @INS SFX payloads",
			Value:       "7z",
			Destination: &sevenZipBin,
		},
		&cli.StringFlag{
			Name:        "tianocompress",
			Usage:       "path to the TianoCompress binary for EFI-compressed modules",
			Value:       "TianoCompress",
			Destination: &tianoBin,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}
