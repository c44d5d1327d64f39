package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/paulocmarques/BIOSUtilities/internal/input"
	"github.com/paulocmarques/BIOSUtilities/internal/pathutil"
	"github.com/paulocmarques/BIOSUtilities/internal/report"
	"github.com/paulocmarques/BIOSUtilities/internal/ucp"
)

func scanCmd() *cli.Command {
	var jsonOut bool

	return &cli.Command{
		Name:      "scan",
		Usage:     "List container layout without extracting anything",
		ArgsUsage: "<file|directory> ...",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the scan result as JSON",
				Destination: &jsonOut,
			},
			&cli.BoolFlag{
				Name:        "checksum",
				Aliases:     []string{"c"},
				Usage:       "validate 16-bit checksums of the container and every module",
				Destination: &checksums,
			},
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return cli.Exit("error: no input files or directories given", 1)
			}
			applyLoggingConfig(c, LoadConfig())
			log := buildLogger()

			inputs, err := pathutil.DiscoverInputs(c.Args().Slice())
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: discover inputs: %v", err), 1)
			}

			found := 0
			for _, path := range inputs {
				f, err := input.Open(path)
				if err != nil {
					log.Error("open input", "input", path, "error", err)
					continue
				}

				off, buf := ucp.Locate(f.Data)
				if len(buf) == 0 {
					log.Warn("no UCP container signature", "input", path)
					_ = f.Close()
					continue
				}

				cont, err := ucp.Scan(buf, checksums)
				_ = f.Close()
				if err != nil {
					log.Error("scan failed", "input", path, "error", err)
					continue
				}
				found++

				if jsonOut {
					rec := &report.Extraction{Input: path, ContainerOffset: off, Container: cont}
					blob, err := rec.MarshalIndent()
					if err != nil {
						return cli.Exit(fmt.Sprintf("error: encode scan result: %v", err), 1)
					}
					fmt.Println(string(blob))
					continue
				}

				printScan(path, off, cont)
			}

			if found == 0 {
				return cli.Exit("error: no UCP containers found", 1)
			}
			return nil
		},
	}
}

func printScan(path string, off int, cont *report.Container) {
	fmt.Printf("%s\n", path)
	fmt.Printf("    container %s at 0x%X, size 0x%X, %d modules\n",
		cont.Tag, off, cont.Size, len(cont.Modules))
	for _, m := range cont.Modules {
		line := fmt.Sprintf("    %-6s off=0x%-8X comp=0x%-8X orig=0x%-8X %s",
			m.Tag, m.Offset, m.CompressSize, m.OriginalSize, m.OutputName)
		if m.Compressed {
			line += " (compressed)"
		}
		if m.Valid != nil && !*m.Valid {
			line += " (bad checksum)"
		}
		fmt.Println(line)
	}
}
