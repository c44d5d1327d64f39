package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/paulocmarques/BIOSUtilities/internal/comp"
	"github.com/paulocmarques/BIOSUtilities/internal/input"
	"github.com/paulocmarques/BIOSUtilities/internal/logger"
	"github.com/paulocmarques/BIOSUtilities/internal/pathutil"
	"github.com/paulocmarques/BIOSUtilities/internal/pfat"
	"github.com/paulocmarques/BIOSUtilities/internal/report"
	"github.com/paulocmarques/BIOSUtilities/internal/ucp"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract AMI UCP BIOS update executables",
		ArgsUsage: "<file|directory> ...",
		Flags:     append(append(commonExtractFlags(), toolFlags()...), loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return cli.Exit("error: no input files or directories given", 1)
			}
			applyExtractConfig(c, LoadConfig())
			log := buildLogger()
			ctx = logger.WithContext(ctx, log)

			inputs, err := pathutil.DiscoverInputs(c.Args().Slice())
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: discover inputs: %v", err), 1)
			}
			if len(inputs) == 0 {
				return cli.Exit("error: no input files found", 1)
			}

			var (
				records []*report.Extraction
				skipped int
				failed  int
			)
			for _, path := range inputs {
				rec, err := extractOne(ctx, path)
				switch {
				case errors.Is(err, ucp.ErrNoContainer):
					log.Warn("no UCP container signature, skipping", "input", path)
					skipped++
				case err != nil:
					log.Error("extraction failed", "input", path, "error", err)
					failed++
				default:
					log.Info("extracted",
						"input", path,
						"offset", rec.ContainerOffset,
						"modules", len(rec.Container.Modules))
					records = append(records, rec)
				}
			}

			if reportPath != "" && len(records) > 0 {
				if err := writeReport(records); err != nil {
					return cli.Exit(fmt.Sprintf("error: write report: %v", err), 1)
				}
			}

			if failed > 0 {
				return cli.Exit(fmt.Sprintf("error: %d of %d inputs failed", failed, len(inputs)), 1)
			}
			if len(records) == 0 {
				return cli.Exit(fmt.Sprintf("error: none of the %d inputs contained a UCP container", len(inputs)), 1)
			}
			if skipped > 0 {
				log.Info("done", "extracted", len(records), "skipped", skipped)
			}
			return nil
		},
	}
}

// extractOne scans a single file and unpacks its container into
// <output>/<input name>_extracted.
func extractOne(ctx context.Context, path string) (*report.Extraction, error) {
	f, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	off, buf := ucp.Locate(f.Data)
	if len(buf) == 0 {
		return nil, ucp.ErrNoContainer
	}

	x := &ucp.Extractor{
		Checksum: checksums,
		Tracer:   &report.Tracer{W: os.Stdout},
		EFI:      comp.Tiano{Binary: tianoBin},
		SFX:      comp.SevenZip{Binary: sevenZipBin},
		PFAT:     pfat.Handler{},
	}

	base := filepath.Join(outputDir, pathutil.SafeName(filepath.Base(path)))
	cont, err := x.Extract(ctx, buf, base, 0)
	if err != nil {
		return nil, err
	}

	return &report.Extraction{
		Input:           path,
		ContainerOffset: off,
		Container:       cont,
	}, nil
}

// writeReport renders the collected extraction records as JSON, one
// document per input, concatenated when several inputs were processed.
func writeReport(records []*report.Extraction) error {
	out := os.Stdout
	if reportPath != "-" {
		f, err := os.Create(reportPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	for _, rec := range records {
		blob, err := rec.MarshalIndent()
		if err != nil {
			return err
		}
		if _, err := out.Write(append(blob, '\n')); err != nil {
			return err
		}
	}
	return nil
}
