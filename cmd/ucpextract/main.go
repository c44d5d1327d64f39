package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/paulocmarques/BIOSUtilities/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "ucpextract",
		Usage: "AMI UCP BIOS update extractor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			extractCmd(),
			scanCmd(),
			serveCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildLogger constructs the command logger from the logging flags.
func buildLogger() logger.Logger {
	level := logLevel
	if debug {
		level = "debug"
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, logger.ParseLevel(level))
	case "text":
		return logger.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logger.ParseLevel(level)}))
	default:
		return logger.Pretty(os.Stderr, logger.ParseLevel(level))
	}
}
