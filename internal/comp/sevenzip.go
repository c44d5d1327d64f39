package comp

import (
	"context"
	"fmt"
	"os/exec"
)

// SevenZip handles nested self-extracting archives by shelling out to
// the 7z executable.
type SevenZip struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
}

func (z SevenZip) binary() string {
	if z.Binary != "" {
		return z.Binary
	}
	return "7z"
}

// Supported probes whether path holds an archive 7z can open.
func (z SevenZip) Supported(ctx context.Context, path string) bool {
	bin, err := exec.LookPath(z.binary())
	if err != nil {
		return false
	}
	return exec.CommandContext(ctx, bin, "t", path).Run() == nil
}

// Extract unpacks the archive at inPath into outDir.
func (z SevenZip) Extract(ctx context.Context, inPath, outDir string) error {
	bin, err := exec.LookPath(z.binary())
	if err != nil {
		return fmt.Errorf("7z unavailable: %w", err)
	}
	cmd := exec.CommandContext(ctx, bin, "x", "-aou", "-bso0", "-bse0", "-bsp0", "-o"+outDir, inPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("7z extraction failed: %w (%s)", err, firstLine(out))
	}
	return nil
}
