// Package comp wraps the external decompressors that UCP payloads rely
// on: the EFI/Tiano reference tool for compressed module payloads and
// 7-Zip for nested self-extracting archives. Both are invoked as
// subprocesses, the way the format's own tooling works; a missing
// executable degrades to "cannot decompress", never to a failed run.
package comp

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
)

// IsEFICompressed sniffs the 8-byte sub-header framing of EFI/Tiano
// compressed data: a compressed size smaller than the original size,
// and compressed size plus framing matching (strict) or fitting within
// (lenient) the buffer.
func IsEFICompressed(data []byte, strict bool) bool {
	if len(data) < 8 {
		return false
	}
	compSize := binary.LittleEndian.Uint32(data[0:4])
	origSize := binary.LittleEndian.Uint32(data[4:8])
	if compSize >= origSize {
		return false
	}
	if strict {
		return uint64(compSize)+8 == uint64(len(data))
	}
	return uint64(compSize)+8 <= uint64(len(data))
}

// Tiano decompresses EFI/Tiano framed streams by running the
// TianoCompress executable.
type Tiano struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
}

func (t Tiano) binary() string {
	if t.Binary != "" {
		return t.Binary
	}
	return "TianoCompress"
}

// IsCompressed reports whether data carries the EFI compression
// framing. Lenient about trailing bytes, since some payloads are stored
// without EOF padding.
func (t Tiano) IsCompressed(data []byte) bool {
	return IsEFICompressed(data, false)
}

// Decompress runs the external tool on inPath and leaves the result at
// outPath. The input must include the 8-byte sub-header framing.
func (t Tiano) Decompress(ctx context.Context, inPath, outPath string) error {
	bin, err := exec.LookPath(t.binary())
	if err != nil {
		return fmt.Errorf("EFI decompressor unavailable: %w", err)
	}
	cmd := exec.CommandContext(ctx, bin, "-d", inPath, "-o", outPath, "--uefi")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("EFI decompression failed: %w (%s)", err, firstLine(out))
	}
	if st, err := os.Stat(outPath); err != nil || st.Size() == 0 {
		return fmt.Errorf("EFI decompression produced no output")
	}
	return nil
}

func firstLine(out []byte) string {
	for i, b := range out {
		if b == '\n' || b == '\r' {
			return string(out[:i])
		}
	}
	return string(out)
}
