// Package pfat detects AMI BIOS Guard (PFAT) sub-images inside module
// payloads and hands them to an extractor. Only detection and the
// sub-image boundary live here; BIOS Guard image semantics are owned by
// dedicated tooling.
package pfat

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// patPFAT matches the BIOS Guard header tag plus the flash
// configuration marker that always follows it.
var patPFAT = regexp.MustCompile(`(?s)_AMIPFAT.AMI_BIOS_GUARD_FLASH_CONFIGURATIONS`)

// Detect reports whether data embeds a PFAT image and returns the
// sub-buffer starting at the image header, which sits 8 bytes before
// the matched tag.
func Detect(data []byte) ([]byte, bool) {
	loc := patPFAT.FindIndex(data)
	if loc == nil {
		return nil, false
	}
	start := loc[0] - 8
	if start < 0 {
		start = 0
	}
	return data[start:], true
}

// Writer is the fallback PFAT handler: it persists the sub-image and a
// small header listing so dedicated tooling can take over. It satisfies
// the extractor interface the UCP engine delegates to.
type Writer struct{}

// Extract writes the PFAT sub-image into outDir.
func (Writer) Extract(sub []byte, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "PFAT.bin"), sub, 0o644); err != nil {
		return err
	}

	// The 16-byte image header: declared size, checksum, "_AMIPFAT".
	if len(sub) >= 16 {
		size := binary.LittleEndian.Uint32(sub[0:4])
		chk := binary.LittleEndian.Uint32(sub[4:8])
		listing := fmt.Sprintf("Size    : 0x%X\nChecksum: 0x%08X\nTag     : %s\n", size, chk, sub[8:16])
		if err := os.WriteFile(filepath.Join(outDir, "PFAT_Header.txt"), []byte(listing), 0o644); err != nil {
			return err
		}
	}
	return nil
}
