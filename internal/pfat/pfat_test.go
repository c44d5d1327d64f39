package pfat

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func pfatImage() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:], 0x1000)
	binary.LittleEndian.PutUint32(b[4:], 0xCAFEBABE)
	b = append(b, "_AMIPFAT\x04AMI_BIOS_GUARD_FLASH_CONFIGURATIONS"...)
	return append(b, bytes.Repeat([]byte{0xEE}, 32)...)
}

func TestDetect(t *testing.T) {
	t.Parallel()

	img := pfatImage()
	buf := append(bytes.Repeat([]byte{0x90}, 40), img...)

	sub, ok := Detect(buf)
	if !ok {
		t.Fatalf("embedded PFAT image not detected")
	}
	if !bytes.Equal(sub, img) {
		t.Fatalf("sub-buffer should start at the image header, got %d bytes want %d", len(sub), len(img))
	}

	if _, ok := Detect([]byte("no guard here")); ok {
		t.Fatalf("false positive on plain data")
	}
}

func TestDetectTagNearBufferStart(t *testing.T) {
	t.Parallel()

	// Tag closer than 8 bytes to the start: the sub-buffer clamps at 0.
	buf := append([]byte{1, 2}, pfatImage()[8:]...)
	sub, ok := Detect(buf)
	if !ok {
		t.Fatalf("image should be detected")
	}
	if len(sub) != len(buf) {
		t.Fatalf("sub-buffer should clamp to start, got %d of %d bytes", len(sub), len(buf))
	}
}

func TestWriterExtract(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "pfat")
	img := pfatImage()
	if err := (Writer{}).Extract(img, outDir); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "PFAT.bin"))
	if err != nil {
		t.Fatalf("sub-image missing: %v", err)
	}
	if !bytes.Equal(got, img) {
		t.Fatalf("sub-image content mismatch")
	}

	hdr, err := os.ReadFile(filepath.Join(outDir, "PFAT_Header.txt"))
	if err != nil {
		t.Fatalf("header listing missing: %v", err)
	}
	if !bytes.Contains(hdr, []byte("_AMIPFAT")) || !bytes.Contains(hdr, []byte("0xCAFEBABE")) {
		t.Fatalf("header listing incomplete: %q", hdr)
	}
}
