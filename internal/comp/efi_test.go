package comp

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"testing"
)

func framed(compSize, origSize uint32, body []byte) []byte {
	b := make([]byte, 8, 8+len(body))
	binary.LittleEndian.PutUint32(b[0:], compSize)
	binary.LittleEndian.PutUint32(b[4:], origSize)
	return append(b, body...)
}

func TestIsEFICompressed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		data   []byte
		strict bool
		want   bool
	}{
		{"strict exact", framed(4, 100, []byte{1, 2, 3, 4}), true, true},
		{"strict trailing bytes", framed(4, 100, []byte{1, 2, 3, 4, 5}), true, false},
		{"lenient trailing bytes", framed(4, 100, []byte{1, 2, 3, 4, 5}), false, true},
		{"lenient truncated", framed(10, 100, []byte{1, 2}), false, false},
		{"equal sizes are not compressed", framed(8, 8, make([]byte, 8)), false, false},
		{"compressed larger than original", framed(20, 10, make([]byte, 20)), false, false},
		{"too short for framing", []byte{1, 2, 3}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEFICompressed(tc.data, tc.strict); got != tc.want {
				t.Fatalf("IsEFICompressed(strict=%v) = %v, want %v", tc.strict, got, tc.want)
			}
		})
	}
}

func TestTianoMissingBinary(t *testing.T) {
	t.Parallel()

	tn := Tiano{Binary: "definitely-not-a-real-tool-xyz"}
	dir := t.TempDir()
	err := tn.Decompress(context.Background(), filepath.Join(dir, "in"), filepath.Join(dir, "out"))
	if err == nil {
		t.Fatalf("missing decompressor must surface an error")
	}
}

func TestSevenZipMissingBinary(t *testing.T) {
	t.Parallel()

	z := SevenZip{Binary: "definitely-not-a-real-tool-xyz"}
	if z.Supported(context.Background(), "whatever") {
		t.Fatalf("missing 7z must report unsupported")
	}
	if err := z.Extract(context.Background(), "in", t.TempDir()); err == nil {
		t.Fatalf("missing 7z must surface an error")
	}
}
