package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"BIOS.bin", "BIOS.bin"},
		{"out/custom.bin", "out_custom.bin"},
		{`a\b:c"d*e?f<g>h|i`, "a_b_c_d_e_f_g_h_i"},
		{"@INS_nested-SFX", "@INS_nested-SFX"},
		{"..\\..\\evil", ".._.._evil"},
	}
	for _, tc := range cases {
		if got := SafeName(tc.in); got != tc.want {
			t.Fatalf("SafeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractionDirReplacesStale(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "update.exe")
	dir, err := ExtractionDir(base)
	if err != nil {
		t.Fatalf("ExtractionDir: %v", err)
	}
	stale := filepath.Join(dir, "leftover.bin")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	dir2, err := ExtractionDir(base)
	if err != nil {
		t.Fatalf("ExtractionDir again: %v", err)
	}
	if dir2 != dir {
		t.Fatalf("extraction dir changed between runs: %q vs %q", dir, dir2)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("stale file should be gone, stat err = %v", err)
	}
}

func TestDiscoverInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.exe", "a.exe", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := DiscoverInputs([]string{dir})
	if err != nil {
		t.Fatalf("DiscoverInputs: %v", err)
	}
	want := []string{filepath.Join(dir, "a.exe"), filepath.Join(dir, "b.exe")}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
