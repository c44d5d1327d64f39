package ucp

import (
	"testing"
)

func tagsOf(mods []Module) []string {
	tags := make([]string, len(mods))
	for i, m := range mods {
		tags[i] = m.Tag
	}
	return tags
}

func TestEnumerateChainOrder(t *testing.T) {
	t.Parallel()

	cont := buildContainer(TagContainer,
		buildModule("@UII", make([]byte, 32)),
		buildModule("@VER", []byte("v")),
		buildModule("@CKV", []byte("c")),
		buildModule("@ROM", []byte("rom")),
	)

	mods := Enumerate(cont, moduleHeaderLen)
	want := []string{"@UII", "@VER", "@CKV", "@ROM"}
	got := tagsOf(mods)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// Offsets must advance by each declared module size.
	off := moduleHeaderLen
	for i, m := range mods {
		if m.Offset != off {
			t.Fatalf("module %d offset = %#x, want %#x", i, m.Offset, off)
		}
		off += int(m.Header.Size)
	}
}

func TestEnumerateMovesNameListToIndexOne(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		chain []string
	}{
		{"name list last", []string{"@UII", "@VER", "@NAL"}},
		{"name list middle", []string{"@UII", "@NAL", "@VER"}},
		{"name list first", []string{"@NAL", "@UII", "@VER"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var mods [][]byte
			for _, tag := range tc.chain {
				mods = append(mods, buildModule(tag, []byte("x")))
			}
			got := tagsOf(Enumerate(buildContainer(TagContainer, mods...), moduleHeaderLen))
			if len(got) != 3 {
				t.Fatalf("got %v", got)
			}
			if got[1] != TagNameList {
				t.Fatalf("name list at index %v, want 1 (%v)", got, tc.chain)
			}
		})
	}
}

func TestEnumerateStopsAtNonSignatureByte(t *testing.T) {
	t.Parallel()

	cont := buildContainer(TagContainer, buildModule("@VER", []byte("v")))
	cont = append(cont, 0x00, 0x41, 0x42) // trailing junk, no '@'

	got := tagsOf(Enumerate(cont, moduleHeaderLen))
	if len(got) != 1 || got[0] != "@VER" {
		t.Fatalf("got %v, want [@VER]", got)
	}
}

func TestEnumerateTruncatedHeader(t *testing.T) {
	t.Parallel()

	cont := buildContainer(TagContainer, buildModule("@VER", []byte("v")))
	cont = append(cont, '@', 'X') // next tag starts but header cannot fit

	got := tagsOf(Enumerate(cont, moduleHeaderLen))
	if len(got) != 1 {
		t.Fatalf("truncated trailing header should be dropped, got %v", got)
	}
}

func TestEnumerateZeroSizeStops(t *testing.T) {
	t.Parallel()

	bad := buildModule("@BAD", nil)
	bad[4], bad[5], bad[6], bad[7] = 0, 0, 0, 0 // declared size zero

	cont := buildContainer(TagContainer, bad)
	got := Enumerate(cont, moduleHeaderLen)
	if len(got) != 1 {
		t.Fatalf("zero-sized module must terminate traversal, got %d modules", len(got))
	}
}
