package ucp

import (
	"fmt"
	"strings"
)

// NameRecord is one decoded @NAL entry: the module tag, the path text
// as stored, and the resolved base name with directory parts stripped.
type NameRecord struct {
	Tag  string
	Path string
	Name string
}

// IsNameList reports whether payload plausibly holds @NAL records: a
// four-byte tag starting with '@' followed by a colon separator.
func IsNameList(payload []byte) bool {
	return len(payload) >= 5 && payload[0] == signatureByte && payload[4] == ':'
}

// DecodeNameList splits the @NAL payload into newline-delimited
// tag:path records. A record without a separator is a decode error for
// that record only; well-formed records still contribute. The second
// return value collects the per-record diagnostics.
func DecodeNameList(payload []byte) ([]NameRecord, []string) {
	text := strings.ReplaceAll(bestEffortText(payload), "\r", "")

	var (
		records []NameRecord
		bad     []string
	)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line == "" {
			continue
		}
		tag, path, ok := strings.Cut(line, ":")
		if !ok {
			bad = append(bad, fmt.Sprintf("name list record without separator: %q", line))
			continue
		}
		records = append(records, NameRecord{Tag: tag, Path: path, Name: baseName(path)})
	}
	return records, bad
}

// Table folds the records into a NameTable, later records overwriting
// earlier ones for the same tag.
func Table(records []NameRecord) NameTable {
	t := make(NameTable, len(records))
	for _, r := range records {
		t[r.Tag] = r.Name
	}
	return t
}

// baseName keeps only the final path component, treating both
// separator conventions as separators since the recorded paths come
// from DOS/Windows tooling.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
