package ucp

import (
	"fmt"
	"path"
	"strings"
)

// NameTable is the per-container naming dictionary built from the @NAL
// module. It maps a module tag to its resolved base file name, path
// components already stripped. The table is scoped to one container
// traversal and never inherited across recursion levels.
type NameTable map[string]string

// prefix families whose numbered members get synthesized names.
var tagPrefixNames = map[string]string{
	"@R0": "BIOS_0%s.bin", // BIOS/PFAT firmware
	"@S0": "BIOS_0%s.sig", // BIOS/PFAT signature
	"@DR": "DROM_0%s.bin", // Thunderbolt retimer firmware
	"@DS": "DROM_0%s.sig", // Thunderbolt retimer signature
	"@EC": "EC_0%s.bin",   // embedded controller firmware
	"@ME": "ME_0%s.bin",   // management engine firmware
}

// ResolveName returns the output base name and extension for a module
// tag. The name table always wins, then the Tag Registry, then the @ROM
// sentinel and the numbered prefix families; an entirely unknown tag
// falls back to the raw tag text with a forced .bin extension. No
// resolution path ever fails.
func ResolveName(tag string, names NameTable) (name, ext string) {
	if n, ok := names[tag]; ok {
		if path.Ext(n) == "" {
			return n, ".bin"
		}
		return n, ""
	}
	if info, ok := LookupTag(tag); ok {
		return info.Name, ""
	}
	if tag == TagROM {
		return "BIOS.bin", ""
	}
	for prefix, format := range tagPrefixNames {
		if strings.HasPrefix(tag, prefix) {
			return fmt.Sprintf(format, tag[3:]), ""
		}
	}
	return tag, ".bin"
}

// KnownTag reports whether a tag resolves through anything other than
// the raw-tag fallback, the name table aside. Used to flag previously
// unknown module types that only the @NAL list knows about.
func KnownTag(tag string) bool {
	if _, ok := LookupTag(tag); ok {
		return true
	}
	if tag == TagROM {
		return true
	}
	for prefix := range tagPrefixNames {
		if strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}
