package ucp

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulocmarques/BIOSUtilities/internal/checksum"
	"github.com/paulocmarques/BIOSUtilities/internal/pathutil"
	"github.com/paulocmarques/BIOSUtilities/internal/report"
)

// EFIDecompressor handles EFI/Tiano compressed module payloads. The
// input file includes the 8-byte sub-header framing.
type EFIDecompressor interface {
	IsCompressed(data []byte) bool
	Decompress(ctx context.Context, inPath, outPath string) error
}

// SFXExtractor handles nested self-extracting archives (@INS modules).
type SFXExtractor interface {
	Supported(ctx context.Context, path string) bool
	Extract(ctx context.Context, inPath, outDir string) error
}

// PFATHandler detects and extracts AMI BIOS Guard sub-images.
type PFATHandler interface {
	Detect(data []byte) ([]byte, bool)
	Extract(sub []byte, outDir string) error
}

// defaultMaxDepth caps container-in-module recursion against
// self-referential blobs.
const defaultMaxDepth = 16

// maxRepairAlloc bounds how far a declared-but-missing payload size is
// repaired with zero padding. Declared sizes beyond this are treated as
// corrupt rather than allocated.
const maxRepairAlloc = 1 << 28

// Extractor unpacks located containers into an output directory tree.
// It is single-threaded: modules are processed strictly in enumeration
// order because naming depends on the @NAL module having been decoded
// first. All per-module failures are isolated to that module.
type Extractor struct {
	// Checksum enables 16-bit checksum validation of the container and
	// every module. Diagnostic only; failures never stop extraction.
	Checksum bool

	// MaxDepth caps nested-container recursion; zero means the default.
	MaxDepth int

	Tracer *report.Tracer

	EFI  EFIDecompressor
	SFX  SFXExtractor
	PFAT PFATHandler
}

// Extract unpacks a located container slice. The extraction directory
// is base + "_extracted", replaced if present; failure to create it is
// the only fatal error. The returned record holds everything that was
// decoded, including per-module diagnostics.
func (x *Extractor) Extract(ctx context.Context, buf []byte, base string, pad int) (*report.Container, error) {
	return x.extract(ctx, buf, base, pad, 0)
}

func (x *Extractor) extract(ctx context.Context, buf []byte, base string, pad, depth int) (*report.Container, error) {
	dir, err := pathutil.ExtractionDir(base)
	if err != nil {
		return nil, err
	}

	hdr, err := decodeModuleHeader(buf, 0)
	if err != nil {
		return nil, err
	}

	cont := &report.Container{
		Tag:      hdr.TagString(),
		Size:     hdr.Size,
		Checksum: hdr.Checksum,
	}

	t := x.Tracer
	t.Section(pad, "Utility Configuration Program")
	t.Section(pad+4, "Utility Auxiliary File > %s:", cont.Tag)
	x.traceHeader(pad+8, &hdr)
	t.Printf(pad+8, "Compress Size: 0x%X", len(buf))
	t.Printf(pad+8, "Original Size: 0x%X", len(buf))
	if info, ok := LookupTag(TagContainer); ok {
		t.Printf(pad+8, "File Name    : %s", info.Name)
	}

	if x.Checksum {
		valid := checksum.Valid(buf)
		cont.Valid = &valid
		x.traceChecksum(pad+8, cont.Tag, valid)
	}

	names := NameTable{}
	for _, mod := range Enumerate(buf, moduleHeaderLen) {
		x.extractModule(ctx, buf, dir, mod, pad+8, depth, names, cont)
	}

	return cont, nil
}

func (x *Extractor) traceHeader(pad int, h *ModuleHeader) {
	t := x.Tracer
	t.Printf(pad, "Tag          : %s", h.TagString())
	t.Printf(pad, "Size         : 0x%X", h.Size)
	t.Printf(pad, "Checksum     : 0x%04X", h.Checksum)
	t.Printf(pad, "Unknown 0    : 0x%02X", h.Unknown0)
	t.Printf(pad, "Unknown 1    : 0x%02X", h.Unknown1)
	t.Printf(pad, "Reserved     : 0x%08X", h.Reserved)
}

func (x *Extractor) traceChecksum(pad int, tag string, valid bool) {
	if valid {
		x.Tracer.Printf(pad, "Checksum of UCP module %s is valid", tag)
	} else {
		x.Tracer.Printf(pad, "Error: invalid UCP module %s checksum", tag)
	}
}

// extractModule processes one enumerated module. Every failure is
// recorded on the module report and processing of siblings continues.
func (x *Extractor) extractModule(ctx context.Context, buf []byte, dir string, mod Module, pad, depth int, names NameTable, cont *report.Container) {
	t := x.Tracer

	m := &report.Module{Tag: mod.Tag, Offset: mod.Offset, Size: mod.Header.Size}
	cont.Modules = append(cont.Modules, m)

	t.Section(pad, "Utility Auxiliary File > %s:", mod.Tag)
	x.traceHeader(pad+4, &mod.Header)

	end := mod.Offset + int(mod.Header.Size)
	if int(mod.Header.Size) < moduleHeaderLen || end < mod.Offset || end > len(buf) {
		if end > len(buf) {
			end = len(buf)
		} else {
			m.Note("module size field unusable: 0x%X", mod.Header.Size)
			t.Printf(pad+4, "Error: module size field unusable")
			return
		}
	}
	all := buf[mod.Offset:end]

	sub, err := decodeSubHeader(buf, mod.Offset+moduleHeaderLen)
	if err != nil {
		m.Note("module sub-header truncated")
		t.Printf(pad+4, "Error: module sub-header truncated")
		return
	}
	m.CompressSize = sub.CompressSize
	m.OriginalSize = sub.OriginalSize
	m.Compressed = sub.Compressed()

	modData := all[moduleHeaderLen:] // sub-header + payload
	var raw []byte
	if len(modData) > subHeaderLen {
		raw = modData[subHeaderLen:]
	}

	name, ext := ResolveName(mod.Tag, names)
	m.OutputName = name + ext

	t.Printf(pad+4, "Compress Size: 0x%X", sub.CompressSize)
	t.Printf(pad+4, "Original Size: 0x%X", sub.OriginalSize)
	t.Printf(pad+4, "File Name    : %s", m.OutputName)

	if _, inList := names[mod.Tag]; inList && !KnownTag(mod.Tag) {
		m.Note("new module type %s (%s) found in name list", mod.Tag, names[mod.Tag])
		t.Printf(pad+4, "Note: new module type %s (%s) found in name list", mod.Tag, names[mod.Tag])
	}

	tempExt := ext
	if m.Compressed {
		tempExt = ".temp"
	}
	fname := filepath.Join(dir, pathutil.SafeName(name+tempExt))

	if x.Checksum {
		valid := checksum.Valid(all)
		m.Valid = &valid
		x.traceChecksum(pad+4, mod.Tag, valid)
	}

	if mod.Tag == TagTool {
		x.decodeTool(raw, fname, pad, m)
	}

	raw = x.adjustPayload(modData, raw, sub, pad, m)

	// The @UII payload is information-only; its decoded text is the
	// artifact, the binary is never persisted.
	if mod.Tag != TagTool {
		if err := os.WriteFile(fname, raw, 0o644); err != nil {
			m.Note("write module file: %v", err)
			t.Printf(pad+4, "Error: write module file: %v", err)
			return
		}
	}

	if m.Compressed && x.EFI != nil && x.EFI.IsCompressed(raw) {
		decName := filepath.Join(dir, pathutil.SafeName(name+ext))
		if err := x.EFI.Decompress(ctx, fname, decName); err != nil {
			m.Note("decompression failed, compressed payload kept: %v", err)
			t.Printf(pad+4, "Error: %v", err)
		} else if dec, err := os.ReadFile(decName); err == nil {
			raw = dec
			_ = os.Remove(fname)
			fname = decName
		}
	}

	if info, ok := LookupTag(mod.Tag); ok && info.Kind == KindText {
		m.Text = strings.TrimRight(bestEffortText(raw), "\x00")
		t.Section(pad+4, "%s:", info.Description)
		t.Printf(pad+8, "%s", strings.TrimSpace(m.Text))
	}

	if len(raw) > 0 && mod.Tag == TagCommandStat {
		x.decodeCommandStatus(raw, fname, pad, m)
	}

	if mod.Tag == TagNameList && IsNameList(raw) {
		x.decodeNameList(raw, pad, m, names)
	}

	if mod.Tag == TagInsyde && x.SFX != nil && x.SFX.Supported(ctx, fname) {
		t.Section(pad+4, "Insyde BIOS 7z SFX archive:")
		insDir := filepath.Join(dir, pathutil.SafeName(mod.Tag+"_nested-SFX"))
		if err := x.SFX.Extract(ctx, fname, insDir); err != nil {
			m.Note("nested SFX extraction failed: %v", err)
			t.Printf(pad+8, "Error: %v", err)
		} else {
			m.Note("nested SFX archive extracted")
			_ = os.Remove(fname)
		}
	}

	if x.PFAT != nil {
		if subImage, ok := x.PFAT.Detect(raw); ok {
			t.Section(pad+4, "AMI BIOS Guard (PFAT) image:")
			// Distinct from the module file of the same base name,
			// which is removed only after successful delegation.
			pfatDir := filepath.Join(dir, pathutil.SafeName(name)+"_PFAT")
			if err := x.PFAT.Extract(subImage, pfatDir); err != nil {
				m.Note("PFAT extraction failed: %v", err)
				t.Printf(pad+8, "Error: %v", err)
			} else {
				m.Note("PFAT image extracted")
				_ = os.Remove(fname)
			}
		}
	}

	if strings.HasPrefix(mod.Tag, "@ME") && IsIntelEngine(raw) {
		m.Note("Intel Engine firmware image, use dedicated Engine tooling")
		t.Section(pad+4, "Intel Management Engine (ME) firmware:")
		t.Printf(pad+8, "Use dedicated Intel Engine analysis tooling")
	}

	maxDepth := x.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	if nestedOff, nestedBuf := Locate(raw); nestedOff > 0 && depth < maxDepth {
		nestedBase := filepath.Join(dir, pathutil.SafeName(mod.Tag+"_nested-UCP"))
		nested, err := x.extract(ctx, nestedBuf, nestedBase, pad+4, depth+1)
		if err != nil {
			m.Note("nested container extraction failed: %v", err)
			t.Printf(pad+4, "Error: %v", err)
		} else {
			m.Nested = nested
			_ = os.Remove(fname)
		}
	}
}

// adjustPayload applies the format's compression framing rules: a
// compressed payload gets the 8-byte sub-header prepended back (the
// decompressor expects it) and is zero-padded to the declared
// compressed size when stored without EOF padding; an uncompressed
// payload is cut or zero-extended to exactly the declared original
// size.
func (x *Extractor) adjustPayload(modData, raw []byte, sub SubHeader, pad int, m *report.Module) []byte {
	if sub.Compressed() {
		framed := make([]byte, 0, subHeaderLen+int(sub.CompressSize))
		framed = append(framed, modData[:subHeaderLen]...)
		framed = append(framed, raw...)
		if int64(sub.CompressSize) > int64(len(raw)) {
			missing := int64(sub.CompressSize) - int64(len(raw))
			if missing > maxRepairAlloc {
				m.Note("declared compressed size 0x%X beyond repair limit", sub.CompressSize)
				x.Tracer.Printf(pad+4, "Error: declared compressed size 0x%X beyond repair limit", sub.CompressSize)
				return framed
			}
			framed = append(framed, make([]byte, missing)...)
		}
		return framed
	}

	if int64(sub.OriginalSize) <= int64(len(raw)) {
		return raw[:sub.OriginalSize]
	}
	missing := int64(sub.OriginalSize) - int64(len(raw))
	if missing > maxRepairAlloc {
		m.Note("declared original size 0x%X beyond repair limit", sub.OriginalSize)
		x.Tracer.Printf(pad+4, "Error: declared original size 0x%X beyond repair limit", sub.OriginalSize)
		return raw
	}
	out := make([]byte, 0, int(sub.OriginalSize))
	out = append(out, raw...)
	return append(out, make([]byte, missing)...)
}

func (x *Extractor) decodeTool(raw []byte, fname string, pad int, m *report.Module) {
	t := x.Tracer

	info, err := DecodeTool(raw)
	if err != nil {
		m.Note("UII decode failed: %v", err)
		t.Printf(pad+4, "Error: UII decode failed: %v", err)
		return
	}
	m.Tool = info

	t.Section(pad+4, "Utility Identification Information:")
	t.Tool(pad+8, info)

	if x.Checksum {
		valid := checksum.Valid(raw)
		x.traceChecksum(pad+8, TagTool+" > Info", valid)
	}

	if err := writeSidecar(fname, info.WriteText); err != nil {
		m.Note("write UII sidecar: %v", err)
	}
}

func (x *Extractor) decodeCommandStatus(raw []byte, fname string, pad int, m *report.Module) {
	t := x.Tracer

	c, err := DecodeCommandStatus(raw)
	if err != nil {
		m.Note("DIS decode failed: %v", err)
		t.Printf(pad+4, "Error: DIS decode failed: %v", err)
		return
	}
	m.Commands = c

	t.Section(pad+4, "Default Command Status Header:")
	t.Commands(pad+8, c)

	if err := writeSidecar(fname, c.WriteText); err != nil {
		m.Note("write DIS sidecar: %v", err)
		return
	}
	// The text artifact captures the full table; the binary is
	// redundant after a successful decode.
	_ = os.Remove(fname)
}

func (x *Extractor) decodeNameList(raw []byte, pad int, m *report.Module, names NameTable) {
	t := x.Tracer

	records, bad := DecodeNameList(raw)
	for _, diag := range bad {
		m.Note("%s", diag)
		t.Printf(pad+4, "Error: %s", diag)
	}

	t.Section(pad+4, "Module name list:")
	m.Names = make(map[string]string, len(records))
	for _, r := range records {
		t.Printf(pad+8, "%s : %s", r.Tag, r.Path)
		names[r.Tag] = r.Name
		m.Names[r.Tag] = r.Name
	}
}

// writeSidecar writes a text artifact next to the module file, its
// extension replaced with .txt. Opened for append: repeated @UII/@DIS
// modules in one container share an output name, and each decode must
// survive. The extraction dir is always fresh, so nothing accumulates
// across runs.
func writeSidecar(fname string, render func(w io.Writer)) error {
	path := strings.TrimSuffix(fname, filepath.Ext(fname)) + ".txt"
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	render(f)
	return f.Close()
}
