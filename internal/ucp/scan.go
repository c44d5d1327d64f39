package ucp

import (
	"github.com/paulocmarques/BIOSUtilities/internal/checksum"
	"github.com/paulocmarques/BIOSUtilities/internal/report"
)

// Scan enumerates a located container and decodes its naming metadata
// without writing anything to disk. The returned record carries the
// same layout fields Extract would produce: tags, offsets, declared
// sizes, compression state and resolved output names.
func Scan(buf []byte, validate bool) (*report.Container, error) {
	hdr, err := decodeModuleHeader(buf, 0)
	if err != nil {
		return nil, err
	}

	cont := &report.Container{
		Tag:      hdr.TagString(),
		Size:     hdr.Size,
		Checksum: hdr.Checksum,
	}
	if validate {
		valid := checksum.Valid(buf)
		cont.Valid = &valid
	}

	names := NameTable{}
	for _, mod := range Enumerate(buf, moduleHeaderLen) {
		m := &report.Module{Tag: mod.Tag, Offset: mod.Offset, Size: mod.Header.Size}
		cont.Modules = append(cont.Modules, m)

		end := mod.Offset + int(mod.Header.Size)
		if int(mod.Header.Size) < moduleHeaderLen || end < mod.Offset {
			m.Note("module size field unusable: 0x%X", mod.Header.Size)
			continue
		}
		if end > len(buf) {
			end = len(buf)
		}
		all := buf[mod.Offset:end]

		sub, err := decodeSubHeader(buf, mod.Offset+moduleHeaderLen)
		if err != nil {
			m.Note("module sub-header truncated")
			continue
		}
		m.CompressSize = sub.CompressSize
		m.OriginalSize = sub.OriginalSize
		m.Compressed = sub.Compressed()

		if validate {
			valid := checksum.Valid(all)
			m.Valid = &valid
		}

		if mod.Tag == TagNameList && len(all) > moduleHeaderLen+subHeaderLen {
			raw := all[moduleHeaderLen+subHeaderLen:]
			if IsNameList(raw) {
				records, bad := DecodeNameList(raw)
				for _, diag := range bad {
					m.Note("%s", diag)
				}
				m.Names = make(map[string]string, len(records))
				for _, r := range records {
					m.Names[r.Tag] = r.Name
					names[r.Tag] = r.Name
				}
			}
		}

		name, ext := ResolveName(mod.Tag, names)
		m.OutputName = name + ext
	}

	return cont, nil
}
