package ucp

import (
	"encoding/binary"
	"fmt"
)

// All decoders take the containing buffer plus an offset and validate
// the fixed structure size against the remaining length before any
// read. Reads never run past the buffer.

func decodeModuleHeader(data []byte, off int) (ModuleHeader, error) {
	var h ModuleHeader
	if off < 0 || len(data)-off < moduleHeaderLen {
		return h, fmt.Errorf("%w: module header at %#x", ErrTruncated, off)
	}
	b := data[off:]
	copy(h.Tag[:], b[0:4])
	h.Size = binary.LittleEndian.Uint32(b[4:8])
	h.Checksum = binary.LittleEndian.Uint16(b[8:10])
	h.Unknown0 = b[10]
	h.Unknown1 = b[11]
	h.Reserved = binary.LittleEndian.Uint32(b[12:16])
	return h, nil
}

func decodeSubHeader(data []byte, off int) (SubHeader, error) {
	var s SubHeader
	if off < 0 || len(data)-off < subHeaderLen {
		return s, fmt.Errorf("%w: module sub-header at %#x", ErrTruncated, off)
	}
	b := data[off:]
	s.CompressSize = binary.LittleEndian.Uint32(b[0:4])
	s.OriginalSize = binary.LittleEndian.Uint32(b[4:8])
	return s, nil
}

func decodeUiiHeader(data []byte) (UiiHeader, error) {
	var h UiiHeader
	if len(data) < uiiHeaderLen {
		return h, fmt.Errorf("%w: UII header", ErrTruncated)
	}
	h.UIISize = binary.LittleEndian.Uint16(data[0:2])
	h.Checksum = binary.LittleEndian.Uint16(data[2:4])
	h.UtilityVersion = binary.LittleEndian.Uint32(data[4:8])
	h.InfoSize = binary.LittleEndian.Uint16(data[8:10])
	h.SupportBIOS = data[10]
	h.SupportOS = data[11]
	h.DataBusWidth = data[12]
	h.ProgramType = data[13]
	h.ProgramMode = data[14]
	h.SourceSafeRel = data[15]
	return h, nil
}

func decodeDisHeader(data []byte) (DisHeader, error) {
	var h DisHeader
	if len(data) < disHeaderLen {
		return h, fmt.Errorf("%w: DIS header", ErrTruncated)
	}
	h.PasswordSize = binary.LittleEndian.Uint16(data[0:2])
	h.EntryCount = binary.LittleEndian.Uint16(data[2:4])
	copy(h.Password[:], data[4:16])
	return h, nil
}

func decodeDisEntry(data []byte, off int) (DisEntry, error) {
	var e DisEntry
	if off < 0 || len(data)-off < disEntryLen {
		return e, fmt.Errorf("%w: DIS entry at %#x", ErrTruncated, off)
	}
	b := data[off:]
	e.EnabledDisabled = b[0]
	e.ShownHidden = b[1]
	copy(e.Command[:], b[2:34])
	copy(e.Description[:], b[34:290])
	return e, nil
}
