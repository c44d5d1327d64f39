package ucp

import "encoding/binary"

// Test fixture builders for synthetic containers. A module is its
// 16-byte header, the 8-byte sub-header and the stored payload; a
// container is its own 16-byte header followed by the module chain.

func buildModuleSized(tag string, compSize, origSize uint32, stored []byte) []byte {
	size := moduleHeaderLen + subHeaderLen + len(stored)
	b := make([]byte, 0, size)
	b = append(b, tag...)
	b = binary.LittleEndian.AppendUint32(b, uint32(size))
	b = binary.LittleEndian.AppendUint16(b, 0) // checksum
	b = append(b, 0, 0)                        // unknown bytes
	b = binary.LittleEndian.AppendUint32(b, 0) // reserved
	b = binary.LittleEndian.AppendUint32(b, compSize)
	b = binary.LittleEndian.AppendUint32(b, origSize)
	return append(b, stored...)
}

// buildModule stores payload uncompressed (compressed size equals
// original size).
func buildModule(tag string, payload []byte) []byte {
	n := uint32(len(payload))
	return buildModuleSized(tag, n, n, payload)
}

func buildContainer(tag string, mods ...[]byte) []byte {
	total := moduleHeaderLen
	for _, m := range mods {
		total += len(m)
	}
	b := make([]byte, 0, total)
	b = append(b, tag...)
	b = binary.LittleEndian.AppendUint32(b, uint32(total))
	b = binary.LittleEndian.AppendUint16(b, 0)
	b = append(b, 0, 0)
	b = binary.LittleEndian.AppendUint32(b, 0)
	for _, m := range mods {
		b = append(b, m...)
	}
	return b
}
