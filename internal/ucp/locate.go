package ucp

import (
	"bytes"
	"encoding/binary"
)

// Locate scans buf for container signature candidates and returns the
// offset and slice of the candidate declaring the largest size.
// Decoys, truncated copies and nested duplicates can all match the
// signature; the largest self-declared size is the one the format's
// own tools treat as authoritative. A declared size running past the
// end of buf is clamped there. When no candidate is found the returned
// offset is zero and the slice is nil.
func Locate(buf []byte) (int, []byte) {
	var (
		bestOff  int
		bestSize uint32
		best     []byte
	)

	for _, off := range containerCandidates(buf) {
		size := binary.LittleEndian.Uint32(buf[off+4 : off+8])
		if size <= bestSize {
			continue
		}
		end := off + int(size)
		if int(size) < 0 || end < off || end > len(buf) {
			end = len(buf)
		}
		bestOff = off
		bestSize = size
		best = buf[off:end]
	}

	return bestOff, best
}

// containerCandidates returns every offset holding a plausible
// container start: the @UAF or @HPU signature tag, twelve further
// header bytes, then the '@' that begins the first chained module's
// tag. The scan is byte-wise; the header bytes in between are
// arbitrary binary, never text.
func containerCandidates(buf []byte) []int {
	var offs []int
	for i := 0; i < len(buf); i++ {
		j := bytes.IndexByte(buf[i:], signatureByte)
		if j < 0 {
			break
		}
		i += j
		if i+moduleHeaderLen >= len(buf) {
			break
		}
		tag := string(buf[i : i+4])
		if (tag == TagContainer || tag == TagContainerHP) && buf[i+moduleHeaderLen] == signatureByte {
			offs = append(offs, i)
		}
	}
	return offs
}

// Intel (Management) Engine firmware manifest header: the 0x04 marker
// word, the 0xA1 or 0xE1 manifest type word, eight free bytes, then
// the 0x8086 vendor ID.
const intelEngLen = 18

// IsIntelEngine reports whether data looks like an Intel Engine
// firmware image. Byte-wise scan; detection is advisory only, the
// image itself is never decoded here.
func IsIntelEngine(data []byte) bool {
	for i := 0; i+intelEngLen <= len(data); i++ {
		if data[i] != 0x04 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 0 {
			continue
		}
		if b := data[i+4]; b != 0xA1 && b != 0xE1 {
			continue
		}
		if data[i+5] != 0 || data[i+6] != 0 || data[i+7] != 0 {
			continue
		}
		if data[i+16] == 0x86 && data[i+17] == 0x80 {
			return true
		}
	}
	return false
}
