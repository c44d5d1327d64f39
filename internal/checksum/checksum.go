// Package checksum implements the 16-bit word sum used by AMI UCP
// containers. A region is considered valid when the sum of all of its
// little-endian 16-bit words, truncated to 16 bits, is zero.
package checksum

import "encoding/binary"

// Sum16 returns the 16-bit little-endian word sum of data. A trailing
// odd byte is summed as-is.
func Sum16(data []byte) uint16 {
	var sum uint32
	for len(data) >= 2 {
		sum += uint32(binary.LittleEndian.Uint16(data))
		data = data[2:]
	}
	if len(data) == 1 {
		sum += uint32(data[0])
	}
	return uint16(sum)
}

// Valid reports whether data carries a correct embedded checksum,
// meaning its word sum reduces to zero.
func Valid(data []byte) bool {
	return Sum16(data) == 0
}

// Fix returns the 16-bit value that, stored in a zeroed checksum field,
// makes the whole region sum to zero. Used by tests to build
// well-formed fixtures; the extractor itself never writes checksums.
func Fix(data []byte) uint16 {
	return uint16(-int32(Sum16(data)))
}
