//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
)

// PadLen returns the number of bytes Pad appends to an n-byte
// message: the 0x80 marker, the zero fill, and the 8-byte length
// field. The result is between 9 and 72.
func PadLen(n uint64) int {
	var t uint64
	if n%BlockSize < lenOffset {
		t = lenOffset - n%BlockSize
	} else {
		t = BlockSize + lenOffset - n%BlockSize
	}
	return int(t) + 8
}

// Pad returns a new buffer holding message followed by the MD5
// padding. The length of the result is a multiple of BlockSize. The
// message length is encoded in bits, little-endian, modulo 2^64.
func Pad(message []byte) []byte {
	length := uint64(len(message))
	n := PadLen(length)

	padded := make([]byte, len(message)+n)
	copy(padded, message)
	padded[len(message)] = 0x80

	// Length in bits.
	binary.LittleEndian.PutUint64(padded[len(padded)-8:], length<<3)

	return padded
}
