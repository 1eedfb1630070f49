//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
	"encoding/hex"
)

// Bytes serializes the state registers A, B, C, D in this order, each
// as four little-endian bytes.
func (s State) Bytes() [Size]byte {
	var digest [Size]byte

	binary.LittleEndian.PutUint32(digest[0:], s[0])
	binary.LittleEndian.PutUint32(digest[4:], s[1])
	binary.LittleEndian.PutUint32(digest[8:], s[2])
	binary.LittleEndian.PutUint32(digest[12:], s[3])

	return digest
}

// Encode renders the state as 32 lowercase hexadecimal characters.
func Encode(s State) string {
	digest := s.Bytes()
	return hex.EncodeToString(digest[:])
}

func (s State) String() string {
	return Encode(s)
}
