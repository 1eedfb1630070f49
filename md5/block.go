//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
	"fmt"
)

// Block holds the sixteen little-endian message words of one 64-byte
// chunk.
type Block [16]uint32

// Words decodes the first BlockSize bytes of chunk into message
// words.
func Words(chunk []byte) Block {
	var m Block
	_ = chunk[BlockSize-1] // bounds check hint to compiler
	for i := 0; i < len(m); i++ {
		m[i] = binary.LittleEndian.Uint32(chunk[i*4:])
	}
	return m
}

// Split splits the padded message into blocks, preserving their
// order. The length of padded must be a multiple of BlockSize; Pad
// guarantees this.
func Split(padded []byte) []Block {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("md5: padded length %d is not a multiple of %d",
			len(padded), BlockSize))
	}
	blocks := make([]Block, 0, len(padded)/BlockSize)
	for len(padded) >= BlockSize {
		blocks = append(blocks, Words(padded[:BlockSize]))
		padded = padded[BlockSize:]
	}
	return blocks
}
