//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 message digest algorithm as defined
// in RFC 1321.
//
// The digest is computed in four stages: Pad appends the marker bit,
// zero fill, and bit length; Split decodes the padded message into
// blocks of sixteen little-endian words; Compress folds each block
// into the chaining state; and Encode renders the final state as
// lowercase hexadecimal. Each stage is exported so it can be tested
// and inspected on its own.
//
// MD5 is cryptographically broken and must not be used for secure
// applications.
package md5

import (
	"fmt"
	"unicode/utf8"
)

// EncodingError is returned by DigestString when the input text is
// not valid UTF-8.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("md5: invalid UTF-8 encoding at byte offset %d",
		e.Offset)
}

// BlockTracer receives the intermediate values of a digest
// computation.
type BlockTracer interface {
	// Block is called before compressing block idx with the input
	// chaining state.
	Block(idx int, m *Block, in State)

	// Step is called after each compression step of block idx.
	Step(idx, step int, regs State)

	// Chain is called with the output chaining state of block idx.
	Chain(idx int, out State)
}

// Sum returns the MD5 checksum of the message.
func Sum(message []byte) [Size]byte {
	return SumTrace(message, nil)
}

// SumTrace is like Sum but reports every block, compression step, and
// chaining value to trace. The trace may be nil.
func SumTrace(message []byte, trace BlockTracer) [Size]byte {
	state := Init

	for idx, block := range Split(Pad(message)) {
		if trace == nil {
			state = Compress(state, &block)
			continue
		}
		trace.Block(idx, &block, state)
		state = CompressTrace(state, &block, func(step int, regs State) {
			trace.Step(idx, step, regs)
		})
		trace.Chain(idx, state)
	}
	return state.Bytes()
}

// Digest returns the MD5 checksum of the message as 32 lowercase
// hexadecimal characters.
func Digest(message []byte) string {
	state := Init
	for _, block := range Split(Pad(message)) {
		state = Compress(state, &block)
	}
	return Encode(state)
}

// DigestString returns the MD5 checksum of the UTF-8 encoding of
// text. Malformed UTF-8 is reported as *EncodingError; it is never
// replaced with substitution characters.
func DigestString(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", &EncodingError{
			Offset: invalidOffset(text),
		}
	}
	return Digest([]byte(text)), nil
}

func invalidOffset(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(text)
}
