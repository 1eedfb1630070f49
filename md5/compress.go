//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"fmt"
	"math/bits"
)

// State holds the four chaining registers A, B, C, and D.
type State [4]uint32

// Tracer receives the working registers (a, b, c, d) after each
// compression step.
type Tracer func(step int, regs State)

// Round returns the round group (1-4) of the compression step and the
// index of the message word it consumes.
func Round(step int) (group, g int) {
	switch {
	case step < 0 || step >= Steps:
		panic(fmt.Sprintf("md5: invalid step %d", step))
	case step < 16:
		return 1, step
	case step < 32:
		return 2, (5*step + 1) % 16
	case step < 48:
		return 3, (3*step + 5) % 16
	default:
		return 4, (7 * step) % 16
	}
}

// Compress runs the 64 compression steps over the message block m
// and adds the result to the chaining state s.
func Compress(s State, m *Block) State {
	return CompressTrace(s, m, nil)
}

// CompressTrace is like Compress but reports the working registers
// after every step to trace. The trace may be nil.
func CompressTrace(s State, m *Block, trace Tracer) State {
	a, b, c, d := s[0], s[1], s[2], s[3]

	for i := 0; i < Steps; i++ {
		var f uint32
		var g int

		// Each of the four 16-step rounds differs only in the
		// nonlinear function and the message word schedule.
		switch i >> 4 {
		case 0:
			f = b&c | ^b&d
			g = i
		case 1:
			f = b&d | c&^d
			g = (5*i + 1) & 0xf
		case 2:
			f = b ^ c ^ d
			g = (3*i + 5) & 0xf
		default:
			f = c ^ (b | ^d)
			g = (7 * i) & 0xf
		}

		f += a + sines[i] + m[g]
		a, b, c, d = d, b+bits.RotateLeft32(f, shifts[i]), b, c

		if trace != nil {
			trace(i, State{a, b, c, d})
		}
	}

	return State{s[0] + a, s[1] + b, s[2] + c, s[3] + d}
}
