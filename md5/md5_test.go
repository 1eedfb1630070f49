//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"bytes"
	stdmd5 "crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
)

var rfc1321Tests = []struct {
	input  string
	digest string
}{
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		"d174ab98d277d9f5a5611c2c9f419d9f",
	},
	{
		"12345678901234567890123456789012345678901234567890123456789012345678901234567890",
		"57edf4a22be3c955ac49da2e2107b67a",
	},
}

func TestRFC1321(t *testing.T) {
	for _, test := range rfc1321Tests {
		result := Digest([]byte(test.input))
		if result != test.digest {
			t.Errorf("Digest(%q) = %s, expected %s",
				test.input, result, test.digest)
		}
		sum := Sum([]byte(test.input))
		if hex.EncodeToString(sum[:]) != test.digest {
			t.Errorf("Sum(%q) = %x, expected %s", test.input, sum, test.digest)
		}
	}
}

var boundaryTests = []struct {
	n      int
	digest string
}{
	{55, "ef1772b6dff9a122358552954ad0df65"},
	{56, "3b0c8ac703f828b04c6c197006d17218"},
	{57, "652b906d60af96844ebd21b674f35e93"},
	{63, "b06521f39153d618550606be297466d5"},
	{64, "014842d480b571495a4a0363793f7367"},
	{65, "c743a45e0d2e6a95cb859adae0248435"},
	{119, "8a7bd0732ed6a28ce75f6dabc90e1613"},
	{120, "5f61c0ccad4cac44c75ff505e1f1e537"},
	{128, "e510683b3f5ffe4093d021808bc6ff70"},
}

func TestBlockBoundaries(t *testing.T) {
	for _, test := range boundaryTests {
		result := Digest([]byte(strings.Repeat("a", test.n)))
		if result != test.digest {
			t.Errorf("%d*a: got %s, expected %s", test.n, result, test.digest)
		}
	}
}

func TestStandardLibrary(t *testing.T) {
	data := make([]byte, 5*BlockSize)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	for n := 0; n <= len(data); n++ {
		sum := Sum(data[:n])
		expected := stdmd5.Sum(data[:n])
		if sum != expected {
			t.Fatalf("n=%d: %x != %x", n, sum, expected)
		}
	}
}

func TestDigestFormat(t *testing.T) {
	for n := 0; n < 200; n += 13 {
		result := Digest(bytes.Repeat([]byte{byte(n)}, n))
		if len(result) != 2*Size {
			t.Fatalf("n=%d: digest length %d", n, len(result))
		}
		for _, r := range result {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("n=%d: invalid digest character %q", n, r)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	first := Digest(msg)
	for i := 0; i < 10; i++ {
		if d := Digest(msg); d != first {
			t.Fatalf("call %d: %s != %s", i, d, first)
		}
	}
	if first != "9e107d9d372bb6826bd81d3542a419d6" {
		t.Errorf("unexpected digest %s", first)
	}
}

func TestAvalancheSmoke(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	base := Sum(msg)

	for i := 0; i < len(msg)*8; i++ {
		flipped := bytes.Clone(msg)
		flipped[i/8] ^= 1 << (i % 8)
		if Sum(flipped) == base {
			t.Errorf("bit %d: digest unchanged", i)
		}
	}
}

func TestConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, test := range rfc1321Tests {
				if d := Digest([]byte(test.input)); d != test.digest {
					t.Errorf("goroutine %d: Digest(%q) = %s", i, test.input, d)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestDigestString(t *testing.T) {
	result, err := DigestString("héllo wörld")
	if err != nil {
		t.Fatal(err)
	}
	if result != "ed0c22cc110ede12327851863c078138" {
		t.Errorf("DigestString = %s", result)
	}

	result, err = DigestString("")
	if err != nil || result != rfc1321Tests[0].digest {
		t.Errorf("DigestString(\"\") = %s, %v", result, err)
	}
}

func TestDigestStringInvalid(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"\xff", 0},
		{"abc\xc3", 3},
		{"hé\xe2\x82", 3},
		{"ok\uFFFD\x80", 5},
	}
	for _, test := range tests {
		result, err := DigestString(test.text)
		if err == nil {
			t.Errorf("DigestString(%q) = %s, expected error", test.text, result)
			continue
		}
		if result != "" {
			t.Errorf("DigestString(%q) returned partial result %q",
				test.text, result)
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("DigestString(%q): unexpected error %T", test.text, err)
			continue
		}
		if encErr.Offset != test.offset {
			t.Errorf("DigestString(%q): offset %d, expected %d",
				test.text, encErr.Offset, test.offset)
		}
	}
}

type recordingTracer struct {
	blocks []State
	steps  []int
	chains []State
}

func (r *recordingTracer) Block(idx int, m *Block, in State) {
	r.blocks = append(r.blocks, in)
	r.steps = append(r.steps, 0)
}

func (r *recordingTracer) Step(idx, step int, regs State) {
	r.steps[idx]++
}

func (r *recordingTracer) Chain(idx int, out State) {
	r.chains = append(r.chains, out)
}

func TestSumTrace(t *testing.T) {
	msg := []byte(strings.Repeat("a", 120))

	var tr recordingTracer
	sum := SumTrace(msg, &tr)
	if sum != Sum(msg) {
		t.Fatalf("SumTrace and Sum disagree")
	}
	if len(tr.blocks) != 3 || len(tr.chains) != 3 {
		t.Fatalf("traced %d blocks, %d chains", len(tr.blocks), len(tr.chains))
	}
	if tr.blocks[0] != Init {
		t.Errorf("first block input %v", tr.blocks[0])
	}
	for i := 1; i < len(tr.blocks); i++ {
		if tr.blocks[i] != tr.chains[i-1] {
			t.Errorf("block %d input does not chain from block %d", i, i-1)
		}
	}
	for i, n := range tr.steps {
		if n != Steps {
			t.Errorf("block %d: %d steps", i, n)
		}
	}
	if tr.chains[2].Bytes() != sum {
		t.Errorf("last chaining value is not the digest")
	}
}

func TestEncode(t *testing.T) {
	s := State{0xd98c1dd4, 0x04b2008f, 0x980980e9, 0x7e42f8ec}
	if Encode(s) != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Encode = %s", Encode(s))
	}
	if s.String() != Encode(s) {
		t.Errorf("String = %s", s.String())
	}
	b := State{0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c}.Bytes()
	for i := range b {
		if b[i] != byte(i) {
			t.Fatalf("Bytes = %x", b)
		}
	}
}
