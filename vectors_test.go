//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5py

import (
	"bytes"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	vectors := append(append([]Vector{}, RFC1321...), Boundary...)
	for _, r := range Check(vectors) {
		if !r.OK() {
			t.Errorf("%s: got %s, expected %s", r.Vector.Name, r.Got, r.Vector.Digest)
		}
	}
}

func TestVectorDigestLength(t *testing.T) {
	for _, v := range append(append([]Vector{}, RFC1321...), Boundary...) {
		if len(v.Digest) != 32 {
			t.Errorf("%s: digest %q has %d characters", v.Name, v.Digest, len(v.Digest))
		}
	}
}

func TestPrintResults(t *testing.T) {
	results := Check(RFC1321[:2])
	results = append(results, Result{
		Vector: Vector{
			Name:   "broken",
			Digest: "00000000000000000000000000000000",
		},
		Got: "d41d8cd98f00b204e9800998ecf8427e",
	})

	var buf bytes.Buffer
	failed := PrintResults(&buf, results)
	if failed != 1 {
		t.Errorf("PrintResults reported %d failures, expected 1", failed)
	}
	out := buf.String()
	for _, s := range []string{
		"0cc175b9c0f1b6a831c399e269772661",
		"expected 00000000000000000000000000000000",
		"1 failed",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q:\n%s", s, out)
		}
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		out   string
	}{
		{"abc", 0, "abc"},
		{"a\x00b", 0, `a\u0000b`},
		{"abcdef", 4, "abc…"},
		{"ab", 4, "ab"},
	}
	for _, test := range tests {
		if out := Printable(test.in, test.limit); out != test.out {
			t.Errorf("Printable(%q, %d) = %q, expected %q",
				test.in, test.limit, out, test.out)
		}
	}
}
