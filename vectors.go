//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package md5py implements self tests and reports for the MD5 digest
// implementation.
package md5py

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/markkurossi/tabulate"

	"github.com/sdatko/MD5Py/md5"
)

// Vector defines a known-answer test vector.
type Vector struct {
	Name   string
	Input  []byte
	Digest string
}

// RFC1321 contains the test suite of RFC 1321 appendix A.5.
var RFC1321 = []Vector{
	text("", "d41d8cd98f00b204e9800998ecf8427e"),
	text("a", "0cc175b9c0f1b6a831c399e269772661"),
	text("abc", "900150983cd24fb0d6963f7d28e17f72"),
	text("message digest", "f96b697d7cb7938d525a2f31aaf161d0"),
	text("abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"),
	text("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		"d174ab98d277d9f5a5611c2c9f419d9f"),
	text(strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"),
}

// Boundary contains vectors whose lengths are at the padding block
// boundaries.
var Boundary = []Vector{
	repeat(55, "ef1772b6dff9a122358552954ad0df65"),
	repeat(56, "3b0c8ac703f828b04c6c197006d17218"),
	repeat(57, "652b906d60af96844ebd21b674f35e93"),
	repeat(63, "b06521f39153d618550606be297466d5"),
	repeat(64, "014842d480b571495a4a0363793f7367"),
	repeat(65, "c743a45e0d2e6a95cb859adae0248435"),
	repeat(119, "8a7bd0732ed6a28ce75f6dabc90e1613"),
	repeat(120, "5f61c0ccad4cac44c75ff505e1f1e537"),
	repeat(128, "e510683b3f5ffe4093d021808bc6ff70"),
}

func text(input, digest string) Vector {
	return Vector{
		Name:   fmt.Sprintf("%q", input),
		Input:  []byte(input),
		Digest: digest,
	}
}

func repeat(n int, digest string) Vector {
	return Vector{
		Name:   fmt.Sprintf("\"a\"×%d", n),
		Input:  []byte(strings.Repeat("a", n)),
		Digest: digest,
	}
}

// Result holds the outcome of one known-answer test.
type Result struct {
	Vector Vector
	Got    string
}

// OK tests if the computed digest matched the expected one.
func (r Result) OK() bool {
	return r.Got == r.Vector.Digest
}

// Check computes the digests of the test vectors.
func Check(vectors []Vector) []Result {
	var results []Result
	for _, v := range vectors {
		results = append(results, Result{
			Vector: v,
			Got:    md5.Digest(v.Input),
		})
	}
	return results
}

// PrintResults prints the test results as a table and returns the
// number of failed tests.
func PrintResults(o io.Writer, results []Result) int {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Len").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.ML)

	var failed int
	for _, r := range results {
		row := tab.Row()
		row.Column(Printable(r.Vector.Name, 40))
		row.Column(fmt.Sprintf("%d", len(r.Vector.Input)))
		row.Column(r.Got)
		if r.OK() {
			row.Column("ok")
		} else {
			failed++
			row.Column("expected " + r.Vector.Digest).SetFormat(tabulate.FmtBold)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", len(results))).SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column(fmt.Sprintf("%d failed", failed)).SetFormat(tabulate.FmtBold)

	tab.Print(o)
	return failed
}

// Printable escapes non-printable runes of the string and truncates
// it to limit runes. Zero limit disables truncation.
func Printable(s string, limit int) string {
	var result []rune
	for _, r := range s {
		if unicode.IsPrint(r) {
			result = append(result, r)
		} else {
			result = append(result, []rune(fmt.Sprintf("\\u%04x", r))...)
		}
	}
	if limit > 0 && len(result) > limit {
		result = append(result[:limit-1], '…')
	}
	return string(result)
}
