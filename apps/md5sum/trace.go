//
// trace.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"

	"github.com/sdatko/MD5Py/md5"
)

// tableTracer renders the compression steps of each block as a
// table.
type tableTracer struct {
	out io.Writer
	m   *md5.Block
	tab *tabulate.Tabulate
}

func (t *tableTracer) Block(idx int, m *md5.Block, in md5.State) {
	fmt.Fprintf(t.out, "H%s = %s\n", superscript.Itoa(idx), in)

	t.m = m
	t.tab = tabulate.New(tabulate.UnicodeLight)
	t.tab.Header("Step").SetAlign(tabulate.MR)
	t.tab.Header("Round").SetAlign(tabulate.MR)
	t.tab.Header("g").SetAlign(tabulate.MR)
	t.tab.Header("M[g]").SetAlign(tabulate.MR)
	t.tab.Header("A").SetAlign(tabulate.MR)
	t.tab.Header("B").SetAlign(tabulate.MR)
	t.tab.Header("C").SetAlign(tabulate.MR)
	t.tab.Header("D").SetAlign(tabulate.MR)
}

func (t *tableTracer) Step(idx, step int, regs md5.State) {
	group, g := md5.Round(step)

	row := t.tab.Row()
	row.Column(fmt.Sprintf("%d", step))
	row.Column(fmt.Sprintf("%d", group))
	row.Column(fmt.Sprintf("%d", g))
	row.Column(fmt.Sprintf("%08x", t.m[g]))
	for _, r := range regs {
		row.Column(fmt.Sprintf("%08x", r))
	}
}

func (t *tableTracer) Chain(idx int, out md5.State) {
	t.tab.Print(t.out)
	fmt.Fprintf(t.out, "H%s = %s\n\n", superscript.Itoa(idx+1), out)
}

func printTrace(out io.Writer, data []byte) [md5.Size]byte {
	return md5.SumTrace(data, &tableTracer{
		out: out,
	})
}
