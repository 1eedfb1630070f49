//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package md5py

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"

	"github.com/sdatko/MD5Py/md5"
)

// FileSize formats byte counts with decimal unit prefixes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label and data columns.
func (t *Timing) Sample(label string, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the duration from the start to the end of the last
// sample.
func (t *Timing) Total() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start)
}

// Print prints the profiling report to o. The processed argument is
// the number of message bytes digested during the samples.
func (t *Timing) Print(o io.Writer, processed FileSize) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)

	total := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(percent(duration, total))

		for _, col := range sample.Cols {
			row.Column(col)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(processed.String()).SetFormat(tabulate.FmtBold)

	if total > 0 {
		row = tab.Row()
		row.Column("╰╴Rate").SetFormat(tabulate.FmtItalic)
		row.Column("")
		row.Column("")
		row.Column(FileSize(float64(processed)/total.Seconds()).String() + "/s").
			SetFormat(tabulate.FmtItalic)
	}

	tab.Print(o)
}

func percent(part, whole time.Duration) string {
	if whole == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(whole)*100)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Cols  []string
}

// Profile computes the digest of message stage by stage, recording
// a sample for each stage.
func Profile(t *Timing, message []byte) string {
	padded := md5.Pad(message)
	t.Sample("Pad", []string{FileSize(len(padded)).String()})

	blocks := md5.Split(padded)
	t.Sample("Split", []string{fmt.Sprintf("%d blocks", len(blocks))})

	state := md5.Init
	for _, block := range blocks {
		state = md5.Compress(state, &block)
	}
	t.Sample("Compress", []string{FileSize(len(blocks) * md5.BlockSize).String()})

	digest := md5.Encode(state)
	t.Sample("Encode", []string{FileSize(len(digest)).String()})

	return digest
}
