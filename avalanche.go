//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5py

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/sdatko/MD5Py/env"
	"github.com/sdatko/MD5Py/md5"
)

// AvalancheStats describes how many digest bits changed when a single
// input bit was flipped.
type AvalancheStats struct {
	Samples   int
	Min       int
	Max       int
	Total     int
	Unchanged int
}

// Mean returns the average number of changed digest bits.
func (s *AvalancheStats) Mean() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Samples)
}

func (s *AvalancheStats) String() string {
	return fmt.Sprintf("samples=%d min=%d mean=%.2f max=%d unchanged=%d",
		s.Samples, s.Min, s.Mean(), s.Max, s.Unchanged)
}

// Avalanche digests samples random inputs of size bytes, flips one
// random bit of each input, and counts the digest bits that changed.
// The randomness comes from config.
func Avalanche(config *env.Config, samples, size int) (
	*AvalancheStats, error) {

	if samples <= 0 || size <= 0 {
		return nil, errors.New("avalanche: samples and size must be positive")
	}
	rand, err := config.GetRandom()
	if err != nil {
		return nil, err
	}

	stats := &AvalancheStats{
		Min: md5.Size * 8,
	}
	input := make([]byte, size)
	var pick [8]byte

	for i := 0; i < samples; i++ {
		if _, err := io.ReadFull(rand, input); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(rand, pick[:]); err != nil {
			return nil, err
		}
		bit := binary.LittleEndian.Uint64(pick[:]) % uint64(size*8)

		before := md5.Sum(input)
		input[bit/8] ^= 1 << (bit % 8)
		after := md5.Sum(input)

		var changed int
		for j := range before {
			changed += bits.OnesCount8(before[j] ^ after[j])
		}
		if changed == 0 {
			stats.Unchanged++
		}
		if changed < stats.Min {
			stats.Min = changed
		}
		if changed > stats.Max {
			stats.Max = changed
		}
		stats.Total += changed
		stats.Samples++
	}
	return stats, nil
}
