//
// check.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sdatko/MD5Py/md5"
	"github.com/sdatko/MD5Py/utils"
)

// CheckStats counts the outcomes of checksum list verification.
type CheckStats struct {
	OK        int
	Failed    int
	Unread    int
	Malformed int
}

// Add adds the counts of o to s.
func (s *CheckStats) Add(o CheckStats) {
	s.OK += o.OK
	s.Failed += o.Failed
	s.Unread += o.Unread
	s.Malformed += o.Malformed
}

// Err returns an error describing the failed checks, or nil if all
// checks passed.
func (s CheckStats) Err() error {
	if s.Failed == 0 && s.Unread == 0 {
		if s.OK == 0 {
			return fmt.Errorf("no properly formatted checksum lines found")
		}
		return nil
	}
	return fmt.Errorf("%d computed checksum(s) did NOT match, %d file(s) could not be read",
		s.Failed, s.Unread)
}

func checkLists(logger *utils.Logger, lists []string) error {
	if len(lists) == 0 {
		lists = []string{stdinName}
	}
	var total CheckStats
	for _, list := range lists {
		stats, err := checkListFile(logger, list)
		if err != nil {
			return err
		}
		logger.Infof("%s: %d ok, %d failed, %d unread, %d malformed",
			list, stats.OK, stats.Failed, stats.Unread, stats.Malformed)
		total.Add(stats)
	}
	return total.Err()
}

func checkListFile(logger *utils.Logger, list string) (CheckStats, error) {
	if list == stdinName {
		return checkList(logger, os.Stdout, list, os.Stdin)
	}
	f, err := os.Open(list)
	if err != nil {
		return CheckStats{}, err
	}
	defer f.Close()

	return checkList(logger, os.Stdout, list, f)
}

// checkList verifies the checksum lines of the list input and reports
// the result of each line to out.
func checkList(logger *utils.Logger, out io.Writer, source string,
	in io.Reader) (CheckStats, error) {

	var stats CheckStats
	loc := utils.Point{
		Source: source,
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		loc.Line++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		digest, name, ok := parseChecksumLine(line)
		if !ok {
			logger.Warningf(loc, "improperly formatted checksum line")
			stats.Malformed++
			continue
		}
		data, err := readInput(name)
		if err != nil {
			logger.Errorf(loc, "%s", err)
			fmt.Fprintf(out, "%s: FAILED open or read\n", name)
			stats.Unread++
			continue
		}
		if md5.Digest(data) == digest {
			fmt.Fprintf(out, "%s: OK\n", name)
			stats.OK++
		} else {
			fmt.Fprintf(out, "%s: FAILED\n", name)
			stats.Failed++
		}
	}
	return stats, scanner.Err()
}

// parseChecksumLine parses a line of the form "digest  name" or
// "digest *name". The digest is returned in lowercase.
func parseChecksumLine(line string) (digest, name string, ok bool) {
	const hexLen = 2 * md5.Size

	if len(line) < hexLen+3 || line[hexLen] != ' ' {
		return "", "", false
	}
	if line[hexLen+1] != ' ' && line[hexLen+1] != '*' {
		return "", "", false
	}
	digest = strings.ToLower(line[:hexLen])
	for _, c := range digest {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return "", "", false
		}
	}
	return digest, line[hexLen+2:], true
}
