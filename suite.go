//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package md5py

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sdatko/MD5Py/utils"
)

var (
	reWhitespace = regexp.MustCompilePOSIX(`[[:space:]]+`)
	reDigest     = regexp.MustCompilePOSIX(`^[0-9a-f]{32}$`)
)

// Suite contains test vectors read from a test suite file.
type Suite struct {
	Source  string
	Heavy   bool
	Vectors []Vector
}

// ParseSuiteFile parses the named test suite file.
func ParseSuiteFile(file string) (*Suite, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseSuite(file, f)
}

// ParseSuite parses test vectors from the input. Each line holds one
// annotation:
//
//	@Test "text" = digest
//	@Bytes hex = digest
//	@Repeat count "text" = digest
//	@heavy
//
// Text arguments are Go string literals. Empty lines and lines
// starting with '#' are ignored. The @heavy annotation marks the
// whole suite as expensive.
func ParseSuite(source string, in io.Reader) (*Suite, error) {
	suite := &Suite{
		Source: source,
	}
	loc := utils.Point{
		Source: source,
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		loc.Line++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if line == "@heavy" {
			suite.Heavy = true
			continue
		}
		v, err := parseVector(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", loc, err)
		}
		suite.Vectors = append(suite.Vectors, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return suite, nil
}

func parseVector(line string) (Vector, error) {
	var v Vector

	parts := reWhitespace.Split(line, 2)
	if len(parts) != 2 {
		return v, fmt.Errorf("invalid annotation '%s'", line)
	}
	ann, rest := parts[0], parts[1]

	idx := strings.LastIndexByte(rest, '=')
	if idx < 0 {
		return v, fmt.Errorf("%s: missing '= digest'", ann)
	}
	arg := strings.TrimSpace(rest[:idx])
	v.Digest = strings.TrimSpace(rest[idx+1:])
	if !reDigest.MatchString(v.Digest) {
		return v, fmt.Errorf("%s: invalid digest '%s'", ann, v.Digest)
	}

	switch ann {
	case "@Test":
		s, err := strconv.Unquote(arg)
		if err != nil {
			return v, fmt.Errorf("%s: invalid string %s: %w", ann, arg, err)
		}
		v.Name = arg
		v.Input = []byte(s)

	case "@Bytes":
		data, err := hex.DecodeString(arg)
		if err != nil {
			return v, fmt.Errorf("%s: %w", ann, err)
		}
		v.Name = "0x" + arg
		v.Input = data

	case "@Repeat":
		args := reWhitespace.Split(arg, 2)
		if len(args) != 2 {
			return v, fmt.Errorf("%s: expected count and string", ann)
		}
		count, err := strconv.Atoi(args[0])
		if err != nil || count < 0 {
			return v, fmt.Errorf("%s: invalid count '%s'", ann, args[0])
		}
		s, err := strconv.Unquote(args[1])
		if err != nil {
			return v, fmt.Errorf("%s: invalid string %s: %w",
				ann, args[1], err)
		}
		v.Name = fmt.Sprintf("%s×%d", args[1], count)
		v.Input = []byte(strings.Repeat(s, count))

	default:
		return v, fmt.Errorf("unknown annotation '%s'", ann)
	}

	return v, nil
}
