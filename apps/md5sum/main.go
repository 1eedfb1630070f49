//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	md5py "github.com/sdatko/MD5Py"
	"github.com/sdatko/MD5Py/env"
	"github.com/sdatko/MD5Py/md5"
	"github.com/sdatko/MD5Py/utils"
)

const stdinName = "-"

func main() {
	text := flag.String("s", "", "Digest the UTF-8 encoding of the string")
	check := flag.Bool("c", false, "Verify digests from checksum lists")
	test := flag.Bool("t", false, "Run known-answer tests (args are suite files)")
	trace := flag.Bool("x", false, "Print compression trace")
	avalanche := flag.Int("a", 0, "Run avalanche check with `N` samples")
	avalancheSize := flag.Int("asize", 64, "Avalanche input size in bytes")
	seed := flag.String("seed", "", "Seed for reproducible avalanche inputs")
	timing := flag.Bool("timing", false, "Print stage timing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	log.SetFlags(0)

	config := &env.Config{
		Verbose: *verbose,
	}
	if len(*seed) > 0 {
		config.Seed = []byte(*seed)
	}
	logger := utils.NewLogger(os.Stderr, config.Verbose)

	var err error
	switch {
	case *test:
		err = runTests(flag.Args())

	case *avalanche > 0:
		err = runAvalanche(config, *avalanche, *avalancheSize)

	case *check:
		err = checkLists(logger, flag.Args())

	case isSet("s"):
		err = digestString(*text, *trace)

	default:
		err = digestFiles(logger, flag.Args(), *trace, *timing)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func isSet(name string) bool {
	var found bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func runTests(files []string) error {
	var vectors []md5py.Vector
	if len(files) == 0 {
		vectors = append(vectors, md5py.RFC1321...)
		vectors = append(vectors, md5py.Boundary...)
	}
	for _, file := range files {
		suite, err := md5py.ParseSuiteFile(file)
		if err != nil {
			return err
		}
		vectors = append(vectors, suite.Vectors...)
	}
	failed := md5py.PrintResults(os.Stdout, md5py.Check(vectors))
	if failed > 0 {
		return fmt.Errorf("%d test(s) failed", failed)
	}
	return nil
}

func runAvalanche(config *env.Config, samples, size int) error {
	stats, err := md5py.Avalanche(config, samples, size)
	if err != nil {
		return err
	}
	fmt.Println(stats)
	if stats.Unchanged > 0 {
		return errors.New("single bit flips left digests unchanged")
	}
	return nil
}

func digestString(text string, trace bool) error {
	digest, err := md5.DigestString(text)
	if err != nil {
		return stringError(err)
	}
	if trace {
		printTrace(os.Stdout, []byte(text))
	}
	fmt.Printf("%s  %q\n", digest, text)
	return nil
}

func stringError(err error) error {
	var encErr *md5.EncodingError
	if errors.As(err, &encErr) {
		return fmt.Errorf("%s: %w", utils.Point{
			Source: "-s",
			Line:   1,
			Col:    encErr.Offset,
		}, err)
	}
	return err
}

func digestFiles(logger *utils.Logger, files []string, trace,
	timing bool) error {

	if len(files) == 0 {
		files = []string{stdinName}
	}
	t := md5py.NewTiming()
	var processed md5py.FileSize

	for _, file := range files {
		data, err := readInput(file)
		if err != nil {
			return err
		}
		logger.Infof("%s: %s", file, md5py.FileSize(len(data)))

		var digest string
		if timing {
			digest = md5py.Profile(t, data)
			processed += md5py.FileSize(len(data))
		} else {
			digest = md5.Digest(data)
		}
		if trace {
			printTrace(os.Stdout, data)
		}
		fmt.Printf("%s  %s\n", digest, file)
	}
	if timing {
		t.Print(os.Stdout, processed)
	}
	return nil
}

func readInput(file string) ([]byte, error) {
	if file == stdinName {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
