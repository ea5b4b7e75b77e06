// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwzip compresses or expands files using the bwzip archive
// format.
//
// Usage:
//
//	bwzip [-d] [-v] file...
//
// By default, bwzip compresses each named file, writing file+".burrows" and
// leaving the original in place. With -d, it instead expands each named
// file, stripping the ".burrows" suffix to form the output name; a file
// whose name does not end in ".burrows" is reported as an error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/SpyrosDellas/bwzip"
	"github.com/dsnet/golib/strconv"
)

const archiveSuffix = ".burrows"

var (
	decompress = flag.Bool("d", false, "expand files instead of compressing them")
	verbose    = flag.Bool("v", false, "log size and ratio diagnostics")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bwzip: ")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: bwzip [-d] [-v] file...")
		os.Exit(2)
	}

	os.Exit(runAll(flag.Args(), *decompress))
}

// runAll processes every path concurrently, one goroutine per file,
// bounded by a semaphore sized to runtime.GOMAXPROCS(0) so a large batch
// of files can't spawn more concurrent compress/expand calls than the
// host has cores for. It returns the process exit status.
func runAll(paths []string, decompressAll bool) int {
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	var mu sync.Mutex
	status := 0

	for _, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			var err error
			if decompressAll {
				err = expandFile(path)
			} else {
				err = compressFile(path)
			}
			if err != nil {
				log.Print(err)
				mu.Lock()
				status = 1
				mu.Unlock()
			}
		}(path)
	}
	wg.Wait()
	return status
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + archiveSuffix)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := bwzip.Compress(in, out); err != nil {
		return err
	}
	if *verbose {
		logRatio(path, path+archiveSuffix)
	}
	return nil
}

func expandFile(path string) error {
	if len(path) <= len(archiveSuffix) || path[len(path)-len(archiveSuffix):] != archiveSuffix {
		return fmt.Errorf("%s: name does not end in %s", path, archiveSuffix)
	}
	outPath := path[:len(path)-len(archiveSuffix)]

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := bwzip.Expand(in, out); err != nil {
		return err
	}
	if *verbose {
		logRatio(outPath, path)
	}
	return nil
}

func logRatio(origPath, archivePath string) {
	origInfo, err1 := os.Stat(origPath)
	archInfo, err2 := os.Stat(archivePath)
	if err1 != nil || err2 != nil {
		return
	}
	orig, arch := origInfo.Size(), archInfo.Size()
	var ratio float64
	if arch > 0 {
		ratio = float64(orig) / float64(arch)
	}
	log.Printf("%s: %s -> %s (%.2fx)",
		origPath,
		strconv.FormatPrefix(float64(orig), strconv.Base1024, 2),
		strconv.FormatPrefix(float64(arch), strconv.Base1024, 2),
		ratio)
}
