// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates repeats.bin, a synthetic corpus of mostly-random bytes
// interspersed with long-distance copies of earlier data. The repeated
// runs give the Burrows-Wheeler transform long runs of matching context
// to sort together, while the random filler keeps move-to-front and
// Huffman coding from degenerating to a trivial case.
//
// The generator itself lives in internal/testutil.GenRepeats, so that
// tests and benchmarks can produce the same corpus in-process without
// reading this file from disk.
package main

import (
	"io/ioutil"

	"github.com/SpyrosDellas/bwzip/internal/testutil"
)

const (
	name = "repeats.bin"
	size = 1 << 18
	seed = 0
)

func main() {
	b := testutil.GenRepeats(seed, size)
	if err := ioutil.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
