// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwzip implements a lossless byte-stream compressor built from
// the classical Burrows-Wheeler pipeline: SA-IS suffix array
// construction, the Burrows-Wheeler transform, move-to-front coding, and
// a block-static Huffman code over a bit-oriented stream.
//
// The entire input is treated as a single block; there is no streaming
// or adaptive coding, and the archive format carries no integrity check.
// A truncated or corrupted archive may silently decompress to the wrong
// output rather than report an error.
package bwzip

// Error is the type of all errors produced by this package.
type Error string

func (e Error) Error() string { return "bwzip: " + string(e) }

// ErrCorrupt indicates that an archive's framing (its length fields or
// primary index) is self-inconsistent.
var ErrCorrupt error = Error("corrupt archive")

// errRecover is installed as a deferred call in functions that assemble
// or tear down a multi-stage pipeline. It lets a deeply nested helper
// abort the whole pipeline with a single panic instead of threading an
// error return through every call.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
