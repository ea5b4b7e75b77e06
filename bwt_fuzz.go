// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package bwzip

// ForwardBWT exports EncodeBWT for fuzz testing.
func ForwardBWT(buf []byte) (last []byte, primary int) {
	return EncodeBWT(buf)
}

// ReverseBWT exports DecodeBWT for fuzz testing.
func ReverseBWT(last []byte, primary int) []byte {
	return DecodeBWT(last, primary)
}

// Fuzz is the entry point used by go-fuzz. It round-trips data through the
// Burrows-Wheeler transform and reports a crash if the result does not
// match the input.
func Fuzz(data []byte) int {
	last, primary := ForwardBWT(data)
	got := ReverseBWT(last, primary)
	if string(got) != string(data) {
		panic("bwzip: BWT round trip mismatch")
	}
	return 1
}
