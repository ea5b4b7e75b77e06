// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

import "github.com/SpyrosDellas/bwzip/internal/sais"

// sentinelByte stands in for the virtual end-of-block marker in the
// returned last column. Input bytes of value 0xFF also appear in L, so the
// sentinel's row is identified by the primary index, not by this value.
const sentinelByte = 0xFF

// EncodeBWT computes the Burrows-Wheeler transform of s. It returns the
// last column L (length len(s)+1) and the primary index locating the row
// that corresponds to the sentinel.
//
// L[primary] carries a placeholder byte with no meaning; decoding uses
// primary, not L's contents, to identify that row.
func EncodeBWT(s []byte) (L []byte, primary int) {
	n := len(s)
	sa := sais.ComputeSA(s)
	L = make([]byte, n+1)
	for i, p := range sa {
		if p == 0 {
			primary = i
			L[i] = sentinelByte
			continue
		}
		L[i] = s[p-1]
	}
	return L, primary
}

// DecodeBWT reconstructs the original block from its last column L and
// primary index, as produced by EncodeBWT.
func DecodeBWT(L []byte, primary int) []byte {
	total := len(L)
	n := total - 1
	if n <= 0 {
		return nil
	}

	var counts [256]int
	for i, b := range L {
		if i == primary {
			continue
		}
		counts[b]++
	}

	var heads [256]int
	sum := 1 // rank 0 is reserved for the sentinel row
	for c := 0; c < 256; c++ {
		heads[c] = sum
		sum += counts[c]
	}

	next := make([]int, total)
	next[0] = primary
	for i, b := range L {
		if i == primary {
			continue
		}
		next[heads[b]] = i
		heads[b]++
	}

	out := make([]byte, n)
	idx := primary
	for k := 0; k < n; k++ {
		idx = next[idx]
		out[k] = L[idx]
	}
	return out
}
