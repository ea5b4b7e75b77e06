// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais computes suffix arrays using the SA-IS (Suffix Array
// Induced Sorting) algorithm, which runs in O(n) time and works over an
// arbitrary integer alphabet.
package sais

// ComputeSA computes the suffix array of s. The returned array SA has
// length len(s)+1: SA[0] is always len(s), the position of the implicit
// sentinel suffix that sorts before every other suffix, and SA[1:] is a
// permutation of [0, len(s)) giving the remaining suffixes in ascending
// lexicographic order.
func ComputeSA(s []byte) []int32 {
	n := len(s)
	t := make([]int32, n+1)
	for i, b := range s {
		t[i] = int32(b) + 1
	}
	// t[n] is left at zero, the unique minimal symbol.
	return compute(t, 257)
}

// compute returns the suffix array of t, where t is assumed to end with a
// single occurrence of the symbol 0, smaller than every other symbol in
// t. k is the size of the alphabet (the number of distinct symbol values
// that may appear in t, i.e. the exclusive upper bound of t's values).
func compute(t []int32, k int) []int32 {
	n := len(t)
	sa := make([]int32, n)
	if n == 1 {
		return sa // The lone sentinel position; sa[0] == 0 already.
	}

	types := classify(t)
	lms := collectLMS(types)
	counts := getCounts(t, k)

	placeLMS(t, sa, lms, counts)
	induceL(t, sa, types, counts)
	induceS(t, sa, types, counts)

	names, numNames := nameLMS(t, sa, types, lms)

	var order []int32
	if numNames == len(lms) {
		order = make([]int32, len(lms))
		for i, name := range names {
			order[name] = int32(i)
		}
	} else {
		order = compute(names, numNames)
	}

	ordered := make([]int32, len(lms))
	for i, idx := range order {
		ordered[i] = lms[idx]
	}

	placeLMS(t, sa, ordered, counts)
	induceL(t, sa, types, counts)
	induceS(t, sa, types, counts)
	return sa
}

// classify assigns each position in t an S-type (true) or L-type (false)
// designation. Position len(t)-1, the sentinel, is always S-type. Moving
// right to left, a position is S-type if its suffix is lexicographically
// smaller than its successor's, L-type if larger, and shares its
// successor's type when the leading symbols tie.
func classify(t []int32) []bool {
	n := len(t)
	types := make([]bool, n)
	types[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case t[i] < t[i+1]:
			types[i] = true
		case t[i] > t[i+1]:
			types[i] = false
		default:
			types[i] = types[i+1]
		}
	}
	return types
}

// isLMS reports whether position i is a left-most S-type position: an
// S-type position immediately preceded by an L-type position. Position 0
// is never LMS.
func isLMS(types []bool, i int) bool {
	return i > 0 && types[i] && !types[i-1]
}

func collectLMS(types []bool) []int32 {
	var lms []int32
	for i := range types {
		if isLMS(types, i) {
			lms = append(lms, int32(i))
		}
	}
	return lms
}

func getCounts(t []int32, k int) []int32 {
	counts := make([]int32, k)
	for _, v := range t {
		counts[v]++
	}
	return counts
}

// getBucketHeads returns, for each symbol, the index of the first slot in
// a fully-sorted array that that symbol's suffixes occupy.
func getBucketHeads(counts []int32) []int32 {
	heads := make([]int32, len(counts))
	var sum int32
	for c, n := range counts {
		heads[c] = sum
		sum += n
	}
	return heads
}

// getBucketTails returns, for each symbol, the index one past the last
// slot in a fully-sorted array that that symbol's suffixes occupy.
func getBucketTails(counts []int32) []int32 {
	tails := make([]int32, len(counts))
	var sum int32
	for c, n := range counts {
		sum += n
		tails[c] = sum
	}
	return tails
}

// placeLMS resets sa and drops the given LMS positions into the tails of
// their buckets, processed right to left so that positions sharing a
// bucket retain their relative order from positions.
func placeLMS(t []int32, sa []int32, positions []int32, counts []int32) {
	for i := range sa {
		sa[i] = -1
	}
	tails := getBucketTails(counts)
	for i := len(positions) - 1; i >= 0; i-- {
		p := positions[i]
		c := t[p]
		tails[c]--
		sa[tails[c]] = p
	}
}

// induceL scans sa left to right, and for every placed position whose
// predecessor is L-type, drops that predecessor into the next free slot
// at the head of its bucket.
func induceL(t []int32, sa []int32, types []bool, counts []int32) {
	heads := getBucketHeads(counts)
	for i := 0; i < len(sa); i++ {
		p := sa[i]
		if p <= 0 {
			continue
		}
		j := p - 1
		if !types[j] {
			c := t[j]
			sa[heads[c]] = j
			heads[c]++
		}
	}
}

// induceS scans sa right to left, and for every placed position whose
// predecessor is S-type, drops that predecessor into the next free slot
// at the tail of its bucket.
func induceS(t []int32, sa []int32, types []bool, counts []int32) {
	tails := getBucketTails(counts)
	for i := len(sa) - 1; i >= 0; i-- {
		p := sa[i]
		if p <= 0 {
			continue
		}
		j := p - 1
		if types[j] {
			c := t[j]
			tails[c]--
			sa[tails[c]] = j
		}
	}
}

// lmsEqual reports whether the LMS substrings starting at p and q are
// character-wise and type-wise identical from p and q up through their
// next LMS boundary (inclusive of both the start and the boundary).
func lmsEqual(t []int32, types []bool, p, q int32) bool {
	n := int32(len(t))
	if p == n-1 || q == n-1 {
		return p == q
	}
	i, j := p, q
	for {
		pEnd := i != p && isLMS(types, int(i))
		qEnd := j != q && isLMS(types, int(j))
		if pEnd && qEnd {
			return t[i] == t[j]
		}
		if pEnd != qEnd {
			return false
		}
		if t[i] != t[j] || types[i] != types[j] {
			return false
		}
		i++
		j++
	}
}

// nameLMS assigns each distinct LMS substring (in sorted order, as found
// via sa) a successive integer name, and returns those names in the
// original left-to-right order of lms, along with the count of distinct
// names assigned.
func nameLMS(t []int32, sa []int32, types []bool, lms []int32) ([]int32, int) {
	n := len(t)
	namedAt := make([]int32, n)
	for i := range namedAt {
		namedAt[i] = -1
	}

	var name int32 = -1
	var prev int32 = -1
	for _, p := range sa {
		if !isLMS(types, int(p)) {
			continue
		}
		if prev < 0 || !lmsEqual(t, types, prev, p) {
			name++
		}
		namedAt[p] = name
		prev = p
	}

	names := make([]int32, len(lms))
	for i, p := range lms {
		names[i] = namedAt[p]
	}
	return names, int(name + 1)
}
