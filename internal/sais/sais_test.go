// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"sort"
	"testing"

	"github.com/SpyrosDellas/bwzip/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func bruteForceSA(s []byte) []int32 {
	n := len(s)
	idxs := make([]int32, n+1)
	for i := range idxs {
		idxs[i] = int32(i)
	}
	suffix := func(i int32) string {
		if int(i) == n {
			return ""
		}
		return string(s[i:])
	}
	sort.Slice(idxs, func(i, j int) bool {
		return suffix(idxs[i]) < suffix(idxs[j])
	})
	return idxs
}

func TestComputeSA(t *testing.T) {
	vectors := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Single", "\x00"},
		{"AllEqual", "aaaa"},
		{"Abracadabra", "abracadabra!"},
		{"Banana", "banana"},
		{"Mississippi", "mississippi"},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			got := ComputeSA([]byte(v.input))
			want := bruteForceSA([]byte(v.input))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ComputeSA(%q) mismatch (-want +got):\n%s", v.input, diff)
			}
		})
	}
}

func TestComputeSAInvariants(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 16, 256, 1024}
	for _, n := range sizes {
		buf := testutil.NewRand(1).Bytes(n)
		sa := ComputeSA(buf)

		if len(sa) != n+1 {
			t.Fatalf("n=%d: len(SA) = %d, want %d", n, len(sa), n+1)
		}
		if sa[0] != int32(n) {
			t.Errorf("n=%d: SA[0] = %d, want %d", n, sa[0], n)
		}

		seen := make([]bool, n+1)
		for _, p := range sa {
			if p < 0 || int(p) > n || seen[p] {
				t.Fatalf("n=%d: SA is not a permutation of [0,%d]", n, n)
			}
			seen[p] = true
		}

		suffix := func(i int32) string {
			if int(i) == n {
				return ""
			}
			return string(buf[i:])
		}
		for i := 1; i < len(sa); i++ {
			if suffix(sa[i-1]) >= suffix(sa[i]) {
				t.Fatalf("n=%d: SA not sorted at rank %d: %q >= %q", n, i, suffix(sa[i-1]), suffix(sa[i]))
			}
		}
	}
}

// TestComputeSARecursion forces SA-IS to recurse by using a periodic
// string with a small alphabet, so that the first pass of LMS-substring
// naming does not immediately produce unique names.
func TestComputeSARecursion(t *testing.T) {
	buf := make([]byte, 1024)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 'a'
		} else {
			buf[i] = 'b'
		}
	}
	sa := ComputeSA(buf)
	want := bruteForceSA(buf)
	if diff := cmp.Diff(want, sa); diff != "" {
		t.Errorf("ComputeSA(periodic 1024) mismatch (-want +got):\n%s", diff)
	}
}
