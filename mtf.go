// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

// moveToFront implements the move-to-front transform over the full
// 256-byte alphabet. Each encoded value is the rank of the corresponding
// input byte in the current list; after use, that byte is moved to the
// front of the list.
type moveToFront struct {
	list [256]byte
}

func newMoveToFront() *moveToFront {
	m := new(moveToFront)
	m.Reset()
	return m
}

// Reset restores the list to the identity permutation.
func (m *moveToFront) Reset() {
	for i := range m.list {
		m.list[i] = byte(i)
	}
}

// Encode replaces each byte of vals with its rank in the move-to-front
// list, mutating the list as it goes. The result has the same length as
// vals.
func (m *moveToFront) Encode(vals []byte) []byte {
	ranks := make([]byte, len(vals))
	for i, v := range vals {
		var p int
		for m.list[p] != v {
			p++
		}
		ranks[i] = byte(p)
		copy(m.list[1:p+1], m.list[:p])
		m.list[0] = v
	}
	return ranks
}

// Decode is the inverse of Encode: it replaces each rank with the byte it
// names in the move-to-front list at that point, mutating the list as it
// goes.
func (m *moveToFront) Decode(ranks []byte) []byte {
	vals := make([]byte, len(ranks))
	for i, r := range ranks {
		p := int(r)
		v := m.list[p]
		vals[i] = v
		copy(m.list[1:p+1], m.list[:p])
		m.list[0] = v
	}
	return vals
}

// mtfEncode runs the move-to-front transform over buf using a freshly
// reset list.
func mtfEncode(buf []byte) []byte {
	return newMoveToFront().Encode(buf)
}

// mtfDecode is the inverse of mtfEncode.
func mtfDecode(buf []byte) []byte {
	return newMoveToFront().Decode(buf)
}
