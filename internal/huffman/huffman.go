// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a static Huffman code over a single block of
// bytes: a frequency-ordered binary trie, serialized as a preorder bit
// sequence, followed by the coded data itself.
package huffman

import (
	"container/heap"

	"github.com/SpyrosDellas/bwzip/internal/bitio"
)

type node struct {
	freq        int
	sym         byte
	isLeaf      bool
	left, right *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].freq < h[j].freq }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildTrie constructs the minimum-weight binary trie over the symbols
// with non-zero frequency. It returns nil if no symbol occurs at all.
func buildTrie(freq [256]int) *node {
	h := make(nodeHeap, 0, 256)
	for sym, f := range freq {
		if f > 0 {
			h = append(h, &node{freq: f, sym: byte(sym), isLeaf: true})
		}
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{freq: a.freq + b.freq, left: a, right: b})
	}
	if h.Len() == 0 {
		return nil
	}
	return h[0]
}

// buildCodes walks the trie and records the bit sequence leading to each
// leaf. A single-leaf trie (one distinct symbol in the whole block) maps
// that symbol to the empty code.
func buildCodes(root *node) (table [256][]byte) {
	if root == nil {
		return table
	}
	if root.isLeaf {
		table[root.sym] = []byte{}
		return table
	}
	var walk func(n *node, prefix []byte)
	walk = func(n *node, prefix []byte) {
		if n.isLeaf {
			code := make([]byte, len(prefix))
			copy(code, prefix)
			table[n.sym] = code
			return
		}
		walk(n.left, append(prefix, 0))
		walk(n.right, append(prefix, 1))
	}
	walk(root, nil)
	return table
}

func writeTrie(w *bitio.Writer, n *node) error {
	if n.isLeaf {
		if err := w.WriteBit(1); err != nil {
			return err
		}
		return w.WriteByte(n.sym)
	}
	if err := w.WriteBit(0); err != nil {
		return err
	}
	if err := writeTrie(w, n.left); err != nil {
		return err
	}
	return writeTrie(w, n.right)
}

// trieReadError lets readTrie abort a deep recursive descent with a
// single panic rather than threading an error return through every
// recursive call.
type trieReadError struct{ err error }

func mustReadBit(r *bitio.Reader) byte {
	b, err := r.ReadBit()
	if err != nil {
		panic(trieReadError{err})
	}
	return b
}

func mustReadByte(r *bitio.Reader) byte {
	b, err := r.ReadByte()
	if err != nil {
		panic(trieReadError{err})
	}
	return b
}

func readTrie(r *bitio.Reader) *node {
	if mustReadBit(r) == 1 {
		return &node{isLeaf: true, sym: mustReadByte(r)}
	}
	left := readTrie(r)
	right := readTrie(r)
	return &node{left: left, right: right}
}

// Compress Huffman-encodes data onto w: the serialized trie, the
// big-endian length of data, then one code per input byte, in order. An
// empty data writes nothing at all.
func Compress(data []byte, w *bitio.Writer) error {
	if len(data) == 0 {
		return nil
	}
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	root := buildTrie(freq)

	if err := writeTrie(w, root); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(len(data))); err != nil {
		return err
	}
	table := buildCodes(root)
	for _, b := range data {
		for _, bit := range table[b] {
			if err := w.WriteBit(bit); err != nil {
				return err
			}
		}
	}
	return nil
}

// Expand is the inverse of Compress. Callers must not invoke it on a
// source onto which Compress wrote nothing; the caller's own framing is
// expected to already distinguish that empty case.
func Expand(r *bitio.Reader) (data []byte, err error) {
	defer func() {
		if e := recover(); e != nil {
			if tre, ok := e.(trieReadError); ok {
				err = tre.err
				return
			}
			panic(e)
		}
	}()

	root := readTrie(r)
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	if root.isLeaf {
		for i := range out {
			out[i] = root.sym
		}
		return out, nil
	}
	for i := range out {
		cur := root
		for !cur.isLeaf {
			if mustReadBit(r) == 0 {
				cur = cur.left
			} else {
				cur = cur.right
			}
		}
		out[i] = cur.sym
	}
	return out, nil
}
