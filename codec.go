// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

import (
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/SpyrosDellas/bwzip/internal/bitio"
	"github.com/SpyrosDellas/bwzip/internal/huffman"
)

// primaryFieldLen is the size, in bytes, of the big-endian primary index
// field prefixed onto the BWT last column before Huffman coding.
const primaryFieldLen = 4

// Compress reads all of r, runs it through the SA-IS/BWT/MTF/Huffman
// pipeline, and writes the resulting archive to w. An empty input
// produces a zero-length archive.
func Compress(r io.Reader, w io.Writer) (err error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	defer errRecover(&err)

	last, primary := EncodeBWT(data)

	payload := make([]byte, primaryFieldLen+len(last))
	binary.BigEndian.PutUint32(payload, uint32(primary))
	copy(payload[primaryFieldLen:], last)

	coded := mtfEncode(payload)

	bw := bitio.NewWriter(w)
	if err := huffman.Compress(coded, bw); err != nil {
		return err
	}
	return bw.Close()
}

// Expand is the inverse of Compress. An empty archive produces no output.
func Expand(r io.Reader, w io.Writer) (err error) {
	br := bitio.NewReader(r)
	if br.IsEmpty() {
		return nil
	}
	defer errRecover(&err)

	coded, herr := huffman.Expand(br)
	if herr != nil {
		if herr == io.EOF || herr == io.ErrUnexpectedEOF {
			return ErrCorrupt
		}
		return herr
	}

	payload := mtfDecode(coded)
	if len(payload) < primaryFieldLen {
		return ErrCorrupt
	}
	primary := int(binary.BigEndian.Uint32(payload))
	last := payload[primaryFieldLen:]
	if primary < 0 || primary >= len(last) {
		return ErrCorrupt
	}

	data := DecodeBWT(last, primary)
	_, err = w.Write(data)
	return err
}
