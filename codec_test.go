// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

import (
	"bytes"
	"testing"

	"github.com/SpyrosDellas/bwzip/internal/testutil"
)

func roundTripCodec(t *testing.T, data []byte) {
	t.Helper()
	var archive bytes.Buffer
	if err := Compress(bytes.NewReader(data), &archive); err != nil {
		t.Fatalf("Compress(%q) = %v, want nil", data, err)
	}
	var out bytes.Buffer
	if err := Expand(bytes.NewReader(archive.Bytes()), &out); err != nil {
		t.Fatalf("Expand(%q) = %v, want nil", data, err)
	}
	if !bytes.Equal(out.Bytes(), data) {
		t.Errorf("round trip mismatch: got %q, want %q", out.Bytes(), data)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	vectors := []string{
		"",
		"\x00",
		"a",
		"aaaa",
		"abracadabra!",
		"banana",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, v := range vectors {
		roundTripCodec(t, []byte(v))
	}
}

func TestCodecEmpty(t *testing.T) {
	var archive bytes.Buffer
	if err := Compress(bytes.NewReader(nil), &archive); err != nil {
		t.Fatalf("Compress(nil) = %v, want nil", err)
	}
	if archive.Len() != 0 {
		t.Errorf("Compress(nil) produced %d bytes, want 0", archive.Len())
	}
	var out bytes.Buffer
	if err := Expand(bytes.NewReader(nil), &out); err != nil {
		t.Fatalf("Expand(empty archive) = %v, want nil", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expand(empty archive) produced %d bytes, want 0", out.Len())
	}
}

func TestCodecRandom10KiB(t *testing.T) {
	buf := testutil.NewRand(42).Bytes(10 * 1024)
	roundTripCodec(t, buf)
}

func TestCodecRecursionForcing(t *testing.T) {
	buf := make([]byte, 1024)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 'a'
		} else {
			buf[i] = 'b'
		}
	}
	roundTripCodec(t, buf)
}

func TestCodecCorruptArchive(t *testing.T) {
	var archive bytes.Buffer
	if err := Compress(bytes.NewReader([]byte("abracadabra!")), &archive); err != nil {
		t.Fatal(err)
	}
	truncated := archive.Bytes()
	if len(truncated) > 2 {
		truncated = truncated[:len(truncated)-2]
	}
	var out bytes.Buffer
	// A truncated archive must not panic the decoder; it may return an
	// error or, since there is no integrity check, silently produce the
	// wrong bytes.
	_ = Expand(bytes.NewReader(truncated), &out)
}
