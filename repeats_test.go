// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwzip

import (
	"bytes"
	"testing"

	"github.com/SpyrosDellas/bwzip/internal/testutil"
)

// repeatsSize is kept well below the 1<<18 default that
// testdata/repeats.go writes to disk, since this runs as part of the
// regular test suite rather than as a one-off fixture generator.
const repeatsSize = 1 << 16

func TestCodecRepeats(t *testing.T) {
	data := testutil.GenRepeats(0, repeatsSize)

	var archive bytes.Buffer
	if err := Compress(bytes.NewReader(data), &archive); err != nil {
		t.Fatalf("Compress() = %v, want nil", err)
	}
	var out bytes.Buffer
	if err := Expand(bytes.NewReader(archive.Bytes()), &out); err != nil {
		t.Fatalf("Expand() = %v, want nil", err)
	}
	if !bytes.Equal(out.Bytes(), data) {
		t.Fatalf("round trip mismatch on repeats corpus")
	}

	const minRatio = 1.5
	ratio := float64(len(data)) / float64(archive.Len())
	if ratio < minRatio {
		t.Errorf("compression ratio = %.2f, want at least %.2f", ratio, minRatio)
	}
}

func BenchmarkCodecCompress(b *testing.B) {
	data := testutil.GenRepeats(0, repeatsSize)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var archive bytes.Buffer
		if err := Compress(bytes.NewReader(data), &archive); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodecExpand(b *testing.B) {
	data := testutil.GenRepeats(0, repeatsSize)
	var archive bytes.Buffer
	if err := Compress(bytes.NewReader(data), &archive); err != nil {
		b.Fatal(err)
	}
	archived := archive.Bytes()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out bytes.Buffer
		if err := Expand(bytes.NewReader(archived), &out); err != nil {
			b.Fatal(err)
		}
	}
}
