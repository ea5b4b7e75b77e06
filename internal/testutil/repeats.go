// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// GenRepeats returns a deterministic corpus of size bytes that mixes
// random filler with long-distance copies of earlier data, seeded by
// seed. The repeated runs give the Burrows-Wheeler transform long runs
// of matching context to sort together, while the random filler keeps
// move-to-front and Huffman coding from degenerating to a trivial case.
func GenRepeats(seed int, size int) []byte {
	r := NewRand(seed)
	var b []byte

	randLen := func() int {
		switch p := r.Intn(100); {
		case p < 15:
			return 4 + r.Intn(4)
		case p < 30:
			return 8 + r.Intn(8)
		case p < 45:
			return 16 + r.Intn(16)
		case p < 60:
			return 32 + r.Intn(32)
		case p < 75:
			return 64 + r.Intn(64)
		case p < 90:
			return 128 + r.Intn(128)
		default:
			return 256 + r.Intn(256)
		}
	}

	randDist := func() int {
		for {
			var d int
			switch p := r.Intn(100); {
			case p < 10:
				d = 1
			case p < 20:
				d = 2 + r.Intn(2)
			case p < 30:
				d = 4 + r.Intn(4)
			case p < 40:
				d = 8 + r.Intn(8)
			case p < 50:
				d = 16 + r.Intn(16)
			case p < 55:
				d = 32 + r.Intn(32)
			case p < 60:
				d = 64 + r.Intn(64)
			case p < 65:
				d = 128 + r.Intn(128)
			case p < 70:
				d = 256 + r.Intn(256)
			case p < 75:
				d = 512 + r.Intn(512)
			case p < 80:
				d = 1024 + r.Intn(1024)
			case p < 85:
				d = 2048 + r.Intn(2048)
			case p < 90:
				d = 4096 + r.Intn(4096)
			case p < 95:
				d = 8192 + r.Intn(8192)
			default:
				d = 16384 + r.Intn(16384)
			}
			if d > 0 && d <= len(b) {
				return d
			}
		}
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}

	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < size {
		switch p := r.Intn(100); {
		case p < 10:
			writeRand(randLen())
		case p < 90:
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			writeCopy(randDist(), randLen())
		}
	}
	return b[:size]
}
