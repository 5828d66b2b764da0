//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha512

import (
	"math/bits"
)

// Compress runs the 80 SHA-512 rounds over the message schedule w and
// returns the next hash state. The arguments are not modified.
func Compress(state State, w *Schedule) State {
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3],
		state[4], state[5], state[6], state[7]

	for t := 0; t < len(w); t++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + _K[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h

	return state
}

func rotr(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

func shr(x uint64, n uint) uint64 {
	return x >> n
}

func ch(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func maj(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func bigSigma0(x uint64) uint64 {
	return rotr(x, 28) ^ rotr(x, 34) ^ rotr(x, 39)
}

func bigSigma1(x uint64) uint64 {
	return rotr(x, 14) ^ rotr(x, 18) ^ rotr(x, 41)
}
