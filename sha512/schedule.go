//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha512

import (
	"encoding/binary"
	"fmt"
)

// Schedule holds the message schedule W0..W79 of one block.
type Schedule [80]uint64

// Expand parses the BlockSize bytes long block into sixteen
// big-endian words and expands them into the 80-word message
// schedule. Expand panics if the block length is not BlockSize.
func Expand(block []byte) Schedule {
	if len(block) != BlockSize {
		panic(fmt.Sprintf("sha512: invalid block length %d", len(block)))
	}
	var w Schedule

	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint64(block[t*8:])
	}
	for t := 16; t < len(w); t++ {
		w[t] = w[t-16] + smallSigma0(w[t-15]) + w[t-7] + smallSigma1(w[t-2])
	}

	return w
}

func smallSigma0(x uint64) uint64 {
	return rotr(x, 1) ^ rotr(x, 8) ^ shr(x, 7)
}

func smallSigma1(x uint64) uint64 {
	return rotr(x, 19) ^ rotr(x, 61) ^ shr(x, 6)
}
