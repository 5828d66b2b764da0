//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha512 implements the SHA-512 hash algorithm as defined in
// FIPS PUB 180-4. The implementation is a straight pipeline over a
// complete message: Pad, Expand each block into its message schedule,
// Compress the schedule into the hash state, and Serialize the final
// state into the digest.
//
// All functions are pure and safe for concurrent use.
package sha512

import (
	"encoding/binary"
	"fmt"
)

// State holds the eight 64-bit hash words H0..H7.
type State [8]uint64

// InitialState returns the initial hash value H0..H7.
func InitialState() State {
	return initial
}

// Sum returns the SHA-512 checksum of the data.
func Sum(data []byte) [Size]byte {
	padded := Pad(data)
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha512: invalid padded length %d", len(padded)))
	}

	state := initial
	var w Schedule
	for len(padded) > 0 {
		w = Expand(padded[:BlockSize])
		state = Compress(state, &w)
		padded = padded[BlockSize:]
	}

	return Serialize(state)
}

// Serialize returns the big-endian encoding of the hash words H0..H7.
func Serialize(state State) [Size]byte {
	var digest [Size]byte
	for i, h := range state {
		binary.BigEndian.PutUint64(digest[i*8:], h)
	}
	return digest
}

// Blocks returns the number of blocks in the padded message.
func Blocks(padded []byte) int {
	return len(padded) / BlockSize
}
