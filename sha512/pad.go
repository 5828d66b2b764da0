//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha512

import (
	"encoding/binary"
)

// Pad pads the message to a multiple of BlockSize bytes. It appends
// the bit 1, the minimum number of 0 bits, and the message length in
// bits as a 128-bit big-endian integer. The upper 64 bits of the
// length are always zero so messages are limited to 2^64-1 bits. The
// argument message is not modified.
func Pad(message []byte) []byte {
	length := uint64(len(message)) << 3

	// Number of zero bits k: (L + 1 + k) = 896 (mod 1024).
	k := 896 - int((length+1)%1024)
	if k < 0 {
		k += 1024
	}
	// The first 7 zero bits are in the 0x80 byte.
	zeros := k / 8

	padded := make([]byte, len(message)+1+zeros+lengthSize)
	copy(padded, message)
	padded[len(message)] = 0x80

	// Upper 64 bits of the length stay zero.
	binary.BigEndian.PutUint64(padded[len(padded)-8:], length)

	return padded
}
