//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha512

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPad(t *testing.T) {
	for _, l := range []int{0, 1, 55, 110, 111, 112, 113, 127, 128, 129,
		239, 240, 1000} {
		msg := bytes.Repeat([]byte{0x5a}, l)
		padded := Pad(msg)

		expected := (l + 1 + lengthSize + BlockSize - 1) / BlockSize *
			BlockSize
		if len(padded) != expected {
			t.Errorf("len=%d: padded length %d, expected %d",
				l, len(padded), expected)
			continue
		}
		if len(padded) == 0 || len(padded)%BlockSize != 0 {
			t.Errorf("len=%d: padded length %d not a block multiple",
				l, len(padded))
		}
		if !bytes.Equal(padded[:l], msg) {
			t.Errorf("len=%d: message not preserved", l)
		}
		if padded[l] != 0x80 {
			t.Errorf("len=%d: separator %02x", l, padded[l])
		}
		for i := l + 1; i < len(padded)-lengthSize; i++ {
			if padded[i] != 0 {
				t.Errorf("len=%d: padding byte %d is %02x", l, i, padded[i])
				break
			}
		}
		hi := binary.BigEndian.Uint64(padded[len(padded)-16:])
		lo := binary.BigEndian.Uint64(padded[len(padded)-8:])
		if hi != 0 || lo != uint64(l)*8 {
			t.Errorf("len=%d: length field %x:%x", l, hi, lo)
		}
	}
}

// TestPadBoundary checks the inputs around the 112 byte boundary
// where the length field no longer fits into the last block.
func TestPadBoundary(t *testing.T) {
	tests := []struct {
		length int
		blocks int
	}{
		{111, 1},
		{112, 2},
		{113, 2},
	}
	for _, test := range tests {
		padded := Pad(make([]byte, test.length))
		if Blocks(padded) != test.blocks {
			t.Errorf("len=%d: %d blocks, expected %d",
				test.length, Blocks(padded), test.blocks)
		}
		if len(padded) < test.length+1+lengthSize {
			t.Errorf("len=%d: padded length %d too short",
				test.length, len(padded))
		}
	}
}

func TestPadNoAlias(t *testing.T) {
	msg := make([]byte, 4, BlockSize)
	Pad(msg)
	if msg[:cap(msg)][4] != 0 {
		t.Fatalf("Pad wrote past the message")
	}
}
