//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package corpus generates deterministic pseudorandom messages for
// differential testing of hash implementations.
package corpus

import (
	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/sha512ref/sha512"
)

// DefaultLengths lists the message lengths around the padding and
// block boundaries.
var DefaultLengths = []int{0, 1, 55, 111, 112, 113, 128, 1000}

// Generator produces messages from a ChaCha20 keystream.
type Generator struct {
	cipher *chacha20.Cipher
}

// New creates a generator for the seed. Generators with equal seeds
// produce equal message sequences.
func New(seed string) *Generator {
	material := sha512.Sum([]byte(seed))

	c, err := chacha20.NewUnauthenticatedCipher(
		material[:chacha20.KeySize],
		material[chacha20.KeySize:chacha20.KeySize+chacha20.NonceSize])
	if err != nil {
		panic(err)
	}
	return &Generator{
		cipher: c,
	}
}

// Message returns the next n bytes of the keystream.
func (g *Generator) Message(n int) []byte {
	out := make([]byte, n)
	// XOR of zeros gives the keystream.
	g.cipher.XORKeyStream(out, out)
	return out
}

// Corpus returns one message for each length.
func (g *Generator) Corpus(lengths []int) [][]byte {
	result := make([][]byte, 0, len(lengths))
	for _, l := range lengths {
		result = append(result, g.Message(l))
	}
	return result
}
