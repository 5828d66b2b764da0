//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package message converts higher level input into the raw bytes
// hashed by the sha512 package and formats the resulting digests.
package message

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"os"
	"unicode/utf8"

	sha "github.com/markkurossi/sha512ref/sha512"
)

// EncodingError is returned when the input text is not valid UTF-8.
type EncodingError struct {
	Offset int
	Byte   byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d",
		e.Byte, e.Offset)
}

// FromString returns the UTF-8 encoding of the string s.
func FromString(s string) ([]byte, error) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &EncodingError{
				Offset: i,
				Byte:   s[i],
			}
		}
		i += size
	}
	return []byte(s), nil
}

// FromFile returns the contents of the file.
func FromFile(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	return data, nil
}

// Hex returns the lowercase hexadecimal encoding of the digest.
func Hex(digest [sha.Size]byte) string {
	return hex.EncodeToString(digest[:])
}

// Comparison holds the digests of a message computed with this
// implementation and with the standard library.
type Comparison struct {
	Digest    [sha.Size]byte
	Reference [sha.Size]byte
}

// Match tests if the digests are equal.
func (c Comparison) Match() bool {
	return c.Digest == c.Reference
}

func (c Comparison) String() string {
	return fmt.Sprintf("sha512:    %s\nreference: %s\nmatch:     %v",
		Hex(c.Digest), Hex(c.Reference), c.Match())
}

// Compare computes the digest of data with sha.Sum and with the
// standard library crypto/sha512.
func Compare(data []byte) Comparison {
	return Comparison{
		Digest:    sha.Sum(data),
		Reference: sha512.Sum512(data),
	}
}
