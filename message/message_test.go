//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package message

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"", -1},
		{"abc", -1},
		{"héllo", -1},
		{"日本語", -1},
		{"\xff", 0},
		{"ab\xc3", 2},
		{"abc\xc3\x28", 3},
		{"ok\xed\xa0\x80", 2},
	}
	for _, test := range tests {
		data, err := FromString(test.in)
		if test.offset < 0 {
			if err != nil {
				t.Errorf("FromString(%q) failed: %v", test.in, err)
				continue
			}
			if string(data) != test.in {
				t.Errorf("FromString(%q)=%x", test.in, data)
			}
			continue
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("FromString(%q): expected EncodingError, got %v",
				test.in, err)
			continue
		}
		if encErr.Offset != test.offset {
			t.Errorf("FromString(%q): offset %d, expected %d",
				test.in, encErr.Offset, test.offset)
		}
	}
}

func TestFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "msg")
	if err := os.WriteFile(file, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := FromFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "abc" {
		t.Fatalf("FromFile=%q", data)
	}

	_, err = FromFile(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("FromFile(missing): %v", err)
	}
}

func TestHex(t *testing.T) {
	cmp := Compare(nil)
	h := Hex(cmp.Digest)
	if len(h) != 128 {
		t.Fatalf("Hex length %d", len(h))
	}
	expected := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	if h != expected {
		t.Fatalf("Hex=%s, expected %s", h, expected)
	}
}

func TestCompare(t *testing.T) {
	data, err := FromString("This is the data to hash using SHA-512.")
	if err != nil {
		t.Fatal(err)
	}
	cmp := Compare(data)
	if !cmp.Match() {
		t.Fatalf("digest mismatch:\n%s", cmp)
	}
	cmp.Reference[0] ^= 1
	if cmp.Match() {
		t.Fatalf("Match ignored modified reference")
	}
}
