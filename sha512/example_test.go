//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha512_test

import (
	"fmt"

	"github.com/markkurossi/sha512ref/sha512"
)

func ExampleSum() {
	fmt.Printf("%x\n", sha512.Sum([]byte("abc")))
	// Output: ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f
}

func ExamplePad() {
	padded := sha512.Pad([]byte("abc"))
	fmt.Println(len(padded), sha512.Blocks(padded))
	// Output: 128 1
}
