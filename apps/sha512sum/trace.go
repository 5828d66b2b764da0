//
// trace.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/text/superscript"

	"github.com/markkurossi/sha512ref/sha512"
)

// trace prints the hash state after each block of the message.
func trace(out io.Writer, data []byte) {
	padded := sha512.Pad(data)
	fmt.Fprintf(out, "L=%d bits, padded=%d bytes, N=%d\n",
		len(data)*8, len(padded), sha512.Blocks(padded))

	state := sha512.InitialState()
	printState(out, 0, state)

	for i := 0; i < sha512.Blocks(padded); i++ {
		w := sha512.Expand(padded[i*sha512.BlockSize : (i+1)*sha512.BlockSize])
		state = sha512.Compress(state, &w)
		printState(out, i+1, state)
	}
	fmt.Fprintln(out)
}

func printState(out io.Writer, block int, state sha512.State) {
	for i, h := range state {
		fmt.Fprintf(out, "H%s[%d]=%016x", superscript.Itoa(block), i, h)
		if i%4 == 3 {
			fmt.Fprintln(out)
		} else {
			fmt.Fprint(out, " ")
		}
	}
}
