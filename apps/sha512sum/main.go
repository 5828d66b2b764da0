//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/markkurossi/sha512ref/corpus"
	"github.com/markkurossi/sha512ref/message"
	"github.com/markkurossi/sha512ref/report"
)

var samples = []string{
	"abc",
	"hello world",
	"This is the data to hash using SHA-512.",
}

func main() {
	files := flag.Bool("f", false, "arguments are file names")
	compare := flag.Bool("compare", false,
		"compare digests with the standard library")
	random := flag.Int("random", 0,
		"hash `n` random messages of each test length")
	seed := flag.String("seed", "sha512", "random message seed")
	timing := flag.Bool("timing", false, "print timing report")
	verbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	inputs, err := readInputs(flag.Args(), *files)
	if err != nil {
		log.Fatal(err)
	}
	if *random > 0 {
		gen := corpus.New(*seed)
		for i := 0; i < *random; i++ {
			for _, data := range gen.Corpus(corpus.DefaultLengths) {
				inputs = append(inputs, &input{
					label: fmt.Sprintf("random/%d", len(data)),
					data:  data,
				})
			}
		}
	}

	t := report.NewTiming()
	check := *compare || *random > 0

	for _, in := range inputs {
		if *verbose {
			trace(os.Stdout, in.data)
		}
		sample := t.Hash(in.label, in.data, check)
		if *random > 0 && !*verbose {
			continue
		}
		if *compare {
			fmt.Printf("Input: %q\n", in.label)
			fmt.Printf("%s\n\n", message.Compare(in.data))
		} else {
			fmt.Printf("%s  %s\n", message.Hex(sample.Digest), in.label)
		}
	}

	if *timing {
		t.Print(os.Stdout)
	}
	if n := t.Mismatches(); n > 0 {
		log.Fatalf("%d digests did not match the reference", n)
	}
	if *random > 0 {
		fmt.Printf("%d random messages match the reference\n",
			*random*len(corpus.DefaultLengths))
	}
}

type input struct {
	label string
	data  []byte
}

func readInputs(args []string, files bool) ([]*input, error) {
	if len(args) == 0 && !files {
		args = samples
	}
	var result []*input
	for _, arg := range args {
		var data []byte
		var err error
		if files {
			data, err = message.FromFile(arg)
		} else {
			data, err = message.FromString(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		result = append(result, &input{
			label: arg,
			data:  data,
		})
	}
	return result, nil
}
