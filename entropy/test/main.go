package main

import (
	"fmt"
	"os"

	"github.com/noisebase/noisebase/entropy"
	"github.com/noisebase/noisebase/hexutil"
	"github.com/noisebase/noisebase/hwsource/sim"
)

func main() {
	// draw ten 16 byte sequences from the simulated source and print them hex-encoded

	if err := entropy.SetSource(sim.New()); err != nil {
		fail(err)
	}
	if err := entropy.Enable(); err != nil {
		fail(err)
	}

	buf := make([]byte, 16)
	for i := 0; i < 10; i++ {
		if err := entropy.Fill(buf); err != nil {
			fail(err)
		}
		fmt.Printf("%2d: %s\n", i+1, hexutil.Encode(buf))
	}

	if err := entropy.Disable(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
