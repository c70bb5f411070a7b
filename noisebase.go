package main

import (
	"os"

	"github.com/noisebase/noisebase/info"
	"github.com/noisebase/noisebase/run"

	_ "github.com/noisebase/noisebase/entropy"
	_ "github.com/noisebase/noisebase/hwsource/sim"
)

func main() {
	// Set Info
	info.Set("Noisebase", "0.0.1", "GPLv3")

	// Run
	os.Exit(run.Run())
}
