// Command lz5c compresses and decompresses files using the LC_LZ5 console
// ROM format. It wraps the github.com/rnwtn/snes-compress package with a
// Cobra-based front end: single-file compress/decompress subcommands, plus a
// batch mode driven by a YAML manifest.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
