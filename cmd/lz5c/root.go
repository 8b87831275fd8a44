package main

import (
	"os"

	"github.com/spf13/cobra"

	lz5 "github.com/rnwtn/snes-compress"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lz5c",
		Short: "Compress and decompress LC_LZ5 ROM assets",
		Long: "lz5c is a compression library that only supports LZ5 right now,\n" +
			"but may support others later.",
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-block/per-command trace output to stderr")

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	root.AddCommand(newBatchCmd())
	return root
}

func logOption() lz5.Option {
	if !verbose {
		return lz5.WithLogger(nil)
	}
	return lz5.WithLogger(lz5.NewLogger(os.Stderr, lz5.DebugLevel))
}
