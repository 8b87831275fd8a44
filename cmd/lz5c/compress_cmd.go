package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lz5 "github.com/rnwtn/snes-compress"
)

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compress <in> <out>",
		Aliases: []string{"-c"},
		Short:   "Compress a file to LC_LZ5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}
	return cmd
}

func runCompress(inPath, outPath string) error {
	source, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	encoded, err := lz5.Compress(source, lz5.FormatLZ5, logOption())
	if err != nil {
		return fmt.Errorf("compress %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
