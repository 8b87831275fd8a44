package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lz5 "github.com/rnwtn/snes-compress"
)

func newDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decompress <in> <out>",
		Aliases: []string{"-d"},
		Short:   "Decompress an LC_LZ5 file",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args[0], args[1])
		},
	}
	return cmd
}

func runDecompress(inPath, outPath string) error {
	encoded, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	decoded, err := lz5.Decompress(encoded, lz5.FormatLZ5, logOption())
	if err != nil {
		return fmt.Errorf("decompress %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, decoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
