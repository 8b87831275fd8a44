package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchManifest is a sequential list of single-file jobs, run in order.
// Non-goal §5 excludes concurrent compression, so batch mode never runs
// entries in parallel.
type batchManifest struct {
	Jobs []batchJob `yaml:"jobs"`
}

type batchJob struct {
	Op  string `yaml:"op"`
	In  string `yaml:"in"`
	Out string `yaml:"out"`
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run a sequence of compress/decompress jobs from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0])
		},
	}
	return cmd
}

func runBatch(manifestPath string) error {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}

	var manifest batchManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return fmt.Errorf("parse manifest %s: %w", manifestPath, err)
	}

	for i, job := range manifest.Jobs {
		switch job.Op {
		case "compress":
			if err := runCompress(job.In, job.Out); err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
		case "decompress":
			if err := runDecompress(job.In, job.Out); err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
		default:
			return fmt.Errorf("job %d: unknown op %q (want compress or decompress)", i, job.Op)
		}
	}
	return nil
}
