package lz5

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the failure kinds from the format's error
// taxonomy. Use errors.Is to test for a specific kind, and errors.As to
// recover a *DecompressionError's diagnostic context.
var (
	// ErrUnsupportedFormat is returned by Compress or Decompress when no
	// strategy is registered for the requested FormatTag.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCompressionFailed means the fallback strategy could not cover a
	// gap in the source. This should be unreachable given a well-formed
	// strategy, since direct-copy always succeeds; its presence is a
	// safety net that callers may treat as a library bug.
	ErrCompressionFailed = errors.New("compression failed: fallback could not cover source")

	// ErrInvalidCommand means the decoded (cmd, extended) pair has no
	// registered decoder callback.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrIndexOutOfBounds means a decoder callback's payload was
	// truncated, or a back-reference pointed outside the decoded output.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// DecompressionError reports a Decompress failure together with enough
// context to diagnose it: the original encoded input, and whatever prefix
// of output had been produced before the failure. Decompress never returns
// a partial buffer directly through its own return value; callers that
// want that partial output for diagnostics can recover it with errors.As.
type DecompressionError struct {
	Err     error
	Encoded []byte
	Decoded []byte
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("decompress: %v (%d bytes decoded before failure, %d bytes of input)",
		e.Err, len(e.Decoded), len(e.Encoded))
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// CompressionError reports a Compress failure together with enough context
// to diagnose it: the requested format tag, and, for ErrCompressionFailed,
// the source byte range the fallback strategy could not cover.
type CompressionError struct {
	Err   error
	Tag   FormatTag
	Start int
	End   int
}

func (e *CompressionError) Error() string {
	if e.Start != e.End {
		return fmt.Sprintf("compress: %v (format %q, uncovered range [%d, %d))", e.Err, e.Tag, e.Start, e.End)
	}
	return fmt.Sprintf("compress: %v (format %q)", e.Err, e.Tag)
}

func (e *CompressionError) Unwrap() error { return e.Err }

func unsupportedFormatErr(tag FormatTag) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
}
