// Package lz5 implements the LC_LZ5 compression format used by certain
// 16-bit console ROMs: a lossless byte-oriented compressor/decompressor
// built from eight short command blocks (direct copy, three fill kinds, and
// four dictionary-repeat kinds) with a short/extended dual header encoding.
//
// # Compress
//
//	out, err := lz5.Compress(source, lz5.FormatLZ5)
//
// # Decompress
//
//	out, err := lz5.Decompress(compressed, lz5.FormatLZ5)
//
// A *Logger may be attached to either call with WithLogger to trace the
// per-block encoder choices or per-command decoder dispatch; it is purely
// diagnostic and never affects the encoded bytes.
//
// Both operations are synchronous and single-threaded: there are no
// suspension points, no cancellation handles, and no shared mutable state
// between calls.
package lz5
