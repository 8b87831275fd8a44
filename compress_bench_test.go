package lz5

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"pattern-32k":    bytes.Repeat([]byte("ABCDEF0123456789"), 2048),
		"byte-cycle-64k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 6554),
		"sparse-runs-16k": append(
			bytes.Repeat([]byte{0x00}, 8192),
			bytes.Repeat([]byte{0x01, 0x02}, 4096)...,
		),
	}
}

func BenchmarkCompress(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(data, FormatLZ5); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		encoded, err := Compress(data, FormatLZ5)
		if err != nil {
			b.Fatalf("setup Compress failed for %s: %v", name, err)
		}

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decompress(encoded, FormatLZ5); err != nil {
					b.Fatalf("Decompress failed: %v", err)
				}
			}
		})
	}
}
