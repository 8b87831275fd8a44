package lz5

import (
	"bytes"
	"testing"
)

// TestRoundTrip_BoundaryScenarios exercises the scenarios the command
// catalog was designed around: one per fill kind, plus the classic mixed
// fill sequence, a run longer than one block, and incompressible bytes.
func TestRoundTrip_BoundaryScenarios(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single-byte", []byte{0x7F}},
		{"byte-fill-run", bytes.Repeat([]byte{0x09}, 64)},
		{"word-fill-run", bytes.Repeat([]byte{0x01, 0x02}, 64)},
		{"increasing-fill-run", []byte{10, 11, 12, 13, 14, 15, 16}},
		{"increasing-fill-saturates", []byte{0xFC, 0xFD, 0xFE, 0xFF, 0x00, 0x00}},
		{"mixed-fills-and-repeat", []byte{0x0A, 0x0A, 0x0A, 0x0A, 1, 2, 3, 4, 3, 2, 1, 0x0B}},
		{"long-block-over-1024", bytes.Repeat([]byte{0x5A}, 3000)},
		{"binary-garbage", []byte{0x00, 0xFF, 0x10, 0xEE, 0x01, 0xFE, 0x02, 0xFD, 0x00, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Compress(tt.data, FormatLZ5)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			decoded, err := Decompress(encoded, FormatLZ5)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Fatalf("round-trip mismatch: got %d bytes, want %d bytes", len(decoded), len(tt.data))
			}
		})
	}
}

func TestRoundTrip_WithDiagnosticsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, DebugLevel)

	data := []byte("aaaaaaaabbbbbbbbabababab12345678")
	encoded, err := Compress(data, FormatLZ5, WithLogger(logger))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	decoded, err := Decompress(encoded, FormatLZ5, WithLogger(logger))
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("round-trip mismatch with logging enabled")
	}
	if buf.Len() == 0 {
		t.Fatal("expected the diagnostics logger to have written trace output")
	}
}
