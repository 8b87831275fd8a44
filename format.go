package lz5

// FormatTag identifies a registered compression format. The only tag
// presently registered is FormatLZ5; LZ1, LZ2, LZ3, RLE1, and RLE2 are
// named as future work and are deliberately not implemented here, but the
// registry shape below makes adding one a registration, not a rewrite.
type FormatTag string

// FormatLZ5 selects the LC_LZ5 8-command catalog.
const FormatLZ5 FormatTag = "LZ5"

var encodeStrategies = map[FormatTag]*encodeStrategy{
	FormatLZ5: newLZ5EncodeStrategy(),
}

var decodeStrategies = map[FormatTag]*decodeStrategy{
	FormatLZ5: newLZ5DecodeStrategy(),
}

func newLZ5EncodeStrategy() *encodeStrategy {
	return &encodeStrategy{
		maxBlockSize: maxBlockSize,
		fallback:     encodeDirectCopy,
		commands: []encoderFunc{
			encodeByteFill,
			encodeWordFill,
			encodeIncreasingFill,
			encodeRepeatLE,
			encodeXORRepeatLE,
			encodeNegativeRepeat,
			encodeNegativeXORRepeat,
		},
	}
}

func newLZ5DecodeStrategy() *decodeStrategy {
	return &decodeStrategy{
		commands: map[byte]decoderFunc{
			0b000: decodeDirectCopy,
			0b001: decodeByteFill,
			0b010: decodeWordFill,
			0b011: decodeIncreasingFill,
			0b100: decodeRepeatLE,
			0b101: decodeXORRepeatLE,
			0b110: decodeNegativeRepeat,
		},
		extendedOnly: map[byte]decoderFunc{
			0b111: decodeNegativeXORRepeat,
		},
	}
}
