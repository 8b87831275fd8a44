package lz5

// Block describes one emitted command: the source position it covers, how
// many source bytes it replaces, and the encoded bytes it contributes to
// the output. Name is set by the encoder that produced it purely for
// diagnostics (see Logger) and plays no role in encoding or comparison.
type Block struct {
	Index            int
	NumBytesConsumed int
	Data             []byte
	Name             string
}

// isBetter orders two blocks covering the same source position: the block
// with the greater NumBytesConsumed wins; on a tie, the one with the
// smaller encoded size wins. This is not the same as preferring the lower
// ratio len(Data)/NumBytesConsumed: a block that consumes more wins even
// when its ratio is higher. This is the canonical, consumption-maximizing
// predicate (monotone, and easier to reason about than a pure-ratio rule).
func (b Block) isBetter(other Block) bool {
	if b.NumBytesConsumed != other.NumBytesConsumed {
		return b.NumBytesConsumed > other.NumBytesConsumed
	}
	return len(b.Data) < len(other.Data)
}
