package lz5

// encoderFunc proposes at most one Block covering the start of src at the
// given source index. hist is the history index built over the entire
// source so far; commands that don't need it (the fill kinds) ignore it.
// A false second return means no useful block could be built here.
type encoderFunc func(src []byte, index int, hist *historyIndex) (Block, bool)

var (
	descByteFill          = commandDescriptor{cmd: 0b001}
	descWordFill          = commandDescriptor{cmd: 0b010}
	descIncreasingFill    = commandDescriptor{cmd: 0b011}
	descRepeatLE          = commandDescriptor{cmd: 0b100}
	descXORRepeatLE       = commandDescriptor{cmd: 0b101}
	descNegativeRepeat    = commandDescriptor{cmd: 0b110}
	descNegativeXORRepeat = commandDescriptor{cmd: 0b111, isExtendedOnly: true}
	descDirectCopy        = commandDescriptor{cmd: 0b000}
)

// encodeDirectCopy is the fallback command: it always covers exactly the
// input slice and always emits, even though its encoded size necessarily
// exceeds the bytes it consumes (a 1- or 2-byte header plus the verbatim
// payload). It is never placed in an encodeStrategy's ranked command list;
// it only ever runs as the gap-covering fallback.
func encodeDirectCopy(src []byte, index int, _ *historyIndex) (Block, bool) {
	if len(src) == 0 {
		return Block{}, false
	}
	data := buildHeader(descDirectCopy, len(src))
	data = append(data, src...)
	return Block{Index: index, NumBytesConsumed: len(src), Data: data, Name: "direct copy"}, true
}

func encodeByteFill(src []byte, index int, _ *historyIndex) (Block, bool) {
	if len(src) == 0 {
		return Block{}, false
	}
	first := src[0]
	n := 0
	for n < len(src) && src[n] == first {
		n++
	}

	data := buildHeader(descByteFill, n)
	data = append(data, first)
	if n <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: n, Data: data, Name: "byte fill"}, true
}

func encodeWordFill(src []byte, index int, _ *historyIndex) (Block, bool) {
	if len(src) < 2 {
		return Block{}, false
	}
	first, second := src[0], src[1]
	n := 0
	for n < len(src) {
		want := first
		if n%2 == 1 {
			want = second
		}
		if src[n] != want {
			break
		}
		n++
	}

	data := buildHeader(descWordFill, n)
	data = append(data, first, second)
	if n <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: n, Data: data, Name: "word fill"}, true
}

// encodeIncreasingFill matches a run where each byte is one more than the
// last, starting from src[0]. The run stops at the first mismatch, or
// immediately after a byte equal to 0xFF is matched: there is no
// wraparound to 0x00. This quirk is preserved deliberately for decoder
// compatibility.
func encodeIncreasingFill(src []byte, index int, _ *historyIndex) (Block, bool) {
	if len(src) == 0 {
		return Block{}, false
	}
	first := src[0]
	next := first
	n := 0
	for n < len(src) {
		if src[n] != next {
			break
		}
		n++
		if next == 0xFF {
			break
		}
		next++
	}

	data := buildHeader(descIncreasingFill, n)
	data = append(data, first)
	if n <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: n, Data: data, Name: "increasing fill"}, true
}

func encodeRepeatLE(src []byte, index int, hist *historyIndex) (Block, bool) {
	info, ok := hist.findLongestRepeat(src, 0)
	// The match position is stored in two bytes, so it must fit in 16 bits.
	if !ok || info.size == 0 || info.startIndex > 0xFFFF {
		return Block{}, false
	}
	data := buildHeader(descRepeatLE, info.size)
	data = append(data, byte(info.startIndex), byte(info.startIndex>>8))
	if info.size <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: info.size, Data: data, Name: "repeat le"}, true
}

func encodeXORRepeatLE(src []byte, index int, hist *historyIndex) (Block, bool) {
	info, ok := hist.findLongestRepeatXOR(src, 0)
	// The match position is stored in two bytes, so it must fit in 16 bits.
	if !ok || info.size == 0 || info.startIndex > 0xFFFF {
		return Block{}, false
	}
	data := buildHeader(descXORRepeatLE, info.size)
	data = append(data, byte(info.startIndex), byte(info.startIndex>>8))
	if info.size <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: info.size, Data: data, Name: "xor repeat le"}, true
}

func encodeNegativeRepeat(src []byte, index int, hist *historyIndex) (Block, bool) {
	lowerBound := index - min(255, index)
	info, ok := hist.findLongestRepeat(src, lowerBound)
	if !ok || info.size == 0 {
		return Block{}, false
	}
	data := buildHeader(descNegativeRepeat, info.size)
	data = append(data, byte(index-info.startIndex))
	if info.size <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: info.size, Data: data, Name: "negative repeat"}, true
}

func encodeNegativeXORRepeat(src []byte, index int, hist *historyIndex) (Block, bool) {
	lowerBound := index - min(255, index)
	info, ok := hist.findLongestRepeatXOR(src, lowerBound)
	if !ok || info.size == 0 {
		return Block{}, false
	}
	// With cmd 0b111, any L >= 768 makes the first extended header byte
	// 0xFF, which the decoder reads as the end-of-stream sentinel. Capping
	// the run at 768 bytes (L = 767) keeps that byte out of the stream.
	info.size = min(info.size, 768)
	data := buildHeader(descNegativeXORRepeat, info.size)
	data = append(data, byte(index-info.startIndex))
	if info.size <= len(data) {
		return Block{}, false
	}
	return Block{Index: index, NumBytesConsumed: info.size, Data: data, Name: "negative xor repeat"}, true
}
