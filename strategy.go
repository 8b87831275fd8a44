package lz5

// encodeStrategy is an ordered list of encoder commands plus one fallback
// command, and the one size limit they all share.
type encodeStrategy struct {
	commands     []encoderFunc
	fallback     encoderFunc
	maxBlockSize int
}

// getBestBlock invokes every non-fallback command on the window starting
// at index and returns the best proposal by Block.isBetter (most bytes
// consumed, then smallest encoding).
func (s *encodeStrategy) getBestBlock(source []byte, index int, hist *historyIndex) (Block, bool) {
	window := sourceWindow(source, index, s.maxBlockSize)

	var best Block
	found := false
	for _, try := range s.commands {
		block, ok := try(window, index, hist)
		if !ok {
			continue
		}
		if !found || block.isBetter(best) {
			best = block
			found = true
		}
	}
	return best, found
}

// getFallbackBlocks tiles [start, end) into ceil((end-start)/maxBlockSize)
// fallback blocks, each covering up to maxBlockSize source bytes.
func (s *encodeStrategy) getFallbackBlocks(source []byte, start, end int) ([]Block, bool) {
	blocks := make([]Block, 0, (end-start+s.maxBlockSize-1)/s.maxBlockSize)
	for i := start; i < end; i += s.maxBlockSize {
		chunkEnd := min(i+s.maxBlockSize, end)
		block, ok := s.fallback(source[i:chunkEnd], i, nil)
		if !ok {
			return nil, false
		}
		blocks = append(blocks, block)
	}
	return blocks, true
}

func sourceWindow(source []byte, index, maxSize int) []byte {
	end := min(index+maxSize, len(source))
	return source[index:end]
}

// decodeStrategy dispatches a (cmdBits, extended) pair to its decoder
// callback. Extended-only commands live in a separate table so that, in
// extended mode, a cmdBits collision with the short-command table resolves
// to the extended-only callback.
type decodeStrategy struct {
	commands     map[byte]decoderFunc
	extendedOnly map[byte]decoderFunc
}

func (d *decodeStrategy) lookup(cmdBits byte, extended bool) (decoderFunc, bool) {
	if extended {
		if fn, ok := d.extendedOnly[cmdBits]; ok {
			return fn, true
		}
	}
	fn, ok := d.commands[cmdBits]
	return fn, ok
}
