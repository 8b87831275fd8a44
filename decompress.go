package lz5

import "fmt"

// Decompress expands an encoded command stream produced by Compress (or any
// conforming encoder) for the given FormatTag back into the original bytes.
// It walks the stream one command at a time: check for the 0xFF sentinel,
// decode the header, dispatch cmdBits/extended to the matching decoder
// callback, and append what it produces.
func Decompress(encoded []byte, tag FormatTag, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	strat, ok := decodeStrategies[tag]
	if !ok {
		return nil, &DecompressionError{Err: unsupportedFormatErr(tag), Encoded: encoded}
	}

	var out []byte
	pos := 0
	for {
		// Running off the end of encoded without meeting 0xFF is an
		// implicit end-of-stream, not an error: a conforming stream may
		// omit the trailing sentinel when the last command consumes
		// exactly to the end of the buffer.
		if pos >= len(encoded) {
			break
		}
		if encoded[pos] == 0xFF {
			break
		}

		hdr, err := decodeHeader(encoded[pos:])
		if err != nil {
			return nil, &DecompressionError{Err: err, Encoded: encoded, Decoded: out}
		}

		fn, ok := strat.lookup(hdr.cmdBits, hdr.extended)
		if !ok {
			return nil, &DecompressionError{
				Err:     fmt.Errorf("%w: cmd=%03b extended=%v", ErrInvalidCommand, hdr.cmdBits, hdr.extended),
				Encoded: encoded,
				Decoded: out,
			}
		}

		payload := encoded[pos+hdr.headerSize:]
		n := hdr.length + 1
		consumed, newOut, err := fn(payload, out, n)
		if err != nil {
			return nil, &DecompressionError{Err: err, Encoded: encoded, Decoded: out}
		}
		out = newOut
		cfg.logger.traceCommand(hdr.cmdBits, hdr.extended, hdr.headerSize, n)

		pos += hdr.headerSize + consumed
	}

	return out, nil
}
