package lz5

import "fmt"

const (
	// maxBlockSize is the maximum number of source bytes any single
	// command (including the fallback) may cover: L fits in 10 bits.
	maxBlockSize = 1024
	maxLength    = maxBlockSize - 1

	shortLengthBits = 5
	extendedEscape  = 0b111
)

// commandDescriptor is the static, per-command configuration shared
// between the encoder callback and the header builder: its 3-bit selector
// and whether it may only ever be written with an extended header.
type commandDescriptor struct {
	cmd            byte
	isExtendedOnly bool
}

// buildHeader returns the 1- or 2-byte header for a command covering
// numBytesConsumed source bytes.
//
// Short header (1 byte, cmd[2:0] | L[4:0]): used when L < 32 and the
// command is not extended-only. Extended header (2 bytes): first byte is
// 0b111_00000 | (cmd<<2) | L[9:8], second byte is L[7:0].
func buildHeader(desc commandDescriptor, numBytesConsumed int) []byte {
	length := numBytesConsumed - 1
	if length < 0 || length > maxLength {
		panic("lz5: numBytesConsumed exceeds the 1024-byte maximum block size")
	}

	extended := length >= (1<<shortLengthBits) || desc.isExtendedOnly
	if !extended {
		return []byte{desc.cmd<<shortLengthBits | byte(length)}
	}
	first := byte(extendedEscape<<5) | desc.cmd<<2 | byte(length>>8)
	return []byte{first, byte(length)}
}

// decodedHeader is the parsed form of a command header, as needed to
// dispatch to the matching decoder callback.
type decodedHeader struct {
	cmdBits    byte
	extended   bool
	length     int // L: num_bytes_consumed - 1
	headerSize int
}

// decodeHeader parses the header at the start of encoded. Callers must
// check for the 0xFF sentinel before calling decodeHeader: given a second
// byte, decodeHeader parses 0xFF as an extended cmd 0b111 header.
func decodeHeader(encoded []byte) (decodedHeader, error) {
	if len(encoded) == 0 {
		return decodedHeader{}, fmt.Errorf("%w: no bytes left for a command header", ErrIndexOutOfBounds)
	}

	b0 := encoded[0]
	top3 := b0 >> 5
	if top3 != extendedEscape {
		return decodedHeader{
			cmdBits:    top3,
			extended:   false,
			length:     int(b0 & 0b11111),
			headerSize: 1,
		}, nil
	}

	if len(encoded) < 2 {
		return decodedHeader{}, fmt.Errorf("%w: truncated extended command header", ErrIndexOutOfBounds)
	}
	cmd := (b0 >> 2) & 0b111
	length := int(b0&0b11)<<8 | int(encoded[1])
	return decodedHeader{
		cmdBits:    cmd,
		extended:   true,
		length:     length,
		headerSize: 2,
	}, nil
}
