package rs32

// Buffer is the result of an encode or a correction: a single contiguous
// codeword split into a data prefix and an ECC suffix over the same
// backing storage. The whole codeword remains addressable through Bytes,
// for callers that want to simulate channel corruption directly on an
// encoded buffer.
type Buffer struct {
	poly    Polynom
	dataLen int
}

func bufferFromPolynom(p Polynom, dataLen int) Buffer {
	return Buffer{poly: p, dataLen: dataLen}
}

// Data returns the data symbols: the prefix [0, dataLen).
func (b *Buffer) Data() []byte {
	return b.poly.Slice()[:b.dataLen]
}

// ECC returns the error-correction symbols: the suffix [dataLen, Len()).
func (b *Buffer) ECC() []byte {
	return b.poly.Slice()[b.dataLen:]
}

// Bytes returns the whole codeword, data followed by ecc.
func (b *Buffer) Bytes() []byte {
	return b.poly.Slice()
}

// Len returns the total codeword length.
func (b *Buffer) Len() int {
	return b.poly.Len()
}
