package rs32

// maxSymbolValue is the largest value a single GF(32) symbol may hold.
const maxSymbolValue = fieldSize

// Encoder holds a precomputed generator polynomial g(x) = prod_{i=0}^{E-1}
// (x - alpha^i), alpha = 2, and is immutable after construction.
type Encoder struct {
	generator Polynom
}

// generatorPoly builds g = prod_{i=0}^{ecc-1} (x + alpha^i) by repeated
// polynomial multiplication, the same shape as the teacher's
// GenerateGeneratorPoly but over GF(32) instead of GF(256).
func generatorPoly(ecc int) Polynom {
	gen := NewPolynomFrom([]byte{1})
	term := [2]byte{1, 0}
	for i := 0; i < ecc; i++ {
		term[1] = gfPow(2, i)
		gen = polyMul(gen.Slice(), term[:])
	}
	return gen
}

// Encoders holds one precomputed Encoder per ecc length in [0, 30], a
// binary-size trade-off for callers that know their ECC length up front and
// want to avoid repeating generator construction. Using Encode or NewEncoder
// directly produces identical output.
var Encoders [MaxMessageLength]Encoder

func init() {
	for ecc := 0; ecc < MaxMessageLength; ecc++ {
		Encoders[ecc] = Encoder{generator: generatorPoly(ecc)}
	}
}

// NewEncoder constructs an Encoder for the given ecc length. ecc must be in
// [0, 30].
func NewEncoder(ecc int) (*Encoder, error) {
	if ecc < 0 || ecc >= MaxMessageLength {
		return nil, newUsageError(InvalidECC)
	}
	e := Encoders[ecc]
	return &e, nil
}

// Encode performs systematic encoding of data: it returns a Buffer whose
// Data() equals data and whose ECC() is the length-ecc remainder of dividing
// data * x^ecc by the generator polynomial, computed via precomputed logs so
// every inner multiplication is an add-and-lookup.
//
// Example:
//
//	enc, _ := rs32.NewEncoder(8)
//	encoded, err := enc.Encode([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
func (e *Encoder) Encode(data []byte) (Buffer, error) {
	if len(data) > MaxMessageLength {
		return Buffer{}, newUsageError(InvalidDataLen)
	}
	eccLen := e.generator.Len() - 1
	if len(data)+eccLen > MaxMessageLength {
		return Buffer{}, newUsageError(InvalidCombinedLen)
	}
	for _, b := range data {
		if b > maxSymbolValue {
			return Buffer{}, newUsageError(InvalidSymbol)
		}
	}

	dataLen := len(data)
	out := NewPolynomFrom(data)
	out.SetLength(dataLen + eccLen)
	work := out.Slice()

	gen := e.generator.Slice()
	lgenP := NewPolynomWithLength(len(gen))
	lgen := lgenP.Slice()
	for i, g := range gen {
		lgen[i] = logTable[g]
	}

	for i := 0; i < dataLen; i++ {
		coef := work[i]
		if coef != 0 {
			lcoef := int(logTable[coef])
			for j := 1; j < len(gen); j++ {
				work[i+j] ^= expTable[lcoef+int(lgen[j])]
			}
		}
	}

	copy(work[:dataLen], data)
	return bufferFromPolynom(out, dataLen), nil
}

// Encode encodes data with ecc correction symbols. ecc must be in [0, 30]
// and len(data)+ecc must be at most 31.
func Encode(data []byte, ecc int) (Buffer, error) {
	if ecc < 0 || ecc >= MaxMessageLength {
		return Buffer{}, newUsageError(InvalidECC)
	}
	return Encoders[ecc].Encode(data)
}
