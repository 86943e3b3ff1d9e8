package rs32

// Decoder holds the ECC length for a block; it carries no other state and
// is free to share or copy.
type Decoder struct {
	eccLen int
}

// Decoders holds one precomputed Decoder per ecc length in [0, 30]. It
// mirrors Encoders: a Decoder is just a wrapped int, so the array exists
// purely so callers that index by ecc length at compile time don't need to
// call NewDecoder themselves.
var Decoders [MaxMessageLength]Decoder

func init() {
	for ecc := 0; ecc < MaxMessageLength; ecc++ {
		Decoders[ecc] = Decoder{eccLen: ecc}
	}
}

// NewDecoder constructs a Decoder for the given ecc length. ecc must be in
// [0, 30].
func NewDecoder(ecc int) (*Decoder, error) {
	if ecc < 0 || ecc >= MaxMessageLength {
		return nil, newUsageError(InvalidECC)
	}
	d := Decoders[ecc]
	return &d, nil
}

func checkMessage(msg []byte, eccLen int) error {
	if len(msg) > MaxMessageLength {
		return newUsageError(InvalidDataLen)
	}
	if len(msg) < eccLen {
		return newUsageError(InvalidMessageLenForECC)
	}
	for _, b := range msg {
		if b > maxSymbolValue {
			return newUsageError(InvalidSymbol)
		}
	}
	return nil
}

// CorrectErrCount decodes a possibly-corrupted codeword and returns the
// corrected Buffer along with the number of errata (errors plus erasures)
// actually corrected. erasePos lists symbol positions known in advance to be
// corrupted; it may be nil.
//
// Example:
//
//	dec, _ := rs32.NewDecoder(4)
//	corrected, n, err := dec.CorrectErrCount(codeword, []int{3})
func (d *Decoder) CorrectErrCount(msg []byte, erasePos []int) (Buffer, int, error) {
	if err := checkMessage(msg, d.eccLen); err != nil {
		return Buffer{}, 0, correctionFromUsage(err)
	}
	if erasePos != nil {
		if len(erasePos) > d.eccLen {
			return Buffer{}, 0, errTooManyErrors
		}
		for _, p := range erasePos {
			if p < 0 || p >= len(msg) {
				return Buffer{}, 0, correctionFromUsage(newUsageError(InvalidErasePos))
			}
		}
	}

	dataLen := len(msg) - d.eccLen
	work := NewPolynomFrom(msg)
	ws := work.Slice()
	for _, p := range erasePos {
		ws[p] = 0
	}

	synd := calcSyndromes(ws, d.eccLen)
	if allZero(synd.Slice()) {
		return bufferFromPolynom(work, dataLen), 0, nil
	}

	fsynd := forneySyndromes(synd.Slice(), erasePos, len(msg))
	errLoc, err := findErrorLocator(fsynd.Slice(), nil, len(erasePos), d.eccLen)
	if err != nil {
		return Buffer{}, 0, err
	}
	errLocRev := errLoc.Reversed()
	foundPos, err := findErrors(errLocRev.Slice(), len(msg))
	if err != nil {
		return Buffer{}, 0, err
	}

	allErrPos := NewPolynomFrom(foundPos.Slice())
	for _, p := range erasePos {
		allErrPos.Push(byte(p))
	}

	corrected, fixed := correctErrata(ws, synd.Slice(), allErrPos.Slice())

	if isCorrupted(corrected.Slice(), d.eccLen) {
		return Buffer{}, 0, errTooManyErrors
	}
	return bufferFromPolynom(corrected, dataLen), fixed, nil
}

// Correct decodes a possibly-corrupted codeword and returns the corrected
// Buffer, discarding the errata count. See CorrectErrCount.
func (d *Decoder) Correct(msg []byte, erasePos []int) (Buffer, error) {
	buf, _, err := d.CorrectErrCount(msg, erasePos)
	return buf, err
}

// IsCorrupted performs a fast syndrome-only corruption check without
// attempting correction.
func (d *Decoder) IsCorrupted(msg []byte) (bool, error) {
	if err := checkMessage(msg, d.eccLen); err != nil {
		return false, err
	}
	return isCorrupted(msg, d.eccLen), nil
}

// CorrectErrCount decodes codeword using ecc correction symbols. See
// Decoder.CorrectErrCount.
func CorrectErrCount(codeword []byte, ecc int, erasePos []int) (Buffer, int, error) {
	if ecc < 0 || ecc >= MaxMessageLength {
		return Buffer{}, 0, correctionFromUsage(newUsageError(InvalidECC))
	}
	return Decoders[ecc].CorrectErrCount(codeword, erasePos)
}

// Correct decodes codeword using ecc correction symbols. See Decoder.Correct.
func Correct(codeword []byte, ecc int, erasePos []int) (Buffer, error) {
	buf, _, err := CorrectErrCount(codeword, ecc, erasePos)
	return buf, err
}

// IsCorrupted performs a fast syndrome-only corruption check. See
// Decoder.IsCorrupted.
func IsCorrupted(codeword []byte, ecc int) (bool, error) {
	if ecc < 0 || ecc >= MaxMessageLength {
		return false, newUsageError(InvalidECC)
	}
	return Decoders[ecc].IsCorrupted(codeword)
}

func allZero(s []byte) bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}
	return true
}

// calcSyndromes evaluates msg at alpha^0..alpha^(eccLen-1), storing the
// results at indices [1, eccLen]. Index 0 is a deliberate pad kept by every
// later step that indexes syndromes with a 1-based k.
func calcSyndromes(msg []byte, eccLen int) Polynom {
	synd := NewPolynomWithLength(eccLen + 1)
	s := synd.Slice()
	for i := 0; i < eccLen; i++ {
		s[i+1] = polyEval(msg, gfPow(2, i))
	}
	return synd
}

// isCorrupted reports whether any of the first eccLen syndromes of msg are
// nonzero, without building the full syndrome polynomial.
func isCorrupted(msg []byte, eccLen int) bool {
	for i := 0; i < eccLen; i++ {
		if polyEval(msg, gfPow(2, i)) != 0 {
			return true
		}
	}
	return false
}

// forneySyndromes folds known erasure positions out of the syndromes,
// producing the modified syndrome sequence used to locate the remaining,
// unknown errors.
func forneySyndromes(synd []byte, erasePos []int, msgLen int) Polynom {
	eraseDeg := NewPolynomWithLength(len(erasePos))
	eds := eraseDeg.Slice()
	for i, x := range erasePos {
		eds[i] = byte(msgLen - 1 - x)
	}

	fsynd := NewPolynomFrom(synd[1:])
	fs := fsynd.Slice()
	for _, q := range eds {
		x := gfPow(2, int(q))
		for j := 0; j < len(fs)-1; j++ {
			fs[j] = gfMul(fs[j], x) ^ fs[j+1]
		}
	}
	return fsynd
}

// findErrataLocator builds prod_{q in positions} (alpha^q*x + 1), the
// polynomial whose roots are the inverses of alpha^q for each degree q in
// positions.
func findErrataLocator(positions []byte) Polynom {
	loc := NewPolynomFrom([]byte{1})
	for _, q := range positions {
		term := [2]byte{gfPow(2, int(q)), 1}
		loc = polyMul(loc.Slice(), term[:])
	}
	return loc
}

// findErrorEvaluator computes the error evaluator polynomial: the
// remainder of (synd * errLoc) mod x^(syms+1).
func findErrorEvaluator(synd, errLoc []byte, syms int) Polynom {
	divisor := NewPolynomWithLength(syms + 2)
	divisor.Slice()[0] = 1
	prod := polyMul(synd, errLoc)
	_, remainder := polyDiv(prod.Slice(), divisor.Slice())
	return remainder
}

// findErrorLocator runs Berlekamp-Massey to synthesize the error locator
// polynomial Lambda. When erasureLocator is non-nil, the recurrence starts
// seeded with it (in combination with erasureCount offsetting the syndrome
// index); in this package's decode path erasureLocator is always nil and
// the caller has already removed known erasures via forneySyndromes, but
// the parameter is kept to mirror the upstream algorithm and its tests.
func findErrorLocator(synd, erasureLocator []byte, erasureCount, eccLen int) (Polynom, error) {
	var errLoc, oldLoc Polynom
	if erasureLocator != nil {
		errLoc = NewPolynomFrom(erasureLocator)
		oldLoc = NewPolynomFrom(erasureLocator)
	} else {
		errLoc = NewPolynomFrom([]byte{1})
		oldLoc = NewPolynomFrom([]byte{1})
	}

	syndShift := 0
	if len(synd) > eccLen {
		syndShift = len(synd) - eccLen
	}

	for i := 0; i < eccLen-erasureCount; i++ {
		var k int
		if erasureLocator != nil {
			k = erasureCount + i + syndShift
		} else {
			k = i + syndShift
		}

		delta := synd[k]
		el := errLoc.Slice()
		for j := 1; j < len(el); j++ {
			delta ^= gfMul(el[len(el)-j-1], synd[k-j])
		}

		oldLoc.Push(0)

		if delta != 0 {
			if oldLoc.Len() > errLoc.Len() {
				newLoc := polyScale(oldLoc.Slice(), delta)
				oldLoc = polyScale(errLoc.Slice(), gfInverse(delta))
				errLoc = newLoc
			}
			scaled := polyScale(oldLoc.Slice(), delta)
			errLoc = polyAdd(errLoc.Slice(), scaled.Slice())
		}
	}

	s := errLoc.Slice()
	shift := 0
	for shift < len(s) && s[shift] == 0 {
		shift++
	}
	errLoc = NewPolynomFrom(s[shift:])

	errs := errLoc.Len() - 1
	var bound int
	if erasureCount > errs {
		bound = erasureCount
	} else {
		bound = (errs-erasureCount)*2 + erasureCount
	}
	if bound > eccLen {
		return Polynom{}, errTooManyErrors
	}
	return errLoc, nil
}

// findErrors runs the Chien search: it evaluates errLoc at every alpha^i for
// i in [0, msgLen) and records a symbol position for each root. The count
// found must equal deg(errLoc), the number of roots Lambda is supposed to
// have; any mismatch means the locator does not correspond to a valid
// correction.
func findErrors(errLoc []byte, msgLen int) (Polynom, error) {
	errs := len(errLoc) - 1
	errPos := NewPolynom()
	for i := 0; i < msgLen; i++ {
		if polyEval(errLoc, gfPow(2, i)) == 0 {
			errPos.Push(byte(msgLen - 1 - i))
		}
	}
	if errPos.Len() != errs {
		return Polynom{}, errTooManyErrors
	}
	return errPos, nil
}

// correctErrata applies Forney's formula to compute the magnitude of the
// error at each position in errPos and adds the resulting correction vector
// into msg.
func correctErrata(msg, synd, errPos []byte) (Polynom, int) {
	coefPos := NewPolynomWithLength(len(errPos))
	cp := coefPos.Slice()
	for i, x := range errPos {
		cp[i] = byte(len(msg) - 1 - int(x))
	}

	errLoc := findErrataLocator(cp)
	syndRev := NewPolynomFrom(synd).Reversed()
	rawEval := findErrorEvaluator(syndRev.Slice(), errLoc.Slice(), errLoc.Len()-1)

	x := NewPolynom()
	for _, px := range cp {
		l := MaxMessageLength - int(px)
		x.Push(gfPow(2, -l))
	}

	e := NewPolynomWithLength(len(msg))
	es := e.Slice()
	fixed := 0

	xs := x.Slice()
	for i, xi := range xs {
		xiInv := gfInverse(xi)

		locPrime := byte(1)
		for j, xj := range xs {
			if j != i {
				locPrime = gfMul(locPrime, gfSub(1, gfMul(xiInv, xj)))
			}
		}

		y := gfMul(xi, polyEval(rawEval.Slice(), xiInv))
		magnitude := gfDiv(y, locPrime)

		es[errPos[i]] = magnitude
		fixed++
	}

	return polyAdd(msg, es), fixed
}
