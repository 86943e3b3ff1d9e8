package rs32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestRapidRoundTrip exercises the round-trip invariant: decoding a freshly
// encoded codeword always recovers the original data with zero corrections,
// for every valid combination of ecc length and data length.
func TestRapidRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ecc := rapid.IntRange(0, MaxMessageLength-1).Draw(rt, "ecc")
		maxData := MaxMessageLength - ecc
		dataLen := rapid.IntRange(0, maxData).Draw(rt, "dataLen")
		data := rapid.SliceOfN(rapid.IntRange(0, int(maxSymbolValue)), dataLen, dataLen).Draw(rt, "data")

		symbols := make([]byte, dataLen)
		for i, v := range data {
			symbols[i] = byte(v)
		}

		encoded, err := Encode(symbols, ecc)
		if !assert.NoError(rt, err) {
			return
		}

		corrected, fixed, err := CorrectErrCount(encoded.Bytes(), ecc, nil)
		if !assert.NoError(rt, err) {
			return
		}
		assert.Equal(rt, 0, fixed)
		assert.Equal(rt, symbols, corrected.Data())
	})
}

// TestRapidErrorTolerance exercises the error-tolerance invariant: up to
// floor(ecc/2) corrupted symbols at arbitrary positions must always be
// recoverable.
func TestRapidErrorTolerance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ecc := rapid.IntRange(2, 12).Draw(rt, "ecc")
		maxData := MaxMessageLength - ecc
		dataLen := rapid.IntRange(1, maxData).Draw(rt, "dataLen")
		data := rapid.SliceOfN(rapid.IntRange(0, int(maxSymbolValue)), dataLen, dataLen).Draw(rt, "data")

		symbols := make([]byte, dataLen)
		for i, v := range data {
			symbols[i] = byte(v)
		}

		encoded, err := Encode(symbols, ecc)
		if !assert.NoError(rt, err) {
			return
		}

		maxErrs := ecc / 2
		codewordLen := len(encoded.Bytes())
		positions := distinctPositions(rt, codewordLen, maxErrs)

		corrupted := append([]byte{}, encoded.Bytes()...)
		for _, p := range positions {
			delta := rapid.IntRange(1, int(maxSymbolValue)).Draw(rt, "delta")
			corrupted[p] ^= byte(delta)
		}

		corrected, _, err := CorrectErrCount(corrupted, ecc, nil)
		if !assert.NoError(rt, err) {
			return
		}
		assert.Equal(rt, symbols, corrected.Data())
	})
}

// TestRapidErasureTolerance exercises the erasure-tolerance invariant: up to
// ecc known erasure positions must always be recoverable regardless of what
// garbage occupies them.
func TestRapidErasureTolerance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ecc := rapid.IntRange(1, 10).Draw(rt, "ecc")
		maxData := MaxMessageLength - ecc
		dataLen := rapid.IntRange(1, maxData).Draw(rt, "dataLen")
		data := rapid.SliceOfN(rapid.IntRange(0, int(maxSymbolValue)), dataLen, dataLen).Draw(rt, "data")

		symbols := make([]byte, dataLen)
		for i, v := range data {
			symbols[i] = byte(v)
		}

		encoded, err := Encode(symbols, ecc)
		if !assert.NoError(rt, err) {
			return
		}

		codewordLen := len(encoded.Bytes())
		positions := distinctPositions(rt, codewordLen, ecc)

		corrupted := append([]byte{}, encoded.Bytes()...)
		for _, p := range positions {
			garbage := rapid.IntRange(0, int(maxSymbolValue)).Draw(rt, "garbage")
			corrupted[p] = byte(garbage)
		}

		corrected, _, err := CorrectErrCount(corrupted, ecc, positions)
		if !assert.NoError(rt, err) {
			return
		}
		assert.Equal(rt, symbols, corrected.Data())
	})
}

// distinctPositions draws up to maxCount distinct positions in [0, n). It
// draws a count in [0, min(maxCount, n)] up front, then keeps drawing and
// discards duplicates until it holds exactly that many positions, so the
// result never grows past the caller's bound.
func distinctPositions(rt *rapid.T, n, maxCount int) []int {
	if maxCount > n {
		maxCount = n
	}
	count := rapid.IntRange(0, maxCount).Draw(rt, "count")

	seen := make(map[int]bool, count)
	positions := make([]int, 0, count)
	for len(positions) < count {
		p := rapid.IntRange(0, n-1).Draw(rt, "pos")
		if !seen[p] {
			seen[p] = true
			positions = append(positions, p)
		}
	}
	return positions
}
