package rs32

import (
	"fmt"
)

// UsageErrorCode identifies which caller-contract violation occurred.
type UsageErrorCode int

const (
	// InvalidECC means ecc >= 31.
	InvalidECC UsageErrorCode = iota
	// InvalidDataLen means an input was longer than 31 symbols.
	InvalidDataLen
	// InvalidMessageLenForECC means a codeword was shorter than the ecc length.
	InvalidMessageLenForECC
	// InvalidCombinedLen means data length + ecc length exceeded 31.
	InvalidCombinedLen
	// InvalidSymbol means some byte in the input was greater than 31.
	InvalidSymbol
	// InvalidErasePos means an erasure position was >= the codeword length.
	InvalidErasePos
)

func (c UsageErrorCode) String() string {
	switch c {
	case InvalidECC:
		return "the number of ecc symbols must be less than 31"
	case InvalidDataLen:
		return "the length of the input data or message is greater than 31 symbols"
	case InvalidMessageLenForECC:
		return "the message buffer is shorter than the number of ecc symbols and thus cannot be valid"
	case InvalidCombinedLen:
		return "the combination of data and ecc symbols would create a message greater than the maximum of 31 symbols"
	case InvalidSymbol:
		return "invalid symbol: all symbols must be in the range [0, 31]"
	case InvalidErasePos:
		return "one of the erasure positions was greater than or equal to the message size"
	default:
		return "unknown usage error"
	}
}

// UsageError indicates that a parameter supplied to an Encoder or Decoder
// function was invalid for that function - a caller contract violation,
// deterministic given its inputs.
type UsageError struct {
	Code UsageErrorCode
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("rs32: usage error: %s", e.Code)
}

func newUsageError(code UsageErrorCode) error {
	return &UsageError{Code: code}
}

// CorrectionError indicates that Decoder.Correct (or CorrectErrCount)
// failed. It is either TooManyErrors - the codeword could not be repaired
// under the 2*errors + erasures <= ecc bound - or a UsageError, embedded
// losslessly so decoder callers see a single failure channel, matching the
// upstream From<UsageError> for CorrectionError conversion.
type CorrectionError struct {
	// TooManyErrors is true when the message is unrecoverably corrupted.
	// When false, Usage holds the caller-contract violation instead.
	TooManyErrors bool
	Usage         *UsageError
}

func (e *CorrectionError) Error() string {
	if e.TooManyErrors {
		return "rs32: too many errors: message cannot be repaired"
	}
	return e.Usage.Error()
}

// Unwrap lets errors.Is/errors.As see through to the embedded UsageError.
func (e *CorrectionError) Unwrap() error {
	if e.Usage != nil {
		return e.Usage
	}
	return nil
}

var errTooManyErrors = &CorrectionError{TooManyErrors: true}

// correctionFromUsage converts a validation failure into the CorrectionError
// shape decoder callers expect. Every call site passes either nil or a
// *UsageError produced by newUsageError, mirroring the upstream
// From<UsageError> for CorrectionError conversion, which has no third
// variant to fall back to.
func correctionFromUsage(err error) error {
	if err == nil {
		return nil
	}
	return &CorrectionError{Usage: err.(*UsageError)}
}
