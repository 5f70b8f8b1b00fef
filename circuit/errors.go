package circuit

import "errors"

// Validation failures are reported by wrapping one of these sentinels with the
// offending index or value. Match with errors.Is. No failure mutates the
// circuit it was reported for.
var (
	// ErrIndexOutOfRange reports a qubit or classical index outside the
	// circuit's declared counts.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidGateIndex reports an insertion position outside [0, length].
	ErrInvalidGateIndex = errors.New("invalid gate position")

	// ErrLengthMismatch reports inconsistent list lengths or parameter counts
	// within a single gate.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDimensionMismatch reports a matrix whose side is not 2^(number of
	// target indices).
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")

	// ErrDuplicateIndex reports a repeated index within a single gate's own
	// index list.
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrInvalidPauliID reports a Pauli identifier outside {0, 1, 2, 3}.
	ErrInvalidPauliID = errors.New("invalid pauli identifier")

	// ErrGateNotInvertible reports an inverse request for a gate with no
	// inverse, such as a measurement.
	ErrGateNotInvertible = errors.New("gate is not invertible")
)
