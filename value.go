package ajson

// Components is the decomposed form of a parsed number (sign, integer/decimal
// digit runs, decimal-place count, exponent sign/magnitude), kept without
// forcing a lossy combination into a float64 up front. Digits that do not fit
// the 64-bit accumulators are dropped with rounding, so very long literals are
// not reproduced exactly.
type Components struct {
	// Positive is false when the literal began with '-'.
	Positive bool
	// ExponentPositive is false when the exponent began with '-'. Meaningless
	// when Exponent is 0 and no exponent marker was present.
	ExponentPositive bool
	// IsInteger is true when the literal had no '.', no exponent, and was not a
	// negative zero ("-0" is not an integer).
	IsInteger bool
	// Integer is the literal's leading integer-part digits; once another digit
	// would overflow uint64, that and the remaining integer digits are counted in
	// Exponent instead (see tokenizer_number.go's overflow handling).
	Integer uint64
	// Decimal is the literal's fractional-part digits (without the decimal
	// point), saturating independently of Integer.
	Decimal uint64
	// DecimalPlaces is the count of digits folded into Decimal.
	DecimalPlaces uint64
	// Exponent is the magnitude of the exponent, including any digits pushed out
	// of Integer by overflow.
	Exponent uint64
}
