package tlog

import "strconv"

// Base selects how integral appends are rendered. It is shared logger-wide,
// not per-record: goroutines logging with different bases observe each
// other's setting.
type Base uint8

const (
	// Dec renders integrals as decimal digits. This is the default.
	// Decimal is the only base where signedness matters.
	Dec Base = iota
	// Hex renders the value's bit pattern as lowercase hex digits, no prefix.
	Hex
	// Oct renders the value's bit pattern as octal digits, no prefix.
	Oct
	// Bin renders the value's bit pattern as its minimal-width
	// two's-complement digits; zero renders as "0".
	Bin
)

// Base tokens double as chainable modifiers.
func (b Base) applyTo(l *Logger) { l.base = b }

// formatIntegral renders a 64-bit pattern in the given base. Only decimal
// distinguishes signed from unsigned; hex, octal and binary reinterpret the
// bits directly. An out-of-range base falls back to decimal.
func formatIntegral(bits uint64, signed bool, base Base) string {
	switch base {
	case Hex:
		return strconv.FormatUint(bits, 16)
	case Oct:
		return strconv.FormatUint(bits, 8)
	case Bin:
		return strconv.FormatUint(bits, 2)
	default:
		if signed {
			return strconv.FormatInt(int64(bits), 10)
		}
		return strconv.FormatUint(bits, 10)
	}
}

// formatFloat renders floats with six fractional digits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
