package q64fixed

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b,
// treating both as signed values.
func (a Fixed) Cmp(b Fixed) int {
	return scmp128(a.hi, a.lo, b.hi, b.lo)
}

// Eq reports whether a equals b.
func (a Fixed) Eq(b Fixed) bool {
	return a.hi == b.hi && a.lo == b.lo
}

// Lt reports whether a is less than b.
func (a Fixed) Lt(b Fixed) bool { return a.Cmp(b) < 0 }

// Gt reports whether a is greater than b.
func (a Fixed) Gt(b Fixed) bool { return a.Cmp(b) > 0 }

// Lte reports whether a is less than or equal to b.
func (a Fixed) Lte(b Fixed) bool { return a.Cmp(b) <= 0 }

// Gte reports whether a is greater than or equal to b.
func (a Fixed) Gte(b Fixed) bool { return a.Cmp(b) >= 0 }

// Min returns the lesser of a and b.
func Min(a, b Fixed) Fixed {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Fixed) Fixed {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Floor zeros the fractional half and, when the value is negative with a
// nonzero fraction, decrements the integer half by one. This is the literal
// behavior of the C library this type is modeled on: for a value already at
// a negative integer boundary (e.g. exactly -2.0) it is ordinary floor, but
// for a strictly negative fraction (e.g. -0.5) it lands one below the
// mathematical floor. Preserved deliberately for bit-exact compatibility
// rather than "corrected", same as the formatter's 21st-digit behavior.
func (v Fixed) Floor() Fixed {
	hi := v.hi
	if v.IsNeg() && v.lo != 0 {
		hi--
	}
	return Fixed{hi: hi, lo: 0}
}

// Ceil zeros the fractional half and, when the value is positive with a
// nonzero fraction, increments the integer half by one. Like Floor, this
// mirrors the original library's literal behavior rather than a
// mathematically pure ceiling: a negative value with a nonzero fraction is
// left at its integer half (Ceil(-0.5) is -1).
func (v Fixed) Ceil() Fixed {
	hi := v.hi
	if !v.IsNeg() && v.lo != 0 {
		hi++
	}
	return Fixed{hi: hi, lo: 0}
}
