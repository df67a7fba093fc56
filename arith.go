package q64fixed

import "math/bits"

func add128(aHi, aLo, bHi, bLo uint64) (hi, lo uint64) {
	var carry uint64
	lo, carry = bits.Add64(aLo, bLo, 0)
	hi, _ = bits.Add64(aHi, bHi, carry)
	return
}

func sub128(aHi, aLo, bHi, bLo uint64) (hi, lo uint64) {
	var borrow uint64
	lo, borrow = bits.Sub64(aLo, bLo, 0)
	hi, _ = bits.Sub64(aHi, bHi, borrow)
	return
}

func neg128(hi, lo uint64) (rHi, rLo uint64) {
	return sub128(0, 0, hi, lo)
}

// scmp128 compares (aHi:aLo) and (bHi:bLo) as signed 128-bit integers (hi
// carries the sign).
func scmp128(aHi, aLo, bHi, bLo uint64) int {
	sa, sb := int64(aHi), int64(bHi)
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	switch {
	case aLo < bLo:
		return -1
	case aLo > bLo:
		return 1
	default:
		return 0
	}
}

// Not returns the bitwise complement of v.
func (v Fixed) Not() Fixed {
	return Fixed{hi: ^v.hi, lo: ^v.lo}
}

// And returns the bitwise AND of a and b.
func (a Fixed) And(b Fixed) Fixed {
	return Fixed{hi: a.hi & b.hi, lo: a.lo & b.lo}
}

// Or returns the bitwise OR of a and b.
func (a Fixed) Or(b Fixed) Fixed {
	return Fixed{hi: a.hi | b.hi, lo: a.lo | b.lo}
}

// Xor returns the bitwise XOR of a and b.
func (a Fixed) Xor(b Fixed) Fixed {
	return Fixed{hi: a.hi ^ b.hi, lo: a.lo ^ b.lo}
}

// Add returns a+b. Overflow wraps, same as ordinary two's-complement
// integer addition.
func (a Fixed) Add(b Fixed) Fixed {
	hi, lo := add128(a.hi, a.lo, b.hi, b.lo)
	return Fixed{hi: hi, lo: lo}
}

// Sub returns a-b. Overflow wraps.
func (a Fixed) Sub(b Fixed) Fixed {
	hi, lo := sub128(a.hi, a.lo, b.hi, b.lo)
	return Fixed{hi: hi, lo: lo}
}

// Neg returns -v. Negating Min wraps back to Min, same as negating
// math.MinInt64 wraps in ordinary two's-complement arithmetic.
func (v Fixed) Neg() Fixed {
	hi, lo := neg128(v.hi, v.lo)
	return Fixed{hi: hi, lo: lo}
}

// abs returns the magnitude of v as an unsigned bit pattern, along with
// whether v was negative. abs(Min) is Min itself (its negation wraps), with
// neg reported true -- callers that reapply the sign via Neg get back Min
// unchanged, which is the correct (wrapped) result.
func (v Fixed) abs() (mag Fixed, neg bool) {
	if v.IsNeg() {
		return v.Neg(), true
	}
	return v, false
}

func normShift(amount int) uint {
	m := amount % 128
	if m < 0 {
		m += 128
	}
	return uint(m)
}

// Shl returns v shifted left by amount bits, after reducing amount modulo
// 128. A negative amount shifts the other way: Shl(v, -k) is Shr(v, k). Bits
// shifted past bit 127 are discarded; vacated low bits are zero-filled.
func (v Fixed) Shl(amount int) Fixed {
	if amount < 0 {
		return v.Shr(int(normShift(-amount)))
	}
	n := normShift(amount)
	switch {
	case n == 0:
		return v
	case n >= 64:
		return Fixed{hi: v.lo << (n - 64), lo: 0}
	default:
		return Fixed{hi: (v.hi << n) | (v.lo >> (64 - n)), lo: v.lo << n}
	}
}

// Shr returns v shifted right by amount bits (logical, zero-fill), after
// reducing amount modulo 128. A negative amount shifts the other way:
// Shr(v, -k) is Shl(v, k).
func (v Fixed) Shr(amount int) Fixed {
	if amount < 0 {
		return v.Shl(int(normShift(-amount)))
	}
	n := normShift(amount)
	switch {
	case n == 0:
		return v
	case n >= 64:
		return Fixed{hi: 0, lo: v.hi >> (n - 64)}
	default:
		return Fixed{hi: v.hi >> n, lo: (v.lo >> n) | (v.hi << (64 - n))}
	}
}

// Sar returns v shifted right by amount bits (arithmetic, sign-fill), after
// reducing amount modulo 128.
func (v Fixed) Sar(amount int) Fixed {
	n := normShift(amount)
	switch {
	case n == 0:
		return v
	case n >= 64:
		return Fixed{
			hi: uint64(int64(v.hi) >> 63),
			lo: uint64(int64(v.hi) >> (n - 64)),
		}
	default:
		return Fixed{
			hi: uint64(int64(v.hi) >> n),
			lo: (v.lo >> n) | (v.hi << (64 - n)),
		}
	}
}

// IsNeg reports whether v is negative.
func (v Fixed) IsNeg() bool {
	return int64(v.hi) < 0
}

// IsZero reports whether v is exactly 0.
func (v Fixed) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}
