package q64fixed

import "math/bits"

// mul128by64 returns the 192-bit product of the unsigned 128-bit value
// (aHi:aLo) and the 64-bit value b, as three words (hi:mid:lo).
func mul128by64(aHi, aLo, b uint64) (hi, mid, lo uint64) {
	w, lo := bits.Mul64(aLo, b)
	hi, z := bits.Mul64(aHi, b)

	var carry uint64
	mid, carry = bits.Add64(w, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, mid, lo
}

// div192by128 computes floor(n/y) for an unsigned 192-bit dividend
// (hi:mid:lo) and a 128-bit divisor y=(yHi:yLo) with yHi != 0, via Knuth's
// long division algorithm on 64-bit digits: estimate the high quotient
// digit from the top two words, correct it if the estimate overshot, then
// repeat for the low digit using the not-yet-consumed low word of the
// dividend. This never overflows 128 bits, since a 192-bit dividend divided
// by a divisor of at least 2^64 always produces a quotient under 2^128.
func div192by128(hi, mid, lo, yHi, yLo uint64) (qHi, qLo uint64) {
	assertf(yHi != 0, "div192by128: divisor high word must be nonzero, got (%#x:%#x)", yHi, yLo)

	shift := clz64(yHi)

	estY := (yHi << shift) | (yLo >> (64 - shift))
	estHi := hi >> (64 - shift)
	estLo := (hi << shift) | (mid >> (64 - shift))

	qHi, _ = bits.Div64(estHi, estLo, estY)

	_, prodHi, prodLo := mul128by64(yHi, yLo, qHi)

	interimMid, borrow := bits.Sub64(mid, prodLo, 0)
	interimHi, borrow := bits.Sub64(hi, prodHi, borrow)
	if borrow != 0 {
		qHi--
		var carry uint64
		interimMid, carry = bits.Add64(interimMid, yLo, 0)
		interimHi, _ = bits.Add64(interimHi, yHi, carry)
	}

	finalHi := (interimHi << shift) | (interimMid >> (64 - shift))
	finalLo := (interimMid << shift) | (lo >> (64 - shift))

	if finalHi >= estY {
		// The truncated interim remainder equals the truncated, normalized
		// divisor: the true remainder is still smaller, but the low digit
		// estimate saturates, so take it as all-ones and stop.
		qLo = ^uint64(0)
		return qHi, qLo
	}

	qLo, _ = bits.Div64(finalHi, finalLo, estY)

	pHi, pMid, pLo := mul128by64(yHi, yLo, qLo)
	remLo, b0 := bits.Sub64(lo, pLo, 0)
	remHi, b1 := bits.Sub64(interimMid, pMid, b0)
	_, b2 := bits.Sub64(interimHi, pHi, b1)

	for b2 != 0 {
		qLo--
		var carry uint64
		remLo, carry = bits.Add64(remLo, yLo, 0)
		remHi, carry = bits.Add64(remHi, yHi, carry)
		if carry != 0 {
			b2 = 0
		}
	}
	_, _ = remLo, remHi

	return qHi, qLo
}

// div192 computes floor(n/d) for the unsigned 192-bit dividend
// (nHi:nMid:nLo) and the unsigned 128-bit divisor (dHi:dLo). ok is false
// when d is zero or the quotient would not fit in 128 bits.
func div192(nHi, nMid, nLo, dHi, dLo uint64) (qHi, qLo uint64, ok bool) {
	if dHi == 0 && dLo == 0 {
		return 0, 0, false
	}
	if dHi == 0 {
		if nHi >= dLo {
			return 0, 0, false
		}
		q1, r := udiv128(nHi, nMid, dLo)
		q0, _ := udiv128(r, nLo, dLo)
		return q1, q0, true
	}
	qHi, qLo = div192by128(nHi, nMid, nLo, dHi, dLo)
	return qHi, qLo, true
}

// Div returns a/b, truncating toward zero within the kept precision and
// rounding is exact wherever the Q64.64 result is representable. Division
// by zero saturates to MaxFixed (or MinFixed, if a is negative); a quotient
// outside the Fixed range also saturates to MaxFixed/MinFixed.
func (a Fixed) Div(b Fixed) Fixed {
	aMag, aNeg := a.abs()
	bMag, bNeg := b.abs()
	negResult := aNeg != bNeg

	if bMag.IsZero() {
		if negResult {
			return MinFixed
		}
		return MaxFixed
	}

	qHi, qLo, ok := div192(aMag.hi, aMag.lo, 0, bMag.hi, bMag.lo)
	// A magnitude of 2^127 or more fits only as MinFixed itself.
	if ok && int64(qHi) < 0 && !(negResult && qHi == 1<<63 && qLo == 0) {
		ok = false
	}
	if !ok {
		if negResult {
			return MinFixed
		}
		return MaxFixed
	}

	res := Fixed{hi: qHi, lo: qLo}
	if negResult {
		res = res.Neg()
	}
	return res
}

// Mod returns a - trunc(a/b)*b, where trunc(a/b) is the integer-only
// (fraction discarded) quotient truncated toward zero. Division by zero
// saturates to MaxFixed/MinFixed exactly as Div does.
func (a Fixed) Mod(b Fixed) Fixed {
	aMag, aNeg := a.abs()
	bMag, bNeg := b.abs()
	negQuotient := aNeg != bNeg

	if bMag.IsZero() {
		if negQuotient {
			return MinFixed
		}
		return MaxFixed
	}

	// The integer-only quotient magnitude is floor(aMag/bMag) as plain
	// (unscaled) 128-bit integers -- no 2^64 scaling, since we only want
	// the whole part of a/b. That whole part is the quotient's low word.
	_, qLo, _ := div192(0, aMag.hi, aMag.lo, bMag.hi, bMag.lo)

	q := Fixed{hi: qLo, lo: 0}
	if negQuotient {
		q = q.Neg()
	}
	return a.Sub(q.Mul(b))
}
