package q64fixed

// mulMag computes the Q64.64 magnitude product of two non-negative operands:
// the middle 128 bits of the full 256-bit product a*b, rounded half up using
// the bit immediately below the kept range (bit 63 of the lowest partial
// product).
//
// Writing a = aHi*2^64+aLo and b = bHi*2^64+bLo, the four 64x64 partial
// products are:
//
//	p0 = aLo*bLo   (bits   0..127 of the 256-bit product)
//	p1 = aLo*bHi   (bits  64..191)
//	p2 = aHi*bLo   (bits  64..191)
//	p3 = aHi*bHi   (bits 128..255)
//
// The Q64.64 result keeps bits 64..191 of that product: p3's low word lands
// in the result's high word, p1 and p2 contribute directly, and p0's high
// word carries in as the low word's seed, with p0's bit 63 added back in as
// a round-half-up correction.
func mulMag(aHi, aLo, bHi, bLo uint64) (hi, lo uint64) {
	p0Hi, p0Lo := umul64(aLo, bLo)
	p1Hi, p1Lo := umul64(aLo, bHi)
	p2Hi, p2Lo := umul64(aHi, bLo)
	_, p3Lo := umul64(aHi, bHi)

	hi, lo = add128(p3Lo, 0, p2Hi, p2Lo)
	hi, lo = add128(hi, lo, p1Hi, p1Lo)
	hi, lo = add128(hi, lo, 0, p0Hi)
	hi, lo = add128(hi, lo, 0, p0Lo>>63)
	return hi, lo
}

// Mul returns a*b, rounded half up and wrapped on overflow in two's
// complement, same as plain fixed-width integer multiplication.
func (a Fixed) Mul(b Fixed) Fixed {
	aMag, aNeg := a.abs()
	bMag, bNeg := b.abs()

	hi, lo := mulMag(aMag.hi, aMag.lo, bMag.hi, bMag.lo)
	res := Fixed{hi: hi, lo: lo}
	if aNeg != bNeg {
		res = res.Neg()
	}
	return res
}
