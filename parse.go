package q64fixed

// Parse reads a signed decimal (or, with a leading "0x"/"0X", hexadecimal)
// Fixed from the start of s, stopping at the first byte it can't consume.
// It reports the value parsed and the number of bytes consumed. Like
// r128FromString's endptr, the consumed count always marks the furthest
// position the scan reached -- including whitespace, a sign, and a "0x"
// prefix -- even when no digits follow, so Parse("-abc") is (Zero, 1) and
// Parse("0xzz") is (Zero, 2), not (Zero, 0). Only a string with no
// consumable prefix at all (no whitespace, sign, "0x", or digits) reports
// 0. This is a permissive scanner, not a validator: whole-part digits
// accumulate with plain unsigned wraparound on overflow rather than an
// error. Fractional digits are rounded to the nearest multiple of 2^-64
// (halfway rounds up), so the 20-digit output of String parses back to the
// same value.
func Parse(s string) (Fixed, int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}

	var hi uint64
	for i < len(s) {
		d, ok := digitVal(s[i], base)
		if !ok {
			break
		}
		hi = hi*base + d
		i++
	}

	var lo uint64
	if i < len(s) && s[i] == DecimalSeparator {
		j := i + 1
		fracStart := j
		for j < len(s) {
			if _, ok := digitVal(s[j], base); !ok {
				break
			}
			j++
		}
		if j > fracStart {
			var rem uint64
			for k := j - 1; k >= fracStart; k-- {
				d, _ := digitVal(s[k], base)
				lo, rem = udiv128(d, lo, base)
			}
			// Round to the nearest 2^-64 step: the last remainder is at
			// least half the base exactly when the dropped part is >= 1/2.
			if 2*rem >= base {
				lo++
				if lo == 0 {
					hi++
				}
			}
			i = j
		}
	}

	res := Fixed{hi: hi, lo: lo}
	if neg {
		res = res.Neg()
	}
	return res, i
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	}
	return false
}

func digitVal(b byte, base uint64) (uint64, bool) {
	var v uint64
	switch {
	case b >= '0' && b <= '9':
		v = uint64(b - '0')
	case base == 16 && b >= 'a' && b <= 'f':
		v = uint64(b-'a') + 10
	case base == 16 && b >= 'A' && b <= 'F':
		v = uint64(b-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}
