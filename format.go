package q64fixed

import "strings"

// Sign controls when Format prints a sign character for non-negative values.
type Sign int

const (
	// SignDefault prints '-' for negative values and nothing for others.
	SignDefault Sign = iota
	// SignSpace prints a leading space in place of the sign for non-negative
	// values.
	SignSpace
	// SignPlus prints a leading '+' for non-negative values.
	SignPlus
)

// FormatOptions controls how Format renders a Fixed as decimal text. The
// zero value renders with default sign handling, no minimum width, and
// Precision 0 (no fractional digits, rounded half up); DefaultFormat
// instead renders up to 20 fractional digits with trailing zeros dropped.
type FormatOptions struct {
	Sign         Sign
	Width        int
	Precision    int  // < 0 means "up to 20 digits, no trailing zeros"
	ZeroPad      bool
	ForceDecimal bool // print the decimal point even with zero fractional digits
	LeftAlign    bool
}

// DefaultFormat is the option set String uses.
var DefaultFormat = FormatOptions{Precision: -1}

// String renders v with DefaultFormat.
func (v Fixed) String() string {
	return v.Format(DefaultFormat)
}

// Format renders v as decimal text per opts. At most 20 fractional digits
// are computed; requested digits beyond the 20th are zeros. Where the digit
// limit (the requested precision, or 20) cuts off a nonzero tail, the last
// kept digit is rounded half up and any resulting carry propagates into the
// whole part.
func (v Fixed) Format(opts FormatOptions) string {
	mag, neg := v.abs()

	width := opts.Width
	if width < 0 {
		width = 0
	}

	fullPrecision := true
	precision := opts.Precision
	if precision < 0 {
		fullPrecision = false
		precision = 20
	}

	whole := mag.hi
	var frac []byte

	if mag.lo != 0 || opts.ForceDecimal {
		lo := mag.lo
		for lo != 0 || (fullPrecision && precision > 0) {
			if len(frac) == precision || len(frac) == 20 {
				if int64(lo) < 0 {
					// round half up, propagating the carry backwards
					carried := false
					for i := len(frac) - 1; i >= 0; i-- {
						if frac[i] != '9' {
							frac[i]++
							carried = true
							break
						}
						frac[i] = '0'
					}
					if !carried {
						whole++
					}
				}
				break
			}
			digit, newLo := umul64(lo, 10)
			frac = append(frac, byte(digit)+'0')
			lo = newLo
		}
		if fullPrecision {
			for len(frac) < precision {
				frac = append(frac, '0')
			}
		} else {
			for len(frac) > 0 && frac[len(frac)-1] == '0' {
				frac = frac[:len(frac)-1]
			}
		}
	}

	hasDecimal := len(frac) > 0 || opts.ForceDecimal

	var wholeDigits []byte
	w := whole
	for {
		wholeDigits = append(wholeDigits, byte(w%10)+'0')
		w /= 10
		if w == 0 {
			break
		}
	}
	// wholeDigits is least-significant-first; reverse to read order.
	for i, j := 0, len(wholeDigits)-1; i < j; i, j = i+1, j-1 {
		wholeDigits[i], wholeDigits[j] = wholeDigits[j], wholeDigits[i]
	}

	var body strings.Builder
	body.Write(wholeDigits)
	if hasDecimal {
		body.WriteByte(DecimalSeparator)
		body.Write(frac)
	}

	var signByte byte
	switch {
	case neg:
		signByte = '-'
	case opts.Sign == SignPlus:
		signByte = '+'
	case opts.Sign == SignSpace:
		signByte = ' '
	}

	bodyStr := body.String()
	padCnt := width - len(bodyStr)
	if signByte != 0 {
		padCnt--
	}
	if padCnt < 0 {
		padCnt = 0
	}

	var out strings.Builder
	padChar := byte(' ')
	if opts.ZeroPad {
		padChar = '0'
	}

	if !opts.LeftAlign && opts.ZeroPad {
		if signByte != 0 {
			out.WriteByte(signByte)
		}
		for i := 0; i < padCnt; i++ {
			out.WriteByte(padChar)
		}
	} else if !opts.LeftAlign {
		for i := 0; i < padCnt; i++ {
			out.WriteByte(padChar)
		}
		if signByte != 0 {
			out.WriteByte(signByte)
		}
	} else {
		if signByte != 0 {
			out.WriteByte(signByte)
		}
	}

	out.WriteString(bodyStr)

	if opts.LeftAlign {
		for i := 0; i < padCnt; i++ {
			out.WriteByte(' ')
		}
	}

	return out.String()
}

// ParseFormat parses a printf-style format spec (flags, width, precision,
// with an optional and ignored trailing verb byte) into FormatOptions.
// Recognized flags are space, '+', '0', '-' and '#' (force the decimal
// point); a leading '%' is optional and stripped if present.
func ParseFormat(spec string) FormatOptions {
	opts := DefaultFormat
	i := 0
	if i < len(spec) && spec[i] == '%' {
		i++
	}

flags:
	for i < len(spec) {
		switch spec[i] {
		case ' ':
			if opts.Sign != SignPlus {
				opts.Sign = SignSpace
			}
			i++
		case '+':
			opts.Sign = SignPlus
			i++
		case '0':
			opts.ZeroPad = true
			i++
		case '-':
			opts.LeftAlign = true
			i++
		case '#':
			opts.ForceDecimal = true
			i++
		default:
			break flags
		}
	}

	width := 0
	hasWidth := false
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		hasWidth = true
		width = width*10 + int(spec[i]-'0')
		i++
	}
	if hasWidth {
		opts.Width = width
	}

	if i < len(spec) && spec[i] == '.' {
		i++
		precision := 0
		for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
			precision = precision*10 + int(spec[i]-'0')
			i++
		}
		opts.Precision = precision
	}

	return opts
}
