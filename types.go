/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package q64fixed implements a 128-bit signed fixed-point number in Q64.64
// format: 64 integer bits (including sign) and 64 fractional bits, stored as
// two's-complement across two uint64 halves.
//
// Every operation saturates or wraps instead of returning an error: multiply
// rounds half up, divide saturates to the type's extremes on overflow or
// division by zero, and add/sub/negate wrap like ordinary two's-complement
// integers.
package q64fixed

// Fixed is a Q64.64 fixed-point number. Its zero value is 0.0.
type Fixed struct {
	hi uint64 // integer part and sign, weight 2^0..2^63
	lo uint64 // fractional part, weight 2^-1..2^-64
}

// FromBits builds a Fixed directly from its integer half (hi, top bit is the
// sign) and fractional half (lo), bypassing any scaling.
func FromBits(hi, lo uint64) Fixed {
	return Fixed{hi: hi, lo: lo}
}

// Bits returns the raw (hi, lo) halves of v.
func (v Fixed) Bits() (hi, lo uint64) {
	return v.hi, v.lo
}

// Notable constants of the Q64.64 range. MinFixed and MaxFixed are named
// with the type suffix, rather than bare Min/Max, to leave those names free
// for the two-argument Min and Max comparison functions.
var (
	MinFixed = Fixed{hi: 0x8000000000000000, lo: 0}
	MaxFixed = Fixed{hi: 0x7fffffffffffffff, lo: 0xffffffffffffffff}
	Smallest = Fixed{hi: 0, lo: 1}
	Zero     = Fixed{}
	One      = Fixed{hi: 1, lo: 0}
)

// DecimalSeparator is the byte Format and Parse use to delimit the integer
// and fractional parts of a decimal string. It defaults to '.'. Like the
// single-character global it is modeled on, it is process-wide mutable
// state: set it once at startup, before any concurrent Format/Parse calls.
var DecimalSeparator byte = '.'
