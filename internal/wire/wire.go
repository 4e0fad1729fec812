// Package wire holds the byte-level pieces of the JSON text format that the
// token writer does not cover: string quoting with optional ASCII-only output,
// float and rational number literals, and number literal validation.
package wire

import (
	"bytes"
	"math"
	"math/big"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

var (
	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
)

// AppendString appends s as a quoted JSON string.
//
// Control characters, '"' and '\\' are always escaped, as are U+2028 and U+2029.
// Invalid UTF-8 bytes are written as \ufffd. With asciiOnly set every code
// point >= 0x80 is written as \uXXXX (surrogate pairs above U+FFFF), so the
// output never contains a byte >= 0x80.
func AppendString(dst []byte, s string, asciiOnly bool) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"', '\\':
				dst = append(dst, '\\', b)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
			}
			i++
			start = i
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `\ufffd`...)
			i += size
			start = i
			continue
		}
		if asciiOnly || r == '\u2028' || r == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = appendEscapedRune(dst, r)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

func appendEscapedRune(dst []byte, r rune) []byte {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		dst = appendU4(dst, r1)
		return appendU4(dst, r2)
	}
	return appendU4(dst, r)
}

func appendU4(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf])
}

// AppendFloat appends f as a JSON number that always reads back as a
// floating-point literal: the output carries either a '.' or an exponent.
// bits is 32 or 64. It reports false for NaN and ±Inf and appends nothing.
func AppendFloat(dst []byte, f float64, bits int) ([]byte, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst, false
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, bits)
	if format == 'e' {
		// e-09 -> e-9
		n := len(dst)
		if n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst, true
	}
	if bytes.IndexByte(dst[start:], '.') < 0 {
		dst = append(dst, '.', '0')
	}
	return dst, true
}

// AppendRat appends r as a JSON number.
//
// Integral rationals are written as integers. A rational whose reduced
// denominator has no prime factors other than 2 and 5 has a terminating decimal
// expansion and is written exactly. Any other rational is written as its
// nearest float64, which is lossy; exact reports which case applied. ok is
// false when that float64 approximation overflows.
func AppendRat(dst []byte, r *big.Rat) (out []byte, exact, ok bool) {
	if r.IsInt() {
		return r.Num().Append(dst, 10), true, true
	}
	if digits, terminating := fractionDigits(r.Denom()); terminating {
		return append(dst, r.FloatString(digits)...), true, true
	}
	f, _ := r.Float64()
	out, ok = AppendFloat(dst, f, 64)
	return out, false, ok
}

// fractionDigits reports how many fractional digits 1/d needs when d = 2^a*5^b.
func fractionDigits(d *big.Int) (int, bool) {
	twos := d.TrailingZeroBits()
	q := new(big.Int).Rsh(d, twos)

	var fives uint
	rem := new(big.Int)
	for q.Cmp(bigOne) > 0 {
		quo := new(big.Int)
		quo.QuoRem(q, bigFive, rem)
		if rem.Sign() != 0 {
			return 0, false
		}
		q = quo
		fives++
	}
	return int(max(twos, fives)), true
}

// ValidNumber reports whether s is a JSON number literal:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func ValidNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
		if s == "" {
			return false
		}
	}

	switch {
	case s[0] == '0':
		s = s[1:]
	case '1' <= s[0] && s[0] <= '9':
		s = s[1:]
		for len(s) > 0 && isDigit(s[0]) {
			s = s[1:]
		}
	default:
		return false
	}

	if len(s) >= 2 && s[0] == '.' && isDigit(s[1]) {
		s = s[2:]
		for len(s) > 0 && isDigit(s[0]) {
			s = s[1:]
		}
	}

	if len(s) >= 2 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if s[0] == '+' || s[0] == '-' {
			s = s[1:]
			if s == "" {
				return false
			}
		}
		if !isDigit(s[0]) {
			return false
		}
		for len(s) > 0 && isDigit(s[0]) {
			s = s[1:]
		}
	}
	return s == ""
}

// IsInteger reports whether a valid number literal has neither a fraction nor
// an exponent part.
func IsInteger(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
