package token

// Digits returns the number of leading decimal digits in d.
func Digits(d []byte) int {
	return count(d, IsDigit)
}

func OctalDigits(d []byte) int {
	return count(d, IsOctalDigit)
}

func HexDigits(d []byte) int {
	return count(d, IsHexDigit)
}

func Alphanumerics(d []byte) int {
	return count(d, IsAlphanumeric)
}

func count(d []byte, f func(byte) bool) int {
	i := 0
	for i < len(d) && f(d[i]) {
		i++
	}
	return i
}

// SignedDigits returns the length of an optionally signed run of one or
// more decimal digits at the start of d, or 0.
func SignedDigits(d []byte) int {
	i := 0
	if len(d) > 0 && IsSign(d[0]) {
		i++
	}
	n := Digits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}

// Float returns the length of the float literal at the start of d, or 0.
//
// The forms are tried longest first: digits with a fraction and an
// exponent, then digits with an exponent, then digits with a fraction.
// A bare run of digits is not a float.
func Float(d []byte) int {
	n := SignedDigits(d)
	if n == 0 {
		return 0
	}
	f := fract(d[n:])
	if f != 0 {
		if e := exp(d[n+f:]); e != 0 {
			return n + f + e
		}
	}
	if e := exp(d[n:]); e != 0 {
		return n + e
	}
	if f != 0 {
		return n + f
	}
	return 0
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	n := SignedDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := Digits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return n + 1
}
