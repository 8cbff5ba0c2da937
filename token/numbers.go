package token

// number scans a JSON number at the start of d and returns the count of
// bytes matched. Grammar per RFC 8259: optional '-', then a lone '0' or
// a nonzero digit run, optional fraction, optional exponent. No leading
// '+', no hex, no NaN/Infinity.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	switch {
	case i < len(d) && d[i] == '0':
		i++
		if i < len(d) && asciiDigit(d[i]) {
			return i, ErrNumberLeadingZero
		}
	case i < len(d) && asciiDigit(d[i]):
		i += asciiDigits(d[i:])
	default:
		return i, ErrNumber
	}
	if i < len(d) && d[i] == '.' {
		i++
		n := asciiDigits(d[i:])
		if n == 0 {
			// . must be followed by 1 or more digits rfc 8259
			return i, ErrNumber
		}
		i += n
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		n := asciiDigits(d[i:])
		if n == 0 {
			return i, ErrNumber
		}
		i += n
	}
	return i, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
