package token

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func IsHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsAlphanumeric(c byte) bool {
	return IsLetter(c) || IsDigit(c)
}

func IsSign(c byte) bool {
	return c == '+' || c == '-'
}

// IsSymbolStart reports whether c may begin a symbol, keyword or namespace
// segment.
func IsSymbolStart(c byte) bool {
	if IsAlphanumeric(c) {
		return true
	}
	switch c {
	case '*', '!', '_', '?', '$', '%', '&', '=', '<', '>':
		return true
	}
	return false
}

// IsSymbolChar reports whether c may continue a symbol, keyword or
// namespace segment.
func IsSymbolChar(c byte) bool {
	return c == '-' || IsSymbolStart(c)
}

// IsWhitespace reports whether c is insignificant whitespace. Commas count
// as whitespace.
func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\r', '\n', '\t', ',':
		return true
	}
	return false
}

// IsDelimiter reports whether c ends an atom: whitespace, the comment
// introducer or a collection or text delimiter.
func IsDelimiter(c byte) bool {
	if IsWhitespace(c) {
		return true
	}
	switch c {
	case ';', '(', ')', '[', ']', '{', '}', '"':
		return true
	}
	return false
}

// AtBoundary reports whether the atom ending at d[i] is properly delimited.
func AtBoundary(d []byte, i int) bool {
	return i >= len(d) || IsDelimiter(d[i])
}

// Comment returns the length of the comment at the start of d including its
// line terminator, if any, or 0 if d does not start with ';'.
func Comment(d []byte) int {
	if len(d) == 0 || d[0] != ';' {
		return 0
	}
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\r', '\n':
			return i + 1
		}
	}
	return len(d)
}

// Insignificant returns the length of the run of whitespace and comments at
// the start of d.
func Insignificant(d []byte) int {
	i := 0
	for i < len(d) {
		if IsWhitespace(d[i]) {
			i++
			continue
		}
		n := Comment(d[i:])
		if n == 0 {
			break
		}
		i += n
	}
	return i
}
