package token

// Name returns the length of the symbol or keyword name at the start of d:
// a symbol start character followed by symbol characters.
func Name(d []byte) int {
	if len(d) == 0 || !IsSymbolStart(d[0]) {
		return 0
	}
	return 1 + count(d[1:], IsSymbolChar)
}

// Namespace returns the length of the namespace at the start of d: a name
// optionally followed by '.' divided segments, as in a.b.c.
func Namespace(d []byte) int {
	i := Name(d)
	if i == 0 {
		return 0
	}
	for i < len(d) && d[i] == '.' {
		n := count(d[i+1:], IsSymbolChar)
		if n == 0 {
			break
		}
		i += 1 + n
	}
	return i
}
