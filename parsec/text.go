package parsec

// Word matches a literal string, atom by atom, over a rune tape.
func Word(word string) Parser[rune, string] {
	runes := []rune(word)
	parsers := make([]Parser[rune, rune], len(runes))
	for i, r := range runes {
		parsers[i] = AtomP(r)
	}
	return Refined[rune, []rune, string](Vec(parsers...), func([]rune) string { return word })
}

func isDigit(r rune) (rune, bool) {
	if r >= '0' && r <= '9' {
		return r, true
	}
	return 0, false
}

// Numeric matches one or more decimal digits and parses them as a
// nonnegative int32.
func Numeric() Parser[rune, int32] {
	first := Func(isDigit)
	rest := Repeat(Func(isDigit))
	return Refined(T2(first, rest), func(p Pair[rune, []rune]) int32 {
		v := int32(p.First - '0')
		for _, d := range p.Second {
			v = v*10 + int32(d-'0')
		}
		return v
	})
}
