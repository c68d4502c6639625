// Package gate implements the Hack architecture's combinational logic: a
// two-valued Bit with NAND as its only primitive operation, and every other
// boolean function derived from it by composition.
package gate

// Bit is a two-valued signal. Positive and Negative are the only values;
// there is no "undefined" state.
type Bit int

const (
	Negative Bit = iota
	Positive
)

// Nand is the sole primitive operation. Every other gate in this package is
// built from Nand alone.
func Nand(a, b Bit) Bit {
	if a == Positive && b == Positive {
		return Negative
	}
	return Positive
}

func Not(a Bit) Bit {
	return Nand(a, Positive)
}

func And(a, b Bit) Bit {
	return Not(Nand(a, b))
}

func Or(a, b Bit) Bit {
	return Nand(Not(a), Not(b))
}

func Xor(a, b Bit) Bit {
	return And(Or(a, b), Nand(a, b))
}

// Mux returns y when s is Positive, x otherwise.
func Mux(x, y, s Bit) Bit {
	return Or(And(x, Not(s)), And(y, s))
}

// Dmux returns (x AND NOT s, x AND s): x is routed to the first output when
// s is Negative, to the second when s is Positive.
func Dmux(x, s Bit) (Bit, Bit) {
	return And(x, Not(s)), And(x, s)
}

// FromBool converts a boolean into a Bit, Positive for true.
func FromBool(b bool) Bit {
	if b {
		return Positive
	}
	return Negative
}

func (b Bit) Bool() bool {
	return b == Positive
}
