package gate

// AluControl carries the six control bits that select one of the Hack
// ALU's 18 functions.
type AluControl struct {
	Zx, Nx Bit // zero / negate x
	Zy, Ny Bit // zero / negate y
	F      Bit // 1: x + y, 0: x AND y
	No     Bit // negate the result
}

type AluOutput struct {
	Out Bus16
	Zr  Bit // 1 when Out is all zero
	Ng  Bit // copy of Out's sign bit
}

// Alu computes one of 18 functions of x and y, selected by ctl, and the zr
// and ng status flags.
func Alu(x, y Bus16, ctl AluControl) AluOutput {
	zero := Bus16{}
	zx := Mux16(x, zero, ctl.Zx)
	nx := Mux16(zx, Not16(zx), ctl.Nx)
	zy := Mux16(y, zero, ctl.Zy)
	ny := Mux16(zy, Not16(zy), ctl.Ny)
	andResult := And16(nx, ny)
	addResult := Add16(nx, ny)
	f := Mux16(andResult, addResult, ctl.F)
	out := Mux16(f, Not16(f), ctl.No)
	return AluOutput{
		Out: out,
		Zr:  Not(Or16Way(out)),
		Ng:  out[0],
	}
}
