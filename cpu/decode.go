package cpu

import "github.com/jyane/hackvm/gate"

// decoded holds the instruction bits the datapath needs, extracted once per
// tick per spec.md §4.E's decode step.
type decoded struct {
	c       bool // instruction[0]: this is a C-instruction
	a       bool // instruction[3]: ALU's second operand is M rather than A
	ctl     gate.AluControl
	writeA  bool // instruction[10]
	writeD  bool // instruction[11]
	writeM  bool // instruction[12]
	j1      bool // instruction[13]: jump on negative
	j2      bool // instruction[14]: jump on zero
	j3      bool // instruction[15]: jump on positive
	reset   bool
}

func decode(instruction gate.Bus16, reset gate.Bit) decoded {
	return decoded{
		c: instruction[0] == gate.Positive,
		a: instruction[3] == gate.Positive,
		ctl: gate.AluControl{
			Zx: instruction[4],
			Nx: instruction[5],
			Zy: instruction[6],
			Ny: instruction[7],
			F:  instruction[8],
			No: instruction[9],
		},
		writeA: instruction[10] == gate.Positive,
		writeD: instruction[11] == gate.Positive,
		writeM: instruction[12] == gate.Positive,
		j1:     instruction[13] == gate.Positive,
		j2:     instruction[14] == gate.Positive,
		j3:     instruction[15] == gate.Positive,
		reset:  reset == gate.Positive,
	}
}
