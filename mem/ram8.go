package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// RAM8Input addresses one of eight 16-bit registers.
type RAM8Input struct {
	Input   gate.Bus16
	Load    gate.Bit
	Address gate.Bus3
}

// NewRAM8 builds an 8-word RAM as a feedforward wrapper around an array of
// eight 16-bit registers: the address one-hot-decodes (via Dmux8Way) which
// register's load is asserted, and the same address selects the module's
// output (via Mux8Way16). Read-address and write-address share one bus.
func NewRAM8() seq.Circuit[RAM8Input, gate.Bus16] {
	var kernel seq.Array8[Register16Input, gate.Bus16]
	for i := range kernel {
		kernel[i] = NewRegister16()
	}
	return seq.NewFeedforward(
		seq.Circuit[[8]Register16Input, [8]gate.Bus16](kernel),
		seq.ForwardDef[RAM8Input, [8]Register16Input, [8]gate.Bus16, gate.Bus3, gate.Bus16]{
			Pre: func(in RAM8Input) ([8]Register16Input, gate.Bus3) {
				oneHot := gate.Dmux8Way(gate.Positive, in.Address)
				var ki [8]Register16Input
				for i := 0; i < 8; i++ {
					ki[i] = Register16Input{Input: in.Input, Load: gate.And(in.Load, oneHot[i])}
				}
				return ki, in.Address
			},
			Post: func(ko [8]gate.Bus16, addr gate.Bus3) gate.Bus16 {
				return gate.Mux8Way16(ko, addr)
			},
		},
	)
}
