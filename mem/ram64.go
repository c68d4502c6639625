package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// RAM64Input addresses one of 64 words: the top 3 bits pick a RAM8 bank,
// the remaining 3 bits address the word within it.
type RAM64Input struct {
	Input   gate.Bus16
	Load    gate.Bit
	Address [6]gate.Bit
}

func NewRAM64() seq.Circuit[RAM64Input, gate.Bus16] {
	var kernel seq.Array8[RAM8Input, gate.Bus16]
	for i := range kernel {
		kernel[i] = NewRAM8()
	}
	return seq.NewFeedforward(
		seq.Circuit[[8]RAM8Input, [8]gate.Bus16](kernel),
		seq.ForwardDef[RAM64Input, [8]RAM8Input, [8]gate.Bus16, gate.Bus3, gate.Bus16]{
			Pre: func(in RAM64Input) ([8]RAM8Input, gate.Bus3) {
				bank := gate.Bus3FromSlice(in.Address[:3])
				rest := gate.Bus3FromSlice(in.Address[3:])
				oneHot := gate.Dmux8Way(gate.Positive, bank)
				var ki [8]RAM8Input
				for i := 0; i < 8; i++ {
					ki[i] = RAM8Input{Input: in.Input, Load: gate.And(in.Load, oneHot[i]), Address: rest}
				}
				return ki, bank
			},
			Post: func(ko [8]gate.Bus16, bank gate.Bus3) gate.Bus16 {
				return gate.Mux8Way16(ko, bank)
			},
		},
	)
}
