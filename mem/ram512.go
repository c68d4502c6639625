package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// RAM512Input addresses one of 512 words: top 3 bits pick a RAM64 bank, the
// remaining 6 address the word within it.
type RAM512Input struct {
	Input   gate.Bus16
	Load    gate.Bit
	Address [9]gate.Bit
}

func NewRAM512() seq.Circuit[RAM512Input, gate.Bus16] {
	var kernel seq.Array8[RAM64Input, gate.Bus16]
	for i := range kernel {
		kernel[i] = NewRAM64()
	}
	return seq.NewFeedforward(
		seq.Circuit[[8]RAM64Input, [8]gate.Bus16](kernel),
		seq.ForwardDef[RAM512Input, [8]RAM64Input, [8]gate.Bus16, gate.Bus3, gate.Bus16]{
			Pre: func(in RAM512Input) ([8]RAM64Input, gate.Bus3) {
				bank := gate.Bus3FromSlice(in.Address[:3])
				var rest [6]gate.Bit
				copy(rest[:], in.Address[3:])
				oneHot := gate.Dmux8Way(gate.Positive, bank)
				var ki [8]RAM64Input
				for i := 0; i < 8; i++ {
					ki[i] = RAM64Input{Input: in.Input, Load: gate.And(in.Load, oneHot[i]), Address: rest}
				}
				return ki, bank
			},
			Post: func(ko [8]gate.Bus16, bank gate.Bus3) gate.Bus16 {
				return gate.Mux8Way16(ko, bank)
			},
		},
	)
}
