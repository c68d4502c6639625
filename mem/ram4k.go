package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// RAM4kInput addresses one of 4096 words: top 3 bits pick a RAM512 bank,
// the remaining 9 address the word within it.
type RAM4kInput struct {
	Input   gate.Bus16
	Load    gate.Bit
	Address [12]gate.Bit
}

func NewRAM4k() seq.Circuit[RAM4kInput, gate.Bus16] {
	var kernel seq.Array8[RAM512Input, gate.Bus16]
	for i := range kernel {
		kernel[i] = NewRAM512()
	}
	return seq.NewFeedforward(
		seq.Circuit[[8]RAM512Input, [8]gate.Bus16](kernel),
		seq.ForwardDef[RAM4kInput, [8]RAM512Input, [8]gate.Bus16, gate.Bus3, gate.Bus16]{
			Pre: func(in RAM4kInput) ([8]RAM512Input, gate.Bus3) {
				bank := gate.Bus3FromSlice(in.Address[:3])
				var rest [9]gate.Bit
				copy(rest[:], in.Address[3:])
				oneHot := gate.Dmux8Way(gate.Positive, bank)
				var ki [8]RAM512Input
				for i := 0; i < 8; i++ {
					ki[i] = RAM512Input{Input: in.Input, Load: gate.And(in.Load, oneHot[i]), Address: rest}
				}
				return ki, bank
			},
			Post: func(ko [8]gate.Bus16, bank gate.Bus3) gate.Bus16 {
				return gate.Mux8Way16(ko, bank)
			},
		},
	)
}
