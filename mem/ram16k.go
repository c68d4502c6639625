package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// RAM16kInput addresses one of 16384 words: the top 2 bits pick a RAM4k
// bank, the remaining 12 address the word within it.
type RAM16kInput struct {
	Input   gate.Bus16
	Load    gate.Bit
	Address gate.Bus14
}

func NewRAM16k() seq.Circuit[RAM16kInput, gate.Bus16] {
	var kernel seq.Array4[RAM4kInput, gate.Bus16]
	for i := range kernel {
		kernel[i] = NewRAM4k()
	}
	return seq.NewFeedforward(
		seq.Circuit[[4]RAM4kInput, [4]gate.Bus16](kernel),
		seq.ForwardDef[RAM16kInput, [4]RAM4kInput, [4]gate.Bus16, gate.Bus2, gate.Bus16]{
			Pre: func(in RAM16kInput) ([4]RAM4kInput, gate.Bus2) {
				addr := in.Address.Slice()
				bank := gate.Bus2FromSlice(addr[:2])
				var rest [12]gate.Bit
				copy(rest[:], addr[2:])
				oneHot := gate.Dmux4Way(gate.Positive, bank)
				var ki [4]RAM4kInput
				for i := 0; i < 4; i++ {
					ki[i] = RAM4kInput{Input: in.Input, Load: gate.And(in.Load, oneHot[i]), Address: rest}
				}
				return ki, bank
			},
			Post: func(ko [4]gate.Bus16, bank gate.Bus2) gate.Bus16 {
				a, b, c, d := ko[0], ko[1], ko[2], ko[3]
				return gate.Mux4Way16(a, b, c, d, bank)
			},
		},
	)
}
