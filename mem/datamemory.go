package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// DataMemoryInput addresses one of the 8192 (13-bit) data-memory words.
type DataMemoryInput struct {
	Input   gate.Bus16
	Load    gate.Bit
	Address gate.Bus13
}

// NewDataMemory builds the 8192-word data memory as two RAM4k banks
// selected by the top address bit.
func NewDataMemory() seq.Circuit[DataMemoryInput, gate.Bus16] {
	var kernel seq.Array2[RAM4kInput, gate.Bus16]
	kernel[0] = NewRAM4k()
	kernel[1] = NewRAM4k()
	return seq.NewFeedforward(
		seq.Circuit[[2]RAM4kInput, [2]gate.Bus16](kernel),
		seq.ForwardDef[DataMemoryInput, [2]RAM4kInput, [2]gate.Bus16, gate.Bit, gate.Bus16]{
			Pre: func(in DataMemoryInput) ([2]RAM4kInput, gate.Bit) {
				addr := in.Address.Slice()
				bankBit := addr[0]
				var rest [12]gate.Bit
				copy(rest[:], addr[1:])
				loadA := gate.And(in.Load, gate.Not(bankBit))
				loadB := gate.And(in.Load, bankBit)
				return [2]RAM4kInput{
					{Input: in.Input, Load: loadA, Address: rest},
					{Input: in.Input, Load: loadB, Address: rest},
				}, bankBit
			},
			Post: func(ko [2]gate.Bus16, bankBit gate.Bit) gate.Bus16 {
				return gate.Mux16(ko[0], ko[1], bankBit)
			},
		},
	)
}
