// Package mem implements the Hack storage hierarchy: a one-bit flip-flop at
// the bottom, built up through registers and banked RAM to the 8K-word data
// memory and 32K-word instruction ROM the computer runs against. Every level
// is composed from the seq package's feedforward/feedback/array
// combinators, the way the teacher's nes/ram.go is a flat byte array but
// generalized to the Hack architecture's nested addressing.
package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// bitRegisterInput is the input to the one-bit register: a feedback wrapper
// around a flip-flop implementing next = mux(stored, input, load).
type bitRegisterInput struct {
	Input gate.Bit
	Load  gate.Bit
}

func newBitRegister() seq.Circuit[bitRegisterInput, gate.Bit] {
	return seq.NewFeedback(
		seq.Circuit[gate.Bit, gate.Bit](seq.NewFlipFlop()),
		seq.BackwardDef[bitRegisterInput, gate.Bit, gate.Bit, gate.Bit, gate.Bit]{
			Pre: func(in bitRegisterInput, fb gate.Bit) gate.Bit {
				return gate.Mux(fb, in.Input, in.Load)
			},
			Post: func(in bitRegisterInput, ko gate.Bit) (gate.Bit, gate.Bit) {
				return ko, ko
			},
		},
	)
}

// Register16Input is the input to a 16-bit register: a single write-enable
// gates all 16 underlying bit-registers atomically.
type Register16Input struct {
	Input gate.Bus16
	Load  gate.Bit
}

// NewRegister16 builds a 16-bit register as a feedforward wrapper around an
// array of 16 one-bit registers.
func NewRegister16() seq.Circuit[Register16Input, gate.Bus16] {
	var kernel seq.Array16[bitRegisterInput, gate.Bit]
	for i := range kernel {
		kernel[i] = newBitRegister()
	}
	return seq.NewFeedforward(
		seq.Circuit[[16]bitRegisterInput, [16]gate.Bit](kernel),
		seq.ForwardDef[Register16Input, [16]bitRegisterInput, [16]gate.Bit, struct{}, gate.Bus16]{
			Pre: func(in Register16Input) ([16]bitRegisterInput, struct{}) {
				var ki [16]bitRegisterInput
				for i, b := range in.Input {
					ki[i] = bitRegisterInput{Input: b, Load: in.Load}
				}
				return ki, struct{}{}
			},
			Post: func(ko [16]gate.Bit, _ struct{}) gate.Bus16 {
				return gate.Bus16(ko)
			},
		},
	)
}
