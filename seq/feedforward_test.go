package seq

import (
	"testing"

	"github.com/jyane/hackvm/gate"
)

// A 16-bit register built as a feedforward wrapper around an array of 16
// bit-registers, mirroring mem.Register16's actual composition.

type wideRegisterInput struct {
	Input gate.Bus16
	Load  gate.Bit
}

func newWideRegister() Circuit[wideRegisterInput, gate.Bus16] {
	var kernel Array16[bitRegisterInput, gate.Bit]
	for i := range kernel {
		kernel[i] = newBitRegister()
	}
	return NewFeedforward(Circuit[[16]bitRegisterInput, [16]gate.Bit](kernel), ForwardDef[wideRegisterInput, [16]bitRegisterInput, [16]gate.Bit, struct{}, gate.Bus16]{
		Pre: func(in wideRegisterInput) ([16]bitRegisterInput, struct{}) {
			var ki [16]bitRegisterInput
			for i, b := range in.Input {
				ki[i] = bitRegisterInput{Input: b, Load: in.Load}
			}
			return ki, struct{}{}
		},
		Post: func(ko [16]gate.Bit, _ struct{}) gate.Bus16 {
			return gate.Bus16(ko)
		},
	})
}

func TestFeedforwardWideRegister(t *testing.T) {
	c := newWideRegister()
	out, next := c.Tick(wideRegisterInput{Input: gate.NewBus16(0), Load: gate.Negative})
	if out != gate.NewBus16(0) {
		t.Fatalf("initial output = %v, want zero", out)
	}
	out, next = next.Tick(wideRegisterInput{Input: gate.NewBus16(1234), Load: gate.Positive})
	if out != gate.NewBus16(0) {
		t.Fatalf("output during write tick = %v, want unchanged zero", out)
	}
	out, _ = next.Tick(wideRegisterInput{Input: gate.NewBus16(0), Load: gate.Negative})
	if out != gate.NewBus16(1234) {
		t.Fatalf("output after write tick = %v, want 1234", out)
	}
}
