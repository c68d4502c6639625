package seq

import (
	"testing"

	"github.com/jyane/hackvm/gate"
)

// bitRegisterInput/newBitRegister build a 1-bit register out of a FlipFlop
// and the Feedback combinator, exercising the same composition mem's bit
// register uses, to pin down the two-pass discipline in isolation.
type bitRegisterInput struct {
	Input gate.Bit
	Load  gate.Bit
}

func newBitRegister() Feedback[bitRegisterInput, gate.Bit, gate.Bit, gate.Bit, gate.Bit] {
	return NewFeedback(Circuit[gate.Bit, gate.Bit](NewFlipFlop()), BackwardDef[bitRegisterInput, gate.Bit, gate.Bit, gate.Bit, gate.Bit]{
		Pre: func(in bitRegisterInput, fb gate.Bit) gate.Bit {
			return gate.Mux(fb, in.Input, in.Load)
		},
		Post: func(in bitRegisterInput, ko gate.Bit) (gate.Bit, gate.Bit) {
			return ko, ko
		},
	})
}

func TestFeedbackRegisterLaw(t *testing.T) {
	var c Circuit[bitRegisterInput, gate.Bit] = newBitRegister()

	// Initial state is Negative.
	out, next := c.Tick(bitRegisterInput{Input: gate.Negative, Load: gate.Negative})
	if out != gate.Negative {
		t.Fatalf("initial output = %v, want Negative", out)
	}
	c = next

	// Writing Positive with load=1 is not observed until the *next* tick.
	out, next = c.Tick(bitRegisterInput{Input: gate.Positive, Load: gate.Positive})
	if out != gate.Negative {
		t.Fatalf("output during write tick = %v, want Negative (pre-write value)", out)
	}
	c = next

	out, next = c.Tick(bitRegisterInput{Input: gate.Negative, Load: gate.Negative})
	if out != gate.Positive {
		t.Fatalf("output after write tick = %v, want Positive", out)
	}
	c = next

	// Holding: load=0 leaves the stored value unchanged regardless of input.
	out, _ = c.Tick(bitRegisterInput{Input: gate.Negative, Load: gate.Negative})
	if out != gate.Positive {
		t.Fatalf("output while holding = %v, want Positive", out)
	}
}

func TestFeedbackProbePassDoesNotLeakIntoCommittedState(t *testing.T) {
	// The probe pass runs the kernel with a zero feedback; on a hold tick
	// (load=0) that makes the probe's kernel input Negative while the real
	// pass's is the stored Positive. If the probe pass's state leaked into
	// the committed tick, the stored bit would read back Negative next tick.
	var c Circuit[bitRegisterInput, gate.Bit] = newBitRegister()
	_, next := c.Tick(bitRegisterInput{Input: gate.Positive, Load: gate.Positive})
	_, next = next.Tick(bitRegisterInput{Input: gate.Negative, Load: gate.Negative})
	out, _ := next.Tick(bitRegisterInput{Input: gate.Negative, Load: gate.Negative})
	if out != gate.Positive {
		t.Fatalf("committed-state bit = %v, want Positive (the real pass's hold, not the probe's)", out)
	}
}
