package seq

import "github.com/jyane/hackvm/gate"

// FlipFlop is the one-bit delay primitive every register is ultimately
// built from: its output on a given tick is the input from the previous
// tick. Initial state is Negative.
type FlipFlop struct {
	stored gate.Bit
}

func NewFlipFlop() FlipFlop {
	return FlipFlop{stored: gate.Negative}
}

func (f FlipFlop) Tick(in gate.Bit) (gate.Bit, Circuit[gate.Bit, gate.Bit]) {
	return f.stored, FlipFlop{stored: in}
}
