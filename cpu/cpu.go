// Package cpu implements the Hack central processing unit: the three
// 16-bit registers (A, D, PC), the decode logic, and the single ALU tick
// that together execute one instruction per cycle.
package cpu

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/mem"
	"github.com/jyane/hackvm/seq"
)

// Input is what the CPU sees on a given tick.
type Input struct {
	InM         gate.Bus16 // value read from the memory location addressed by AddressM
	Instruction gate.Bus16 // the instruction being executed
	Reset       gate.Bit
}

// Output is what the CPU drives on a given tick.
type Output struct {
	OutM     gate.Bus16 // value to write to memory, when WriteM is asserted
	WriteM   gate.Bit
	AddressM gate.Bus13 // RAM address OutM/InM refer to
	PC       gate.Bus15 // address of the next instruction to fetch
}

// feedbackValue is what the CPU's register stage needs to carry from the
// probe pass to the real pass: the values this tick computes but that the
// registers themselves must commit.
type feedbackValue struct {
	AluOut gate.Bus16
	PCNext gate.Bus16
}

func preRegisters(instruction gate.Bus16, d decoded, fb feedbackValue) [3]mem.Register16Input {
	loadA := !d.c || d.writeA
	aInput := gate.Mux16(instruction, fb.AluOut, gate.FromBool(d.c))
	loadD := d.c && d.writeD
	return [3]mem.Register16Input{
		{Input: aInput, Load: gate.FromBool(loadA)},
		{Input: fb.AluOut, Load: gate.FromBool(loadD)},
		{Input: fb.PCNext, Load: gate.Positive},
	}
}

func postRegisters(in Input, d decoded, ko [3]gate.Bus16) (Output, feedbackValue) {
	aOut, dOut, pcOut := ko[0], ko[1], ko[2]

	y := gate.Mux16(aOut, in.InM, gate.FromBool(d.a))
	alu := gate.Alu(dOut, y, d.ctl)

	jump := gate.Or(
		gate.Or(gate.And(gate.FromBool(d.j1), alu.Ng), gate.And(gate.FromBool(d.j2), alu.Zr)),
		gate.And(gate.FromBool(d.j3), gate.Not(gate.Or(alu.Ng, alu.Zr))),
	)
	condition := gate.And(jump, gate.FromBool(d.c))

	pcNext := gate.Mux16(gate.Inc16(pcOut), aOut, condition)
	if d.reset {
		pcNext = gate.Bus16{}
	}

	out := Output{
		OutM:     alu.Out,
		WriteM:   gate.FromBool(d.c && d.writeM),
		AddressM: aOut.Low13(),
		PC:       pcNext.Low15(),
	}
	return out, feedbackValue{AluOut: alu.Out, PCNext: pcNext}
}

// CPU holds the A, D and PC registers. Unlike the rest of the storage
// hierarchy it does not hide its register array behind the generic
// seq.Feedback composition: Tick performs the same two-pass discipline
// seq.Feedback does (probe with a neutral feedback value, then commit with
// the real one), but does it against a concretely-typed field so that PeekA
// and PeekPC can read the current A/PC value non-destructively. That peek
// is what lets the computer package fetch the next instruction's address
// without running the CPU twice in a cycle.
type CPU struct {
	registers seq.Array3[mem.Register16Input, gate.Bus16]
}

// NewCPU builds a CPU with all three registers cleared.
func NewCPU() CPU {
	var regs seq.Array3[mem.Register16Input, gate.Bus16]
	regs[0] = mem.NewRegister16()
	regs[1] = mem.NewRegister16()
	regs[2] = mem.NewRegister16()
	return CPU{registers: regs}
}

// PeekA returns the A register's current value without advancing state.
func (c CPU) PeekA() gate.Bus16 {
	out, _ := c.registers[0].Tick(mem.Register16Input{Load: gate.Negative})
	return out
}

// PeekPC returns the PC register's current value without advancing state.
func (c CPU) PeekPC() gate.Bus15 {
	out, _ := c.registers[2].Tick(mem.Register16Input{Load: gate.Negative})
	return out.Low15()
}

// Tick executes one instruction.
func (c CPU) Tick(in Input) (Output, CPU) {
	d := decode(in.Instruction, in.Reset)

	probeOut, _ := c.registers.Tick(preRegisters(in.Instruction, d, feedbackValue{}))
	out, fb := postRegisters(in, d, probeOut)

	_, nextState := c.registers.Tick(preRegisters(in.Instruction, d, fb))
	next := nextState.(seq.Array3[mem.Register16Input, gate.Bus16])

	return out, CPU{registers: next}
}
