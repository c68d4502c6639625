// Package computer wires ROM, data memory and the CPU into the complete
// Hack machine: each tick fetches the instruction the program counter
// names, executes it, and commits any resulting memory write.
package computer

import (
	"github.com/jyane/hackvm/cpu"
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/mem"
	"github.com/jyane/hackvm/seq"
)

// Computer is the whole machine: 32K-word ROM, 8K-word data memory and a
// CPU. Reset is an input to Tick rather than stored state, matching the
// CPU's own Input shape.
type Computer struct {
	rom seq.Circuit[mem.RomInput, gate.Bus16]
	ram seq.Circuit[mem.DataMemoryInput, gate.Bus16]
	cpu cpu.CPU
}

// New builds a computer with program loaded into ROM and data memory
// cleared.
func New(program []gate.Bus16) Computer {
	return Computer{
		rom: mem.NewROM32k(program),
		ram: mem.NewDataMemory(),
		cpu: cpu.NewCPU(),
	}
}

// Tick runs one instruction. It fetches the instruction at the CPU's
// current PC and the data-memory word at the CPU's current A register by
// peeking both non-destructively — ROM and RAM reads with load
// deasserted don't touch state either, so no instruction ever needs to
// run through the CPU twice to discover what it's about to do.
func (c Computer) Tick(reset bool) Computer {
	pc := c.cpu.PeekPC()
	instruction, _ := c.rom.Tick(mem.RomInput{Address: pc})

	addressM := c.cpu.PeekA().Low13()
	inM, _ := c.ram.Tick(mem.DataMemoryInput{Address: addressM, Load: gate.Negative})

	out, nextCPU := c.cpu.Tick(cpu.Input{
		InM:         inM,
		Instruction: instruction,
		Reset:       gate.FromBool(reset),
	})

	_, nextRAM := c.ram.Tick(mem.DataMemoryInput{
		Input:   out.OutM,
		Load:    out.WriteM,
		Address: out.AddressM,
	})

	return Computer{rom: c.rom, ram: nextRAM, cpu: nextCPU}
}

// PeekRAM reads a data-memory word without mutating state, for host-side
// inspection between ticks (tests, the debug console, the CLI's final-state
// dump).
func (c Computer) PeekRAM(address uint32) gate.Bus16 {
	out, _ := c.ram.Tick(mem.DataMemoryInput{Address: gate.NewBus13(address), Load: gate.Negative})
	return out
}

// PeekPC exposes the CPU's current program counter, for the debug console.
func (c Computer) PeekPC() gate.Bus15 {
	return c.cpu.PeekPC()
}

// Run ticks the computer n times with reset deasserted, returning the
// final state.
func (c Computer) Run(n int) Computer {
	for i := 0; i < n; i++ {
		c = c.Tick(false)
	}
	return c
}
