package mem

import (
	"testing"

	"github.com/jyane/hackvm/gate"
)

func TestROM32kLoadsAndStaysReadOnly(t *testing.T) {
	program := make([]gate.Bus16, 20000)
	program[0] = gate.NewBus16(111)
	program[19999] = gate.NewBus16(222) // lands in the high bank (>=16384)

	rom := NewROM32k(program)

	out, next := rom.Tick(RomInput{Address: gate.NewBus15(0)})
	if out.Int16() != 111 {
		t.Fatalf("rom[0] = %d, want 111", out.Int16())
	}
	out, _ = next.Tick(RomInput{Address: gate.NewBus15(19999)})
	if out.Int16() != 222 {
		t.Fatalf("rom[19999] = %d, want 222", out.Int16())
	}
	// Untouched address reads zero.
	out, _ = next.Tick(RomInput{Address: gate.NewBus15(500)})
	if out.Int16() != 0 {
		t.Fatalf("rom[500] = %d, want 0", out.Int16())
	}
}
