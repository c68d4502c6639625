package mem

import (
	"testing"

	"github.com/jyane/hackvm/gate"
)

func TestRAM64ReadAfterWrite(t *testing.T) {
	ram := NewRAM64()
	write := toBits6(42)
	_, next := ram.Tick(RAM64Input{Input: gate.NewBus16(123), Load: gate.Positive, Address: write})
	out, _ := next.Tick(RAM64Input{Input: gate.NewBus16(0), Load: gate.Negative, Address: write})
	if out.Int16() != 123 {
		t.Fatalf("RAM64 addr 42 = %d, want 123", out.Int16())
	}
	other := toBits6(10)
	out, _ = next.Tick(RAM64Input{Input: gate.NewBus16(0), Load: gate.Negative, Address: other})
	if out.Int16() != 0 {
		t.Fatalf("RAM64 untouched addr 10 = %d, want 0", out.Int16())
	}
}

func toBits6(v int) [6]gate.Bit {
	var b [6]gate.Bit
	for i := 0; i < 6; i++ {
		if v&(1<<uint(5-i)) != 0 {
			b[i] = gate.Positive
		}
	}
	return b
}

func toBits9(v int) [9]gate.Bit {
	var b [9]gate.Bit
	for i := 0; i < 9; i++ {
		if v&(1<<uint(8-i)) != 0 {
			b[i] = gate.Positive
		}
	}
	return b
}

func toBits12(v int) [12]gate.Bit {
	var b [12]gate.Bit
	for i := 0; i < 12; i++ {
		if v&(1<<uint(11-i)) != 0 {
			b[i] = gate.Positive
		}
	}
	return b
}

func TestRAM512ReadAfterWrite(t *testing.T) {
	ram := NewRAM512()
	write := toBits9(300)
	_, next := ram.Tick(RAM512Input{Input: gate.NewBus16(55), Load: gate.Positive, Address: write})
	out, _ := next.Tick(RAM512Input{Input: gate.NewBus16(0), Load: gate.Negative, Address: write})
	if out.Int16() != 55 {
		t.Fatalf("RAM512 addr 300 = %d, want 55", out.Int16())
	}
}

func TestRAM4kReadAfterWrite(t *testing.T) {
	ram := NewRAM4k()
	write := toBits12(4000)
	_, next := ram.Tick(RAM4kInput{Input: gate.NewBus16(-7), Load: gate.Positive, Address: write})
	out, _ := next.Tick(RAM4kInput{Input: gate.NewBus16(0), Load: gate.Negative, Address: write})
	if out.Int16() != -7 {
		t.Fatalf("RAM4k addr 4000 = %d, want -7", out.Int16())
	}
}

func TestRAM16kReadAfterWrite(t *testing.T) {
	ram := NewRAM16k()
	write := gate.NewBus14(16000)
	_, next := ram.Tick(RAM16kInput{Input: gate.NewBus16(321), Load: gate.Positive, Address: write})
	out, _ := next.Tick(RAM16kInput{Input: gate.NewBus16(0), Load: gate.Negative, Address: write})
	if out.Int16() != 321 {
		t.Fatalf("RAM16k addr 16000 = %d, want 321", out.Int16())
	}
	zero := gate.NewBus14(0)
	out, _ = next.Tick(RAM16kInput{Input: gate.NewBus16(0), Load: gate.Negative, Address: zero})
	if out.Int16() != 0 {
		t.Fatalf("RAM16k untouched addr 0 = %d, want 0", out.Int16())
	}
}
