package gate

import "testing"

// The 18 canonical control-bit sextuples from the Nand2Tetris ALU table,
// and the function of (x, y) each one computes.
var aluTable = []struct {
	name           string
	zx, nx, zy, ny, f, no Bit
	fn             func(x, y int16) int16
}{
	{"zero", Positive, Negative, Positive, Negative, Positive, Negative, func(x, y int16) int16 { return 0 }},
	{"one", Positive, Positive, Positive, Positive, Positive, Positive, func(x, y int16) int16 { return 1 }},
	{"minus-one", Positive, Positive, Positive, Negative, Positive, Negative, func(x, y int16) int16 { return -1 }},
	{"x", Negative, Negative, Positive, Positive, Negative, Negative, func(x, y int16) int16 { return x }},
	{"y", Positive, Positive, Negative, Negative, Negative, Negative, func(x, y int16) int16 { return y }},
	{"not-x", Negative, Negative, Positive, Positive, Negative, Positive, func(x, y int16) int16 { return ^x }},
	{"not-y", Positive, Positive, Negative, Negative, Negative, Positive, func(x, y int16) int16 { return ^y }},
	{"minus-x", Negative, Negative, Positive, Positive, Positive, Positive, func(x, y int16) int16 { return -x }},
	{"minus-y", Positive, Positive, Negative, Negative, Positive, Positive, func(x, y int16) int16 { return -y }},
	{"x-plus-1", Negative, Positive, Positive, Positive, Positive, Positive, func(x, y int16) int16 { return x + 1 }},
	{"y-plus-1", Positive, Positive, Negative, Positive, Positive, Positive, func(x, y int16) int16 { return y + 1 }},
	{"x-minus-1", Negative, Negative, Positive, Positive, Positive, Negative, func(x, y int16) int16 { return x - 1 }},
	{"y-minus-1", Positive, Positive, Negative, Negative, Positive, Negative, func(x, y int16) int16 { return y - 1 }},
	{"x-plus-y", Negative, Negative, Negative, Negative, Positive, Negative, func(x, y int16) int16 { return x + y }},
	{"x-minus-y", Negative, Positive, Negative, Negative, Positive, Positive, func(x, y int16) int16 { return x - y }},
	{"y-minus-x", Negative, Negative, Negative, Positive, Positive, Positive, func(x, y int16) int16 { return y - x }},
	{"x-and-y", Negative, Negative, Negative, Negative, Negative, Negative, func(x, y int16) int16 { return x & y }},
	{"x-or-y", Negative, Positive, Negative, Positive, Negative, Positive, func(x, y int16) int16 { return x | y }},
}

func TestAluTable(t *testing.T) {
	x, y := int16(17), int16(3)
	for _, c := range aluTable {
		ctl := AluControl{Zx: c.zx, Nx: c.nx, Zy: c.zy, Ny: c.ny, F: c.f, No: c.no}
		out := Alu(NewBus16(x), NewBus16(y), ctl)
		want := c.fn(x, y)
		if got := out.Out.Int16(); got != want {
			t.Errorf("%s: Alu(%d,%d) = %d, want %d", c.name, x, y, got, want)
		}
		wantZr := FromBool(want == 0)
		if out.Zr != wantZr {
			t.Errorf("%s: zr = %v, want %v", c.name, out.Zr, wantZr)
		}
		wantNg := FromBool(want < 0)
		if out.Ng != wantNg {
			t.Errorf("%s: ng = %v, want %v", c.name, out.Ng, wantNg)
		}
	}
}

func TestAluZeroOperands(t *testing.T) {
	ctl := AluControl{Zx: Positive, Nx: Negative, Zy: Positive, Ny: Negative, F: Positive, No: Negative}
	out := Alu(NewBus16(123), NewBus16(-9), ctl)
	if out.Out.Int16() != 0 {
		t.Fatalf("zero function = %d, want 0", out.Out.Int16())
	}
	if out.Zr != Positive {
		t.Errorf("zr = %v, want Positive", out.Zr)
	}
	if out.Ng != Negative {
		t.Errorf("ng = %v, want Negative", out.Ng)
	}
}
