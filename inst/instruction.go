package inst

import "github.com/jyane/hackvm/gate"

// Instruction is a symbolic Hack instruction: either an A-instruction
// loading a literal into the address register, or a C-instruction
// computing a value and optionally writing it and/or jumping.
type Instruction struct {
	isA   bool
	value int32 // A-instruction operand

	Dest Dest
	Comp Comp
	UseM bool // the ALU's second operand is M rather than A
	Jump Jump
}

// A builds an A-instruction loading v (interpreted as an unsigned 15-bit
// value; only the low 15 bits are meaningful) into the address register.
func A(v int32) Instruction {
	return Instruction{isA: true, value: v}
}

// C builds a C-instruction.
func C(dest Dest, comp Comp, useM bool, jump Jump) Instruction {
	return Instruction{Dest: dest, Comp: comp, UseM: useM, Jump: jump}
}

func (i Instruction) IsA() bool   { return i.isA }
func (i Instruction) Value() int32 { return i.value }

// Encode converts the instruction to its 16-bit wire form.
func (i Instruction) Encode() gate.Bus16 {
	if i.isA {
		return gate.NewBus15(uint32(i.value) & 0x7FFF).Widen16()
	}
	var b gate.Bus16
	b[0] = gate.Positive // c
	b[1] = gate.Positive
	b[2] = gate.Positive
	b[3] = gate.FromBool(i.UseM)

	ctl := compControl[i.Comp]
	b[4] = ctl.Zx
	b[5] = ctl.Nx
	b[6] = ctl.Zy
	b[7] = ctl.Ny
	b[8] = ctl.F
	b[9] = ctl.No

	wa, wd, wm := i.Dest.bits()
	b[10] = gate.FromBool(wa)
	b[11] = gate.FromBool(wd)
	b[12] = gate.FromBool(wm)

	lt, eq, gt := i.Jump.bits()
	b[13] = gate.FromBool(lt)
	b[14] = gate.FromBool(eq)
	b[15] = gate.FromBool(gt)
	return b
}

// Decode reconstructs a symbolic Instruction from a 16-bit word. It never
// fails: every bit pattern is a valid instruction on the wire (an unknown
// ALU control sextuple simply decodes to CompZero, mirroring the fact that
// hardware has no concept of an "invalid" instruction word).
func Decode(b gate.Bus16) Instruction {
	if b[0] == gate.Negative {
		return A(int32(b.Low15().Uint()))
	}
	ctl := gate.AluControl{Zx: b[4], Nx: b[5], Zy: b[6], Ny: b[7], F: b[8], No: b[9]}
	comp, ok := compFromControl(ctl)
	if !ok {
		comp = CompZero
	}
	dest := destFromBits(b[10] == gate.Positive, b[11] == gate.Positive, b[12] == gate.Positive)
	jump := jumpFromBits(b[13] == gate.Positive, b[14] == gate.Positive, b[15] == gate.Positive)
	return C(dest, comp, b[3] == gate.Positive, jump)
}
