package inst

import "github.com/jyane/hackvm/gate"

// Comp names one of the ALU's 18 functions. Where the function takes a
// second operand it is written generically as Y — Instruction.UseM selects
// whether Y means A or M for that tick; the six ALU control bits a Comp
// maps to are the same either way.
type Comp int

const (
	CompZero Comp = iota
	CompOne
	CompMinusOne
	CompD
	CompY
	CompNotD
	CompNotY
	CompMinusD
	CompMinusY
	CompDPlus1
	CompYPlus1
	CompDMinus1
	CompYMinus1
	CompDPlusY
	CompDMinusY
	CompYMinusD
	CompDAndY
	CompDOrY
)

var compControl = map[Comp]gate.AluControl{
	CompZero:     {Zx: gate.Positive, Nx: gate.Negative, Zy: gate.Positive, Ny: gate.Negative, F: gate.Positive, No: gate.Negative},
	CompOne:      {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Positive, Ny: gate.Positive, F: gate.Positive, No: gate.Positive},
	CompMinusOne: {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Positive, Ny: gate.Negative, F: gate.Positive, No: gate.Negative},
	CompD:        {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Positive, Ny: gate.Positive, F: gate.Negative, No: gate.Negative},
	CompY:        {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Negative, F: gate.Negative, No: gate.Negative},
	CompNotD:     {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Positive, Ny: gate.Positive, F: gate.Negative, No: gate.Positive},
	CompNotY:     {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Negative, F: gate.Negative, No: gate.Positive},
	CompMinusD:   {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Positive, Ny: gate.Positive, F: gate.Positive, No: gate.Positive},
	CompMinusY:   {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Negative, F: gate.Positive, No: gate.Positive},
	CompDPlus1:   {Zx: gate.Negative, Nx: gate.Positive, Zy: gate.Positive, Ny: gate.Positive, F: gate.Positive, No: gate.Positive},
	CompYPlus1:   {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Positive, F: gate.Positive, No: gate.Positive},
	CompDMinus1:  {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Positive, Ny: gate.Positive, F: gate.Positive, No: gate.Negative},
	CompYMinus1:  {Zx: gate.Positive, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Negative, F: gate.Positive, No: gate.Negative},
	CompDPlusY:   {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Negative, Ny: gate.Negative, F: gate.Positive, No: gate.Negative},
	CompDMinusY:  {Zx: gate.Negative, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Negative, F: gate.Positive, No: gate.Positive},
	CompYMinusD:  {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Negative, Ny: gate.Positive, F: gate.Positive, No: gate.Positive},
	CompDAndY:    {Zx: gate.Negative, Nx: gate.Negative, Zy: gate.Negative, Ny: gate.Negative, F: gate.Negative, No: gate.Negative},
	CompDOrY:     {Zx: gate.Negative, Nx: gate.Positive, Zy: gate.Negative, Ny: gate.Positive, F: gate.Negative, No: gate.Positive},
}

var controlComp = func() map[gate.AluControl]Comp {
	m := make(map[gate.AluControl]Comp, len(compControl))
	for comp, ctl := range compControl {
		m[ctl] = comp
	}
	return m
}()

func compFromControl(ctl gate.AluControl) (Comp, bool) {
	c, ok := controlComp[ctl]
	return c, ok
}

// String renders the mnemonic with A substituted for Y, matching the
// textual form the assembler accepts. A Comp does not record whether its
// instruction reads M, so the M form is never produced here.
func (c Comp) String() string {
	return c.mnemonic("A")
}

func (c Comp) mnemonic(y string) string {
	switch c {
	case CompZero:
		return "0"
	case CompOne:
		return "1"
	case CompMinusOne:
		return "-1"
	case CompD:
		return "D"
	case CompY:
		return y
	case CompNotD:
		return "!D"
	case CompNotY:
		return "!" + y
	case CompMinusD:
		return "-D"
	case CompMinusY:
		return "-" + y
	case CompDPlus1:
		return "D+1"
	case CompYPlus1:
		return y + "+1"
	case CompDMinus1:
		return "D-1"
	case CompYMinus1:
		return y + "-1"
	case CompDPlusY:
		return "D+" + y
	case CompDMinusY:
		return "D-" + y
	case CompYMinusD:
		return y + "-D"
	case CompDAndY:
		return "D&" + y
	case CompDOrY:
		return "D|" + y
	default:
		return "?"
	}
}
