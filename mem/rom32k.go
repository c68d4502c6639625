package mem

import (
	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/seq"
)

// RomInput addresses one of the 32768 (15-bit) ROM words. There is no
// Input/Load field: ROM contents never change after NewROM32k returns.
type RomInput struct {
	Address gate.Bus15
}

// NewROM32k builds the 32768-word instruction ROM as two RAM16k banks
// selected by the top address bit, loading program into them up front by
// ticking each bank once per word with load asserted. Once built, the
// returned circuit's Tick always drives load=0 into both banks — the ROM
// is permanently read-only from that point on.
func NewROM32k(program []gate.Bus16) seq.Circuit[RomInput, gate.Bus16] {
	var kernel seq.Array2[RAM16kInput, gate.Bus16]
	kernel[0] = NewRAM16k()
	kernel[1] = NewRAM16k()
	for addr, word := range program {
		bank := 0
		rest := uint32(addr)
		if addr >= 16384 {
			bank = 1
			rest = uint32(addr - 16384)
		}
		_, next := kernel[bank].Tick(RAM16kInput{Input: word, Load: gate.Positive, Address: gate.NewBus14(rest)})
		kernel[bank] = next
	}
	return seq.NewFeedforward(
		seq.Circuit[[2]RAM16kInput, [2]gate.Bus16](kernel),
		seq.ForwardDef[RomInput, [2]RAM16kInput, [2]gate.Bus16, gate.Bit, gate.Bus16]{
			Pre: func(in RomInput) ([2]RAM16kInput, gate.Bit) {
				addr := in.Address.Slice()
				bankBit := addr[0]
				rest := gate.Bus14FromSlice(addr[1:])
				ri := RAM16kInput{Input: gate.NewBus16(0), Load: gate.Negative, Address: rest}
				return [2]RAM16kInput{ri, ri}, bankBit
			},
			Post: func(ko [2]gate.Bus16, bankBit gate.Bit) gate.Bus16 {
				return gate.Mux16(ko[0], ko[1], bankBit)
			},
		},
	)
}
