package gate

// Bus16 is a 16-bit bus, index 0 most significant.
type Bus16 [16]Bit

// Bus15, Bus14, Bus13 are the address widths used at the ROM32k, RAM16k
// and data-memory boundaries respectively.
type Bus15 [15]Bit
type Bus14 [14]Bit
type Bus13 [13]Bit

// Bus8 and Bus3 are the one-hot/selector widths used by the gate-faithful
// 8-way demultiplex reference implementation (see mem's RAM8 gate-faithful
// test) and by mux8way16's 3-bit selector.
type Bus8 [8]Bit
type Bus3 [3]Bit

// Bus2 is the 2-bit selector used by mux4way16.
type Bus2 [2]Bit

func bitsFromUint(u uint32, width int) []Bit {
	bits := make([]Bit, width)
	for i := 0; i < width; i++ {
		if u&(1<<uint(width-1-i)) != 0 {
			bits[i] = Positive
		}
	}
	return bits
}

func uintFromBits(bits []Bit) uint32 {
	var u uint32
	for _, b := range bits {
		u <<= 1
		if b == Positive {
			u |= 1
		}
	}
	return u
}

// NewBus16 encodes a signed value into two's-complement bus form.
func NewBus16(v int16) Bus16 {
	var b Bus16
	copy(b[:], bitsFromUint(uint32(uint16(v)), 16))
	return b
}

// Int16 decodes the bus as a two's-complement signed value.
func (b Bus16) Int16() int16 {
	return int16(uint16(uintFromBits(b[:])))
}

func (b Bus16) Uint16() uint16 {
	return uint16(b.Int16())
}

func (b Bus16) Slice() []Bit { return b[:] }

func Bus16FromSlice(bits []Bit) Bus16 {
	var b Bus16
	copy(b[:], bits)
	return b
}

func NewBus15(v uint32) Bus15 {
	var b Bus15
	copy(b[:], bitsFromUint(v, 15))
	return b
}

func (b Bus15) Uint() uint32  { return uintFromBits(b[:]) }
func (b Bus15) Slice() []Bit  { return b[:] }
func Bus15FromSlice(bits []Bit) Bus15 {
	var b Bus15
	copy(b[:], bits)
	return b
}

// Widen16 places a 15-bit bus into the low 15 bits of a Bus16, with the
// sign bit forced to Negative — the shape an A-instruction's operand takes
// on the bus.
func (b Bus15) Widen16() Bus16 {
	var out Bus16
	copy(out[1:], b[:])
	return out
}

func NewBus14(v uint32) Bus14 {
	var b Bus14
	copy(b[:], bitsFromUint(v, 14))
	return b
}

func (b Bus14) Uint() uint32  { return uintFromBits(b[:]) }
func (b Bus14) Slice() []Bit  { return b[:] }
func Bus14FromSlice(bits []Bit) Bus14 {
	var b Bus14
	copy(b[:], bits)
	return b
}

func NewBus13(v uint32) Bus13 {
	var b Bus13
	copy(b[:], bitsFromUint(v, 13))
	return b
}

func (b Bus13) Uint() uint32  { return uintFromBits(b[:]) }
func (b Bus13) Slice() []Bit  { return b[:] }
func Bus13FromSlice(bits []Bit) Bus13 {
	var b Bus13
	copy(b[:], bits)
	return b
}

// Low13, Low14, Low15 extract the low bits of a 16-bit bus, as used for
// address_m and pc outputs of the CPU.
func (b Bus16) Low13() Bus13 { return Bus13FromSlice(b[3:]) }
func (b Bus16) Low14() Bus14 { return Bus14FromSlice(b[2:]) }
func (b Bus16) Low15() Bus15 { return Bus15FromSlice(b[1:]) }

func NewBus3(v uint8) Bus3 {
	var b Bus3
	copy(b[:], bitsFromUint(uint32(v), 3))
	return b
}

func (b Bus3) Uint() uint8   { return uint8(uintFromBits(b[:])) }
func (b Bus3) Slice() []Bit  { return b[:] }
func Bus3FromSlice(bits []Bit) Bus3 {
	var b Bus3
	copy(b[:], bits)
	return b
}

func NewBus2(v uint8) Bus2 {
	var b Bus2
	copy(b[:], bitsFromUint(uint32(v), 2))
	return b
}

func (b Bus2) Uint() uint8  { return uint8(uintFromBits(b[:])) }
func (b Bus2) Slice() []Bit { return b[:] }
func Bus2FromSlice(bits []Bit) Bus2 {
	var b Bus2
	copy(b[:], bits)
	return b
}

func NewBus8(v uint8) Bus8 {
	var b Bus8
	copy(b[:], bitsFromUint(uint32(v), 8))
	return b
}

func (b Bus8) Slice() []Bit { return b[:] }
