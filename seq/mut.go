package seq

// Mut wraps an immutable Circuit into an in-place handle: Tick replaces its
// own state rather than returning a new one. The mem and computer packages
// do not use it: the RAM banks, the ROM and the computer's tick loop all
// thread circuit values, receiving a new value from every tick.
type Mut[In, Out any] struct {
	circuit Circuit[In, Out]
}

func NewMut[In, Out any](circuit Circuit[In, Out]) *Mut[In, Out] {
	return &Mut[In, Out]{circuit: circuit}
}

func (m *Mut[In, Out]) Tick(in In) Out {
	out, next := m.circuit.Tick(in)
	m.circuit = next
	return out
}
