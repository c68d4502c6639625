package seq

// ForwardDef wires a wrapper's input to a kernel's input (optionally
// producing a Jump value that bypasses the kernel entirely) and the
// kernel's output back to the wrapper's output.
type ForwardDef[In, KI, KO, Jump, Out any] struct {
	Pre  func(in In) (KI, Jump)
	Post func(ko KO, jump Jump) Out
}

// Feedforward threads a wrapper's input through a stateful kernel: on each
// tick it runs Pre, ticks the kernel, then runs Post. The Jump channel
// carries values computed in Pre that bypass the kernel (e.g. instruction
// bits routed around a register file straight to the output function).
type Feedforward[In, KI, KO, Jump, Out any] struct {
	kernel Circuit[KI, KO]
	def    ForwardDef[In, KI, KO, Jump, Out]
}

func NewFeedforward[In, KI, KO, Jump, Out any](kernel Circuit[KI, KO], def ForwardDef[In, KI, KO, Jump, Out]) Feedforward[In, KI, KO, Jump, Out] {
	return Feedforward[In, KI, KO, Jump, Out]{kernel: kernel, def: def}
}

func (f Feedforward[In, KI, KO, Jump, Out]) Tick(in In) (Out, Circuit[In, Out]) {
	ki, jump := f.def.Pre(in)
	ko, nextKernel := f.kernel.Tick(ki)
	out := f.def.Post(ko, jump)
	return out, Feedforward[In, KI, KO, Jump, Out]{kernel: nextKernel, def: f.def}
}
