package seq

// BackwardDef wires a wrapper's input and a same-cycle feedback value to
// the kernel's input (Pre), and the wrapper's input plus the kernel's
// output back to the wrapper's output and the feedback value the kernel
// should have observed this cycle (Post).
type BackwardDef[In, KI, KO, FB, Out any] struct {
	Pre  func(in In, fb FB) KI
	Post func(in In, ko KO) (Out, FB)
}

// Feedback lets a kernel observe its own post-edge output within the same
// tick, simulating a same-cycle combinational loop without fixed-point
// iteration. It does this in two passes:
//
//  1. Tick the kernel with the zero value of FB as a neutral probe feedback,
//     and run Post on the probe output to recover the feedback value the
//     kernel should actually have seen.
//  2. Re-tick the kernel with that real feedback value; this second pass's
//     state is the one that is kept. Both passes produce the same Out,
//     since Post is a pure function of In and the kernel's post-edge
//     output — only the committed state transition differs.
type Feedback[In, KI, KO, FB, Out any] struct {
	kernel Circuit[KI, KO]
	def    BackwardDef[In, KI, KO, FB, Out]
}

func NewFeedback[In, KI, KO, FB, Out any](kernel Circuit[KI, KO], def BackwardDef[In, KI, KO, FB, Out]) Feedback[In, KI, KO, FB, Out] {
	return Feedback[In, KI, KO, FB, Out]{kernel: kernel, def: def}
}

func (f Feedback[In, KI, KO, FB, Out]) Tick(in In) (Out, Circuit[In, Out]) {
	var zero FB
	probeIn := f.def.Pre(in, zero)
	probeOut, _ := f.kernel.Tick(probeIn)
	out, fb := f.def.Post(in, probeOut)

	realIn := f.def.Pre(in, fb)
	_, nextKernel := f.kernel.Tick(realIn)

	return out, Feedback[In, KI, KO, FB, Out]{kernel: nextKernel, def: f.def}
}
