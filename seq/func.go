package seq

// Func lifts a pure, stateless function into the Circuit contract: its
// "state" never changes, so it can be dropped into a feedforward or tuple
// composition alongside genuinely stateful kernels. Grounded on
// infrastructure/sequential/func_sc.rs.
type Func[In, Out any] struct {
	f func(In) Out
}

func NewFunc[In, Out any](f func(In) Out) Func[In, Out] {
	return Func[In, Out]{f: f}
}

func (s Func[In, Out]) Tick(in In) (Out, Circuit[In, Out]) {
	return s.f(in), s
}
