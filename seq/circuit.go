// Package seq provides the sequential-circuit abstraction the storage
// hierarchy and CPU are built from: a purely functional tick contract, plus
// the feedforward, feedback, array and tuple combinators that compose
// stateful kernels without any shared mutable state. There is no analogue
// of this package in the NES teacher codebase; it is grounded directly on
// the original Hack emulator's infrastructure/sequential module.
package seq

// Circuit is a stateful component: ticking it with an input produces an
// output and the state the component moves to after the clock edge. The
// returned Circuit is itself immutable — every tick is a pure function from
// (old state, input) to (output, new state).
type Circuit[In, Out any] interface {
	Tick(in In) (Out, Circuit[In, Out])
}
