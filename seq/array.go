package seq

// Array2, Array3, Array4, Array8 and Array16 tick a fixed number of
// identically-typed circuits element-wise, returning element-wise outputs
// and the element-wise next states. Sizes 3/8/16 are the ones the Hack
// register/CPU wiring names directly; 2 and 4 are the same combinator at
// the bank-selection widths RAM16k (4-way) and the data-memory/ROM32k
// top-level split (2-way) use.

type Array2[In, Out any] [2]Circuit[In, Out]

func (a Array2[In, Out]) Tick(in [2]In) ([2]Out, Circuit[[2]In, [2]Out]) {
	var outs [2]Out
	var next Array2[In, Out]
	for i := 0; i < 2; i++ {
		outs[i], next[i] = a[i].Tick(in[i])
	}
	return outs, next
}

type Array3[In, Out any] [3]Circuit[In, Out]

func (a Array3[In, Out]) Tick(in [3]In) ([3]Out, Circuit[[3]In, [3]Out]) {
	var outs [3]Out
	var next Array3[In, Out]
	for i := 0; i < 3; i++ {
		outs[i], next[i] = a[i].Tick(in[i])
	}
	return outs, next
}

type Array4[In, Out any] [4]Circuit[In, Out]

func (a Array4[In, Out]) Tick(in [4]In) ([4]Out, Circuit[[4]In, [4]Out]) {
	var outs [4]Out
	var next Array4[In, Out]
	for i := 0; i < 4; i++ {
		outs[i], next[i] = a[i].Tick(in[i])
	}
	return outs, next
}

type Array8[In, Out any] [8]Circuit[In, Out]

func (a Array8[In, Out]) Tick(in [8]In) ([8]Out, Circuit[[8]In, [8]Out]) {
	var outs [8]Out
	var next Array8[In, Out]
	for i := 0; i < 8; i++ {
		outs[i], next[i] = a[i].Tick(in[i])
	}
	return outs, next
}

type Array16[In, Out any] [16]Circuit[In, Out]

func (a Array16[In, Out]) Tick(in [16]In) ([16]Out, Circuit[[16]In, [16]Out]) {
	var outs [16]Out
	var next Array16[In, Out]
	for i := 0; i < 16; i++ {
		outs[i], next[i] = a[i].Tick(in[i])
	}
	return outs, next
}
