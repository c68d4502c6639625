package seq

// Tuple2Input and Tuple2Output carry a heterogeneous pair of inputs/outputs
// through Tuple2.
type Tuple2Input[A, B any] struct {
	A A
	B B
}

type Tuple2Output[A, B any] struct {
	A A
	B B
}

// Tuple2 ticks two heterogeneous circuits in parallel.
type Tuple2[AI, AO, BI, BO any] struct {
	a Circuit[AI, AO]
	b Circuit[BI, BO]
}

func NewTuple2[AI, AO, BI, BO any](a Circuit[AI, AO], b Circuit[BI, BO]) Tuple2[AI, AO, BI, BO] {
	return Tuple2[AI, AO, BI, BO]{a: a, b: b}
}

func (t Tuple2[AI, AO, BI, BO]) Tick(in Tuple2Input[AI, BI]) (Tuple2Output[AO, BO], Circuit[Tuple2Input[AI, BI], Tuple2Output[AO, BO]]) {
	aOut, aNext := t.a.Tick(in.A)
	bOut, bNext := t.b.Tick(in.B)
	return Tuple2Output[AO, BO]{A: aOut, B: bOut}, Tuple2[AI, AO, BI, BO]{a: aNext, b: bNext}
}

type Tuple3Input[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple3Output[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple3 ticks three heterogeneous circuits in parallel.
type Tuple3[AI, AO, BI, BO, CI, CO any] struct {
	a Circuit[AI, AO]
	b Circuit[BI, BO]
	c Circuit[CI, CO]
}

func NewTuple3[AI, AO, BI, BO, CI, CO any](a Circuit[AI, AO], b Circuit[BI, BO], c Circuit[CI, CO]) Tuple3[AI, AO, BI, BO, CI, CO] {
	return Tuple3[AI, AO, BI, BO, CI, CO]{a: a, b: b, c: c}
}

func (t Tuple3[AI, AO, BI, BO, CI, CO]) Tick(in Tuple3Input[AI, BI, CI]) (Tuple3Output[AO, BO, CO], Circuit[Tuple3Input[AI, BI, CI], Tuple3Output[AO, BO, CO]]) {
	aOut, aNext := t.a.Tick(in.A)
	bOut, bNext := t.b.Tick(in.B)
	cOut, cNext := t.c.Tick(in.C)
	return Tuple3Output[AO, BO, CO]{A: aOut, B: bOut, C: cOut}, Tuple3[AI, AO, BI, BO, CI, CO]{a: aNext, b: bNext, c: cNext}
}
