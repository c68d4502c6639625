package seq

import (
	"testing"

	"github.com/jyane/hackvm/gate"
)

func TestArray3TicksElementwise(t *testing.T) {
	var a Array3[gate.Bit, gate.Bit]
	for i := range a {
		a[i] = NewFunc(gate.Not)
	}
	var c Circuit[[3]gate.Bit, [3]gate.Bit] = a
	out, _ := c.Tick([3]gate.Bit{gate.Positive, gate.Negative, gate.Positive})
	want := [3]gate.Bit{gate.Negative, gate.Positive, gate.Negative}
	if out != want {
		t.Fatalf("Array3 output = %v, want %v", out, want)
	}
}

func TestArray8IndependentState(t *testing.T) {
	var a Array8[gate.Bit, gate.Bit]
	for i := range a {
		a[i] = NewFlipFlop()
	}
	var c Circuit[[8]gate.Bit, [8]gate.Bit] = a
	in := [8]gate.Bit{}
	in[3] = gate.Positive
	_, next := c.Tick(in)
	out, _ := next.Tick([8]gate.Bit{})
	for i := 0; i < 8; i++ {
		want := gate.Negative
		if i == 3 {
			want = gate.Positive
		}
		if out[i] != want {
			t.Errorf("Array8 element %d = %v, want %v", i, out[i], want)
		}
	}
}
