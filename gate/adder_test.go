package gate

import "testing"

func TestAdd16RoundTrip(t *testing.T) {
	pairs := [][2]int16{
		{2, 3}, {0, 0}, {-1, 1}, {32000, 1000}, {-32768, -1}, {100, -50},
	}
	for _, p := range pairs {
		x, y := p[0], p[1]
		want := x + y // Go's int16 add wraps the same way two's complement does
		if got := Add16(NewBus16(x), NewBus16(y)).Int16(); got != want {
			t.Errorf("Add16(%d, %d) = %d, want %d", x, y, got, want)
		}
	}
}

func TestInc16(t *testing.T) {
	for _, v := range []int16{0, -1, 32766, 41} {
		if got := Inc16(NewBus16(v)).Int16(); got != v+1 {
			t.Errorf("Inc16(%d) = %d, want %d", v, got, v+1)
		}
	}
}

func TestHalfAndFullAdder(t *testing.T) {
	s, c := HalfAdder(Positive, Positive)
	if s != Negative || c != Positive {
		t.Fatalf("HalfAdder(1,1) = (%v,%v), want (0,1)", s, c)
	}
	s, c = FullAdder(Positive, Positive, Positive)
	if s != Positive || c != Positive {
		t.Fatalf("FullAdder(1,1,1) = (%v,%v), want (1,1)", s, c)
	}
}
