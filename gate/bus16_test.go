package gate

import "testing"

func TestBus16RoundTrip(t *testing.T) {
	for _, v := range []int16{0, 1, -1, 32767, -32768, 12345, -12345} {
		if got := NewBus16(v).Int16(); got != v {
			t.Errorf("NewBus16(%d).Int16() = %d, want %d", v, got, v)
		}
	}
}

func TestBus16LiftsAreElementwise(t *testing.T) {
	x := NewBus16(0x5A5A)
	y := NewBus16(0x3C3C)
	not := Not16(x)
	and := And16(x, y)
	or := Or16(x, y)
	for i := 0; i < 16; i++ {
		if got, want := not[i], Not(x[i]); got != want {
			t.Errorf("Not16 bit %d = %v, want %v", i, got, want)
		}
		if got, want := and[i], And(x[i], y[i]); got != want {
			t.Errorf("And16 bit %d = %v, want %v", i, got, want)
		}
		if got, want := or[i], Or(x[i], y[i]); got != want {
			t.Errorf("Or16 bit %d = %v, want %v", i, got, want)
		}
	}
}

func TestMux4Way16(t *testing.T) {
	a, b, c, d := NewBus16(1), NewBus16(2), NewBus16(3), NewBus16(4)
	cases := []struct {
		sel  Bus2
		want Bus16
	}{
		{NewBus2(0), a},
		{NewBus2(1), b},
		{NewBus2(2), c},
		{NewBus2(3), d},
	}
	for _, cc := range cases {
		if got := Mux4Way16(a, b, c, d, cc.sel); got != cc.want {
			t.Errorf("Mux4Way16 sel=%v = %v, want %v", cc.sel, got, cc.want)
		}
	}
}

func TestMux8Way16(t *testing.T) {
	var in [8]Bus16
	for i := range in {
		in[i] = NewBus16(int16(i + 1))
	}
	for sel := 0; sel < 8; sel++ {
		got := Mux8Way16(in, NewBus3(uint8(sel)))
		if got != in[sel] {
			t.Errorf("Mux8Way16 sel=%d = %v, want %v", sel, got, in[sel])
		}
	}
}

func TestDmux8WayAndOr8Way(t *testing.T) {
	for sel := 0; sel < 8; sel++ {
		out := Dmux8Way(Positive, NewBus3(uint8(sel)))
		for i := 0; i < 8; i++ {
			want := Negative
			if i == sel {
				want = Positive
			}
			if out[i] != want {
				t.Errorf("Dmux8Way sel=%d bit %d = %v, want %v", sel, i, out[i], want)
			}
		}
		if got := Or8Way(out); got != Positive {
			t.Errorf("Or8Way(Dmux8Way(1, %d)) = %v, want Positive", sel, got)
		}
	}
	if got := Or8Way(Bus8{}); got != Negative {
		t.Errorf("Or8Way(zero) = %v, want Negative", got)
	}
}

func TestOr16Way(t *testing.T) {
	if got := Or16Way(NewBus16(0)); got != Negative {
		t.Errorf("Or16Way(0) = %v, want Negative", got)
	}
	if got := Or16Way(NewBus16(1)); got != Positive {
		t.Errorf("Or16Way(1) = %v, want Positive", got)
	}
}
