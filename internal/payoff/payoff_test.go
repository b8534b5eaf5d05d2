package payoff

import "testing"

func TestCall(t *testing.T) {
	fn := Call(100)

	cases := []struct {
		x    float64
		want float64
	}{
		{103, 3},
		{100, 0},
		{95, 0},
	}
	for _, c := range cases {
		if got := fn(c.x); got != c.want {
			t.Errorf("Call(100)(%.1f) = %.4f, want %.4f", c.x, got, c.want)
		}
	}
}

func TestPut(t *testing.T) {
	fn := Put(100)

	cases := []struct {
		x    float64
		want float64
	}{
		{95, 5},
		{100, 0},
		{110, 0},
	}
	for _, c := range cases {
		if got := fn(c.x); got != c.want {
			t.Errorf("Put(100)(%.1f) = %.4f, want %.4f", c.x, got, c.want)
		}
	}
}

func TestDigital(t *testing.T) {
	fn := Digital(100, 10)

	if got := fn(100.01); got != 10 {
		t.Errorf("above strike: got %.4f, want 10", got)
	}
	// Finishing exactly at the strike pays nothing: strictly above only.
	if got := fn(100); got != 0 {
		t.Errorf("at strike: got %.4f, want 0", got)
	}
	if got := fn(99); got != 0 {
		t.Errorf("below strike: got %.4f, want 0", got)
	}
}

func TestForward(t *testing.T) {
	fn := Forward(100)

	if got := fn(95); got != -5 {
		t.Errorf("Forward(100)(95) = %.4f, want -5", got)
	}
	if got := fn(107); got != 7 {
		t.Errorf("Forward(100)(107) = %.4f, want 7", got)
	}
}
