package process

import (
	"errors"
	"math"
	"testing"
)

func TestGBM_EvolveMatchesClosedForm(t *testing.T) {
	g := GBM{Drift: 0.05, Volatility: 0.2}

	value, dt, z := 100.0, 1.0, 0.5
	want := value * math.Exp((0.05-0.5*0.2*0.2)*dt+0.2*math.Sqrt(dt)*z)

	got := g.Evolve(value, dt, z)
	if got != want {
		t.Errorf("Evolve mismatch: got %.10f, want %.10f", got, want)
	}
}

func TestGBM_ZeroIncrementIsNoOp(t *testing.T) {
	g := GBM{Drift: 0.05, Volatility: 0.2}

	// With dt == 0 the draw must not move the value.
	got := g.Evolve(100.0, 0, 3.0)
	if got != 100.0 {
		t.Errorf("zero increment moved value: got %.10f", got)
	}
}

func TestProcess_UpdateUsesElapsedIncrement(t *testing.T) {
	g := GBM{Drift: 0.05, Volatility: 0.2}
	p := New(100.0, g)

	// Single step from time zero equals evolving directly over t1.
	z1 := 0.7
	got, err := p.Update(2.0, z1)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	want := g.Evolve(100.0, 2.0, z1)
	if got != want {
		t.Errorf("single step: got %.10f, want %.10f", got, want)
	}

	// A second step must evolve from the last state over the increment only;
	// absolute time never re-enters the transition formula.
	z2 := -1.1
	got2, err := p.Update(2.5, z2)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	want2 := g.Evolve(want, 0.5, z2)
	if got2 != want2 {
		t.Errorf("second step: got %.10f, want %.10f", got2, want2)
	}

	state := p.State()
	if state.Time != 2.5 || state.Value != want2 {
		t.Errorf("state snapshot mismatch: got %+v", state)
	}
}

func TestProcess_TimeReversedError(t *testing.T) {
	p := New(100.0, GBM{Drift: 0.05, Volatility: 0.2})

	if _, err := p.Update(1.0, 0.3); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	_, err := p.Update(0.5, 0.3)
	if !errors.Is(err, ErrTimeReversed) {
		t.Errorf("expected ErrTimeReversed, got %v", err)
	}

	// The failed update must not have touched the state.
	if state := p.State(); state.Time != 1.0 {
		t.Errorf("failed update moved state time: got %.6f", state.Time)
	}
}

func TestProcess_ZeroStepAdvancesTimeOnly(t *testing.T) {
	p := New(100.0, GBM{Drift: 0.05, Volatility: 0.2})

	v1, err := p.Update(1.0, 0.4)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Same time again: legal, value unchanged, time recorded.
	v2, err := p.Update(1.0, 2.5)
	if err != nil {
		t.Fatalf("zero-length step failed: %v", err)
	}
	if v2 != v1 {
		t.Errorf("zero-length step moved value: %.10f -> %.10f", v1, v2)
	}
	if state := p.State(); state.Time != 1.0 {
		t.Errorf("expected time 1.0, got %.6f", state.Time)
	}
}

func TestProcess_ResetRestoresInitial(t *testing.T) {
	p := New(100.0, GBM{Drift: 0.05, Volatility: 0.2})

	if _, err := p.Update(1.0, 0.9); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	p.Reset()
	state := p.State()
	if state.Value != 100.0 || state.Time != 0 {
		t.Errorf("Reset did not restore initial state: got %+v", state)
	}
}

func TestProcess_CloneHasFreshState(t *testing.T) {
	p := New(100.0, GBM{Drift: 0.05, Volatility: 0.2})
	if _, err := p.Update(1.0, 0.9); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	clone := p.Clone()
	if state := clone.State(); state.Value != 100.0 || state.Time != 0 {
		t.Errorf("clone inherited path state: got %+v", state)
	}

	// Advancing the clone must not move the original.
	if _, err := clone.Update(2.0, -0.4); err != nil {
		t.Fatalf("clone Update failed: %v", err)
	}
	if state := p.State(); state.Time != 1.0 {
		t.Errorf("original moved by clone update: got %+v", state)
	}
}
