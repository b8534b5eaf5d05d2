// Package process simulates a single stochastic path through incremental
// updates. The transition law is supplied by an Evolver; the Process itself
// only tracks where the path currently is.
package process

import (
	"errors"
	"fmt"
)

// Process errors
var (
	ErrTimeReversed = errors.New("update time precedes current process time")
)

// State is an immutable snapshot of a simulated path: the current value and
// the time it was observed at. A Process replaces its snapshot wholesale on
// every step; callers never see a partially updated state.
type State struct {
	Value float64
	Time  float64
}

// Evolver supplies the one-step transition law of a stochastic process.
type Evolver interface {
	// Evolve advances a value over an elapsed increment dt using one
	// standard-normal draw. Must be pure and time-homogeneous: only the
	// increment enters the law, never the absolute clock.
	Evolve(value, dt, z float64) float64

	// Name returns the process identifier (includes parameters).
	Name() string
}

// Process walks one simulated path. It is exclusively owned by a single
// pricing loop; use Clone to hand independent copies to parallel workers.
type Process struct {
	initial float64
	evolver Evolver
	state   State
}

// New creates a process starting at the initial value at time zero.
func New(initial float64, evolver Evolver) *Process {
	return &Process{
		initial: initial,
		evolver: evolver,
		state:   State{Value: initial},
	}
}

// Reset discards any in-progress path state and returns the process to its
// initial value at time zero.
func (p *Process) Reset() {
	p.state = State{Value: p.initial}
}

// State returns the current snapshot.
func (p *Process) State() State {
	return p.state
}

// Initial returns the starting value of every path.
func (p *Process) Initial() float64 {
	return p.initial
}

// Update advances the path to time t using one standard-normal draw and
// returns the new value. The elapsed increment must be non-negative; a
// zero-length step leaves the distribution untouched but still records the
// new time. The state snapshot is replaced atomically.
func (p *Process) Update(t, z float64) (float64, error) {
	dt := t - p.state.Time
	if dt < 0 {
		return 0, fmt.Errorf("%w: %.6f -> %.6f", ErrTimeReversed, p.state.Time, t)
	}

	next := p.evolver.Evolve(p.state.Value, dt, z)
	p.state = State{Value: next, Time: t}
	return next, nil
}

// Clone returns a process with the same parameters and a fresh state.
// Evolvers are pure value types, so sharing them across clones is safe.
func (p *Process) Clone() *Process {
	return New(p.initial, p.evolver)
}
